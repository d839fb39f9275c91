// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"context"
	"net/http"

	"github.com/ecodeclub/webfolio/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type ContactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactHandler struct {
	svc    service.ContactService
	logger *elog.Component
}

func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *ContactHandler) PublicRoutes(server *gin.Engine) {
	server.POST("/api/contact", h.postContact)
}

func (h *ContactHandler) postContact(ctx *gin.Context) {
	var req ContactReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	writeResult(ctx, h.SendMessage(ctx.Request.Context(), req))
}

func (h *ContactHandler) SendMessage(ctx context.Context, req ContactReq) Result {
	if req.Name == "" {
		return requiredFieldResult("Name")
	}
	if req.Email == "" {
		return requiredFieldResult("Email")
	}
	if req.Message == "" {
		return requiredFieldResult("Message")
	}
	if err := h.svc.Send(ctx, req.Name, req.Email, req.Message); err != nil {
		h.logger.Error("发送联系邮件失败", elog.FieldErr(err))
		return failedResult("Failed to send message - Error: %s", err.Error())
	}
	return Result{
		Status: http.StatusOK,
		Body:   "Message sent",
	}
}
