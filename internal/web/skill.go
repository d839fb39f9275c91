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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/webfolio/internal/domain"
	"github.com/ecodeclub/webfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	svc service.SkillService
}

func NewSkillHandler(svc service.SkillService) *SkillHandler {
	return &SkillHandler{
		svc: svc,
	}
}

func (h *SkillHandler) PublicRoutes(server *gin.Engine) {
	server.GET("/api/skills", h.getSkills)
}

func (h *SkillHandler) getSkills(ctx *gin.Context) {
	if !allowQuery(ctx, "name", "id") {
		writeResult(ctx, invalidQueryResult)
		return
	}
	var res Result
	if id, ok := ctx.GetQuery("id"); ok {
		res = h.GetSkillByID(ctx.Request.Context(), id)
	} else if name, ok := ctx.GetQuery("name"); ok {
		res = h.GetSkillByName(ctx.Request.Context(), name)
	} else {
		res = h.GetAllSkills(ctx.Request.Context())
	}
	writeResult(ctx, res)
}

func (h *SkillHandler) GetAllSkills(ctx context.Context) Result {
	sks, err := h.svc.GetAll(ctx)
	if err != nil {
		return failedResult("Failed to retrieve skills - Error: %s", err.Error())
	}
	if len(sks) == 0 {
		return messageResult("No Skills fetched")
	}
	return dataResult(slice.Map(sks, func(idx int, src domain.Skill) Skill {
		return newSkill(src)
	}))
}

func (h *SkillHandler) GetSkillByName(ctx context.Context, name string) Result {
	if name == "" {
		return requiredFieldResult("Name")
	}
	sk, err := h.svc.GetByName(ctx, name)
	if err != nil {
		return failedResult("Failed to retrieve skill with name. Name: %s - Error: %s", name, err.Error())
	}
	if sk == nil {
		return messageResult("No Skill fetched with name: %s", name)
	}
	return dataResult(newSkill(*sk))
}

func (h *SkillHandler) GetSkillByID(ctx context.Context, id string) Result {
	if id == "" {
		return requiredFieldResult("ID")
	}
	sk, err := h.svc.GetByID(ctx, id)
	if err != nil {
		return failedResult("Failed to retrieve skill with ID. ID: %s - Error: %s", id, err.Error())
	}
	if sk == nil {
		return messageResult("No Skill fetched with ID: %s", id)
	}
	return dataResult(newSkill(*sk))
}
