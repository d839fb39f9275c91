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

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(svc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		svc: svc,
	}
}

func (h *ProjectHandler) PublicRoutes(server *gin.Engine) {
	server.GET("/api/projects", h.getProjects)
}

func (h *ProjectHandler) getProjects(ctx *gin.Context) {
	if !allowQuery(ctx, "name", "id") {
		writeResult(ctx, invalidQueryResult)
		return
	}
	var res Result
	if id, ok := ctx.GetQuery("id"); ok {
		res = h.GetProjectByID(ctx.Request.Context(), id)
	} else if name, ok := ctx.GetQuery("name"); ok {
		res = h.GetProjectByName(ctx.Request.Context(), name)
	} else {
		res = h.GetAllProjects(ctx.Request.Context())
	}
	writeResult(ctx, res)
}

func (h *ProjectHandler) GetAllProjects(ctx context.Context) Result {
	prjs, err := h.svc.GetAll(ctx)
	if err != nil {
		return failedResult("Failed to retrieve projects - Error: %s", err.Error())
	}
	if len(prjs) == 0 {
		return messageResult("No Projects fetched")
	}
	return dataResult(slice.Map(prjs, func(idx int, src domain.Project) Project {
		return newProject(src)
	}))
}

func (h *ProjectHandler) GetProjectByName(ctx context.Context, name string) Result {
	if name == "" {
		return requiredFieldResult("Name")
	}
	prj, err := h.svc.GetByName(ctx, name)
	if err != nil {
		return failedResult("Failed to retrieve project with name. Name: %s - Error: %s", name, err.Error())
	}
	if prj == nil {
		return messageResult("No Project fetched with name: %s", name)
	}
	return dataResult(newProject(*prj))
}

func (h *ProjectHandler) GetProjectByID(ctx context.Context, id string) Result {
	if id == "" {
		return requiredFieldResult("ID")
	}
	prj, err := h.svc.GetByID(ctx, id)
	if err != nil {
		return failedResult("Failed to retrieve project with ID. ID: %s - Error: %s", id, err.Error())
	}
	if prj == nil {
		return messageResult("No Project fetched with ID: %s", id)
	}
	return dataResult(newProject(*prj))
}
