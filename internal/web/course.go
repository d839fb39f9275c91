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

type CourseHandler struct {
	svc service.CourseService
}

func NewCourseHandler(svc service.CourseService) *CourseHandler {
	return &CourseHandler{
		svc: svc,
	}
}

func (h *CourseHandler) PublicRoutes(server *gin.Engine) {
	server.GET("/api/courses", h.getCourses)
}

func (h *CourseHandler) getCourses(ctx *gin.Context) {
	if !allowQuery(ctx, "name", "id") {
		writeResult(ctx, invalidQueryResult)
		return
	}
	var res Result
	if id, ok := ctx.GetQuery("id"); ok {
		res = h.GetCourseByID(ctx.Request.Context(), id)
	} else if name, ok := ctx.GetQuery("name"); ok {
		res = h.GetCourseByName(ctx.Request.Context(), name)
	} else {
		res = h.GetAllCourses(ctx.Request.Context())
	}
	writeResult(ctx, res)
}

func (h *CourseHandler) GetAllCourses(ctx context.Context) Result {
	crs, err := h.svc.GetAll(ctx)
	if err != nil {
		return failedResult("Failed to retrieve courses - Error: %s", err.Error())
	}
	if len(crs) == 0 {
		return messageResult("No Courses fetched")
	}
	return dataResult(slice.Map(crs, func(idx int, src domain.Course) Course {
		return newCourse(src)
	}))
}

func (h *CourseHandler) GetCourseByName(ctx context.Context, name string) Result {
	if name == "" {
		return requiredFieldResult("Name")
	}
	cr, err := h.svc.GetByName(ctx, name)
	if err != nil {
		return failedResult("Failed to retrieve course with name. Name: %s - Error: %s", name, err.Error())
	}
	if cr == nil {
		return messageResult("No Course fetched with name: %s", name)
	}
	return dataResult(newCourse(*cr))
}

func (h *CourseHandler) GetCourseByID(ctx context.Context, id string) Result {
	if id == "" {
		return requiredFieldResult("ID")
	}
	cr, err := h.svc.GetByID(ctx, id)
	if err != nil {
		return failedResult("Failed to retrieve course with ID. ID: %s - Error: %s", id, err.Error())
	}
	if cr == nil {
		return messageResult("No Course fetched with ID: %s", id)
	}
	return dataResult(newCourse(*cr))
}
