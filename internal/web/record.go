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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/webfolio/internal/domain"
	"github.com/ecodeclub/webfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// RecordHandler 持有两个按类型绑定的服务实例，
// type 参数决定请求落到哪一个上
type RecordHandler struct {
	expSvc service.RecordService
	eduSvc service.RecordService
}

func NewRecordHandler(expSvc service.RecordService, eduSvc service.RecordService) *RecordHandler {
	return &RecordHandler{
		expSvc: expSvc,
		eduSvc: eduSvc,
	}
}

func (h *RecordHandler) PublicRoutes(server *gin.Engine) {
	server.GET("/api/records", h.getRecords)
}

func (h *RecordHandler) getRecords(ctx *gin.Context) {
	if !allowQuery(ctx, "type", "id") {
		writeResult(ctx, invalidQueryResult)
		return
	}
	kind := ctx.Query("type")
	var res Result
	if id, ok := ctx.GetQuery("id"); ok {
		res = h.GetRecordByID(ctx.Request.Context(), kind, id)
	} else {
		res = h.GetAllRecords(ctx.Request.Context(), kind)
	}
	writeResult(ctx, res)
}

func (h *RecordHandler) GetAllRecords(ctx context.Context, kind string) Result {
	if kind == "" {
		return requiredFieldResult("Type")
	}
	switch domain.RecordKind(kind) {
	case domain.RecordKindExperience:
		recs, err := h.expSvc.GetAllExperienceRecords(ctx)
		if err != nil {
			return failedResult("Failed to retrieve records - Error: %s", err.Error())
		}
		if len(recs) == 0 {
			return messageResult("No Records fetched")
		}
		return dataResult(slice.Map(recs, func(idx int, src domain.ExperienceRecord) ExperienceRecord {
			return newExperienceRecord(src)
		}))
	case domain.RecordKindEducation:
		recs, err := h.eduSvc.GetAllEducationalRecords(ctx)
		if err != nil {
			return failedResult("Failed to retrieve records - Error: %s", err.Error())
		}
		if len(recs) == 0 {
			return messageResult("No Records fetched")
		}
		return dataResult(slice.Map(recs, func(idx int, src domain.EducationalRecord) EducationalRecord {
			return newEducationalRecord(src)
		}))
	default:
		return Result{
			Status: http.StatusBadRequest,
			Body:   "Type must be either experience or education.",
		}
	}
}

func (h *RecordHandler) GetRecordByID(ctx context.Context, kind, id string) Result {
	if kind == "" {
		return requiredFieldResult("Type")
	}
	if id == "" {
		return requiredFieldResult("ID")
	}
	switch domain.RecordKind(kind) {
	case domain.RecordKindExperience:
		rec, err := h.expSvc.GetExperienceRecordByID(ctx, id)
		if err != nil {
			return failedResult("Failed to retrieve record with ID. ID: %s - Error: %s", id, err.Error())
		}
		if rec == nil {
			return messageResult("No Record fetched with ID: %s", id)
		}
		return dataResult(newExperienceRecord(*rec))
	case domain.RecordKindEducation:
		rec, err := h.eduSvc.GetEducationalRecordByID(ctx, id)
		if err != nil {
			return failedResult("Failed to retrieve record with ID. ID: %s - Error: %s", id, err.Error())
		}
		if rec == nil {
			return messageResult("No Record fetched with ID: %s", id)
		}
		return dataResult(newEducationalRecord(*rec))
	default:
		return Result{
			Status: http.StatusBadRequest,
			Body:   "Type must be either experience or education.",
		}
	}
}
