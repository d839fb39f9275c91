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

type CertificationHandler struct {
	svc service.CertificationService
}

func NewCertificationHandler(svc service.CertificationService) *CertificationHandler {
	return &CertificationHandler{
		svc: svc,
	}
}

func (h *CertificationHandler) PublicRoutes(server *gin.Engine) {
	server.GET("/api/certifications", h.getCertifications)
}

func (h *CertificationHandler) getCertifications(ctx *gin.Context) {
	if !allowQuery(ctx, "name", "id", "institution") {
		writeResult(ctx, invalidQueryResult)
		return
	}
	var res Result
	if id, ok := ctx.GetQuery("id"); ok {
		res = h.GetCertificationByID(ctx.Request.Context(), id)
	} else if name, ok := ctx.GetQuery("name"); ok {
		res = h.GetCertificationByName(ctx.Request.Context(), name)
	} else if institution, ok := ctx.GetQuery("institution"); ok {
		res = h.GetCertificationsByInstitution(ctx.Request.Context(), institution)
	} else {
		res = h.GetAllCertifications(ctx.Request.Context())
	}
	writeResult(ctx, res)
}

func (h *CertificationHandler) GetAllCertifications(ctx context.Context) Result {
	certs, err := h.svc.GetAll(ctx)
	if err != nil {
		return failedResult("Failed to retrieve certifications - Error: %s", err.Error())
	}
	if len(certs) == 0 {
		return messageResult("No Certifications fetched")
	}
	return dataResult(slice.Map(certs, func(idx int, src domain.Certification) Certification {
		return newCertification(src)
	}))
}

func (h *CertificationHandler) GetCertificationByName(ctx context.Context, name string) Result {
	if name == "" {
		return requiredFieldResult("Name")
	}
	cert, err := h.svc.GetByName(ctx, name)
	if err != nil {
		return failedResult("Failed to retrieve certification with name. Name: %s - Error: %s", name, err.Error())
	}
	if cert == nil {
		return messageResult("No Certification fetched with name: %s", name)
	}
	return dataResult(newCertification(*cert))
}

func (h *CertificationHandler) GetCertificationByID(ctx context.Context, id string) Result {
	if id == "" {
		return requiredFieldResult("ID")
	}
	cert, err := h.svc.GetByID(ctx, id)
	if err != nil {
		return failedResult("Failed to retrieve certification with ID. ID: %s - Error: %s", id, err.Error())
	}
	if cert == nil {
		return messageResult("No Certification fetched with ID: %s", id)
	}
	return dataResult(newCertification(*cert))
}

func (h *CertificationHandler) GetCertificationsByInstitution(ctx context.Context, institution string) Result {
	if institution == "" {
		return requiredFieldResult("Institution")
	}
	certs, err := h.svc.GetByInstitution(ctx, institution)
	if err != nil {
		return failedResult("Failed to retrieve certifications with institution. Institution: %s - Error: %s",
			institution, err.Error())
	}
	if len(certs) == 0 {
		return messageResult("No Certifications fetched with institution: %s", institution)
	}
	return dataResult(slice.Map(certs, func(idx int, src domain.Certification) Certification {
		return newCertification(src)
	}))
}
