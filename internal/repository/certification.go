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

package repository

import (
	"context"

	"github.com/ecodeclub/webfolio/internal/domain"
	"github.com/ecodeclub/webfolio/internal/errs"
	"github.com/ecodeclub/webfolio/internal/repository/dao"
)

type CertificationRepository interface {
	GetAll(ctx context.Context) ([]domain.Certification, error)
	GetByName(ctx context.Context, name string) (*domain.Certification, error)
	GetByID(ctx context.Context, id string) (*domain.Certification, error)
	GetByInstitution(ctx context.Context, institution string) ([]domain.Certification, error)
}

type certificationRepository struct {
	dao dao.CertificationDAO
}

func NewCertificationRepository(d dao.CertificationDAO) CertificationRepository {
	return &certificationRepository{
		dao: d,
	}
}

func (c *certificationRepository) GetAll(ctx context.Context) ([]domain.Certification, error) {
	certs, err := c.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return c.toDomainList(certs)
}

func (c *certificationRepository) GetByName(ctx context.Context, name string) (*domain.Certification, error) {
	if err := requireString("Name", name); err != nil {
		return nil, err
	}
	cert, err := c.dao.FindByName(ctx, name)
	if err != nil || cert == nil {
		return nil, err
	}
	certification, err := c.toDomain(*cert)
	if err != nil {
		return nil, err
	}
	return &certification, nil
}

func (c *certificationRepository) GetByID(ctx context.Context, id string) (*domain.Certification, error) {
	if err := requireString("ID", id); err != nil {
		return nil, err
	}
	cert, err := c.dao.FindByID(ctx, id)
	if err != nil || cert == nil {
		return nil, err
	}
	certification, err := c.toDomain(*cert)
	if err != nil {
		return nil, err
	}
	return &certification, nil
}

func (c *certificationRepository) GetByInstitution(ctx context.Context, institution string) ([]domain.Certification, error) {
	if err := requireString("Institution", institution); err != nil {
		return nil, err
	}
	certs, err := c.dao.FindByInstitution(ctx, institution)
	if err != nil {
		return nil, err
	}
	return c.toDomainList(certs)
}

func (c *certificationRepository) toDomainList(certs []dao.Certification) ([]domain.Certification, error) {
	res := make([]domain.Certification, 0, len(certs))
	for _, cert := range certs {
		certification, err := c.toDomain(cert)
		if err != nil {
			return nil, err
		}
		res = append(res, certification)
	}
	return res, nil
}

func (c *certificationRepository) toDomain(cert dao.Certification) (domain.Certification, error) {
	if cert.Name == "" || cert.Institution == "" || cert.Date == 0 ||
		cert.CredentialID == "" || cert.URL == "" {
		return domain.Certification{}, errs.MissingFieldError{Kind: "Certification", ID: cert.ID}
	}
	return domain.Certification{
		ID:           cert.ID,
		Name:         cert.Name,
		Institution:  cert.Institution,
		Date:         cert.Date.Time(),
		CredentialID: cert.CredentialID,
		URL:          cert.URL,
		SkillIDs:     cert.Skills,
	}, nil
}
