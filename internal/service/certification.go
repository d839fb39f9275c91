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

package service

import (
	"context"

	"github.com/ecodeclub/webfolio/internal/domain"
	"github.com/ecodeclub/webfolio/internal/repository"
)

type CertificationService interface {
	GetAll(ctx context.Context) ([]domain.Certification, error)
	GetByName(ctx context.Context, name string) (*domain.Certification, error)
	GetByID(ctx context.Context, id string) (*domain.Certification, error)
	GetByInstitution(ctx context.Context, institution string) ([]domain.Certification, error)
}

type certificationService struct {
	repo   repository.CertificationRepository
	skills repository.SkillRepository
}

func NewCertificationService(repo repository.CertificationRepository,
	skills repository.SkillRepository) CertificationService {
	return &certificationService{
		repo:   repo,
		skills: skills,
	}
}

func (c *certificationService) GetAll(ctx context.Context) ([]domain.Certification, error) {
	certs, err := c.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveSkillsAll(ctx, c.skills, certs)
}

func (c *certificationService) GetByName(ctx context.Context, name string) (*domain.Certification, error) {
	cert, err := c.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return ResolveSkills(ctx, c.skills, cert)
}

func (c *certificationService) GetByID(ctx context.Context, id string) (*domain.Certification, error) {
	cert, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ResolveSkills(ctx, c.skills, cert)
}

func (c *certificationService) GetByInstitution(ctx context.Context, institution string) ([]domain.Certification, error) {
	certs, err := c.repo.GetByInstitution(ctx, institution)
	if err != nil {
		return nil, err
	}
	return ResolveSkillsAll(ctx, c.skills, certs)
}
