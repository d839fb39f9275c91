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

type ProjectService interface {
	GetAll(ctx context.Context) ([]domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
}

type projectService struct {
	repo   repository.ProjectRepository
	skills repository.SkillRepository
}

func NewProjectService(repo repository.ProjectRepository,
	skills repository.SkillRepository) ProjectService {
	return &projectService{
		repo:   repo,
		skills: skills,
	}
}

func (p *projectService) GetAll(ctx context.Context) ([]domain.Project, error) {
	prjs, err := p.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveSkillsAll(ctx, p.skills, prjs)
}

func (p *projectService) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	prj, err := p.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return ResolveSkills(ctx, p.skills, prj)
}

func (p *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	prj, err := p.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ResolveSkills(ctx, p.skills, prj)
}
