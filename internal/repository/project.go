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

type ProjectRepository interface {
	GetAll(ctx context.Context) ([]domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
}

type projectRepository struct {
	dao dao.ProjectDAO
}

func NewProjectRepository(d dao.ProjectDAO) ProjectRepository {
	return &projectRepository{
		dao: d,
	}
}

func (p *projectRepository) GetAll(ctx context.Context) ([]domain.Project, error) {
	prjs, err := p.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Project, 0, len(prjs))
	for _, prj := range prjs {
		project, err := p.toDomain(prj)
		if err != nil {
			return nil, err
		}
		res = append(res, project)
	}
	return res, nil
}

func (p *projectRepository) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	if err := requireString("Name", name); err != nil {
		return nil, err
	}
	prj, err := p.dao.FindByName(ctx, name)
	if err != nil || prj == nil {
		return nil, err
	}
	project, err := p.toDomain(*prj)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (p *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	if err := requireString("ID", id); err != nil {
		return nil, err
	}
	prj, err := p.dao.FindByID(ctx, id)
	if err != nil || prj == nil {
		return nil, err
	}
	project, err := p.toDomain(*prj)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (p *projectRepository) toDomain(prj dao.Project) (domain.Project, error) {
	if prj.Name == "" || prj.StartDate == 0 || prj.EndDate == 0 ||
		prj.Description == "" || prj.URL == "" || prj.Skills == nil {
		return domain.Project{}, errs.MissingFieldError{Kind: "Project", ID: prj.ID}
	}
	return domain.Project{
		ID:          prj.ID,
		Name:        prj.Name,
		Start:       prj.StartDate.Time(),
		End:         prj.EndDate.Time(),
		Description: prj.Description,
		URL:         prj.URL,
		SkillIDs:    prj.Skills,
	}, nil
}
