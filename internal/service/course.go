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

type CourseService interface {
	GetAll(ctx context.Context) ([]domain.Course, error)
	GetByName(ctx context.Context, name string) (*domain.Course, error)
	GetByID(ctx context.Context, id string) (*domain.Course, error)
}

type courseService struct {
	repo   repository.CourseRepository
	skills repository.SkillRepository
}

func NewCourseService(repo repository.CourseRepository,
	skills repository.SkillRepository) CourseService {
	return &courseService{
		repo:   repo,
		skills: skills,
	}
}

func (c *courseService) GetAll(ctx context.Context) ([]domain.Course, error) {
	crs, err := c.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveSkillsAll(ctx, c.skills, crs)
}

func (c *courseService) GetByName(ctx context.Context, name string) (*domain.Course, error) {
	cr, err := c.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return ResolveSkills(ctx, c.skills, cr)
}

func (c *courseService) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	cr, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ResolveSkills(ctx, c.skills, cr)
}
