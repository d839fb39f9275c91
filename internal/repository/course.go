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

type CourseRepository interface {
	GetAll(ctx context.Context) ([]domain.Course, error)
	GetByName(ctx context.Context, name string) (*domain.Course, error)
	GetByID(ctx context.Context, id string) (*domain.Course, error)
}

type courseRepository struct {
	dao dao.CourseDAO
}

func NewCourseRepository(d dao.CourseDAO) CourseRepository {
	return &courseRepository{
		dao: d,
	}
}

func (c *courseRepository) GetAll(ctx context.Context) ([]domain.Course, error) {
	crs, err := c.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Course, 0, len(crs))
	for _, cr := range crs {
		course, err := c.toDomain(cr)
		if err != nil {
			return nil, err
		}
		res = append(res, course)
	}
	return res, nil
}

func (c *courseRepository) GetByName(ctx context.Context, name string) (*domain.Course, error) {
	if err := requireString("Name", name); err != nil {
		return nil, err
	}
	cr, err := c.dao.FindByName(ctx, name)
	if err != nil || cr == nil {
		return nil, err
	}
	course, err := c.toDomain(*cr)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *courseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	if err := requireString("ID", id); err != nil {
		return nil, err
	}
	cr, err := c.dao.FindByID(ctx, id)
	if err != nil || cr == nil {
		return nil, err
	}
	course, err := c.toDomain(*cr)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// 课程的 skills 允许为空，其余字段必填
func (c *courseRepository) toDomain(cr dao.Course) (domain.Course, error) {
	if cr.Name == "" || cr.Code == "" || cr.Description == "" || cr.Institution == "" {
		return domain.Course{}, errs.MissingFieldError{Kind: "Course", ID: cr.ID}
	}
	return domain.Course{
		ID:          cr.ID,
		Name:        cr.Name,
		Code:        cr.Code,
		Description: cr.Description,
		Institution: cr.Institution,
		SkillIDs:    cr.Skills,
	}, nil
}
