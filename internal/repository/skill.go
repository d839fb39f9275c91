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

type SkillRepository interface {
	GetAll(ctx context.Context) ([]domain.Skill, error)
	GetByName(ctx context.Context, name string) (*domain.Skill, error)
	GetByID(ctx context.Context, id string) (*domain.Skill, error)
	// GetByIDs 批量解析技能 ID。底层连结果集都没有时返回 errs.ErrNonexistent，
	// 查到空结果正常返回空切片
	GetByIDs(ctx context.Context, ids []string) ([]domain.Skill, error)
}

type skillRepository struct {
	dao dao.SkillDAO
}

func NewSkillRepository(d dao.SkillDAO) SkillRepository {
	return &skillRepository{
		dao: d,
	}
}

func (s *skillRepository) GetAll(ctx context.Context) ([]domain.Skill, error) {
	sks, err := s.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Skill, 0, len(sks))
	for _, sk := range sks {
		skill, err := s.toDomain(sk)
		if err != nil {
			return nil, err
		}
		res = append(res, skill)
	}
	return res, nil
}

func (s *skillRepository) GetByName(ctx context.Context, name string) (*domain.Skill, error) {
	if err := requireString("Name", name); err != nil {
		return nil, err
	}
	sk, err := s.dao.FindByName(ctx, name)
	if err != nil || sk == nil {
		return nil, err
	}
	skill, err := s.toDomain(*sk)
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *skillRepository) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	if err := requireString("ID", id); err != nil {
		return nil, err
	}
	sk, err := s.dao.FindByID(ctx, id)
	if err != nil || sk == nil {
		return nil, err
	}
	skill, err := s.toDomain(*sk)
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *skillRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Skill, error) {
	sks, err := s.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if sks == nil {
		return nil, errs.ErrNonexistent
	}
	res := make([]domain.Skill, 0, len(sks))
	for _, sk := range sks {
		skill, err := s.toDomain(sk)
		if err != nil {
			return nil, err
		}
		res = append(res, skill)
	}
	return res, nil
}

func (s *skillRepository) toDomain(sk dao.Skill) (domain.Skill, error) {
	if sk.Name == "" || sk.Description == "" || sk.Level == "" {
		return domain.Skill{}, errs.MissingFieldError{Kind: "Skill", ID: sk.ID}
	}
	return domain.Skill{
		ID:          sk.ID,
		Name:        sk.Name,
		Description: sk.Description,
		Level:       domain.SkillLevel(sk.Level),
	}, nil
}

// requireString 在碰存储之前校验查询参数
func requireString(field, value string) error {
	if value == "" {
		return errs.InvalidArgumentError{Field: field}
	}
	return nil
}
