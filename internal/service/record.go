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
	"github.com/ecodeclub/webfolio/internal/errs"
	"github.com/ecodeclub/webfolio/internal/repository"
)

// RecordService 在仓储之上多做一层类型守卫：
// 仓储不会拦"在 experience 实例上查 education"，这里拦
type RecordService interface {
	GetAllExperienceRecords(ctx context.Context) ([]domain.ExperienceRecord, error)
	GetAllEducationalRecords(ctx context.Context) ([]domain.EducationalRecord, error)
	GetExperienceRecordByID(ctx context.Context, id string) (*domain.ExperienceRecord, error)
	GetEducationalRecordByID(ctx context.Context, id string) (*domain.EducationalRecord, error)
}

type recordService struct {
	kind   domain.RecordKind
	repo   repository.RecordRepository
	skills repository.SkillRepository
}

// NewRecordService 的 kind 必须和仓储构造时的类型一致
func NewRecordService(kind domain.RecordKind,
	repo repository.RecordRepository,
	skills repository.SkillRepository) RecordService {
	return &recordService{
		kind:   kind,
		repo:   repo,
		skills: skills,
	}
}

func (r *recordService) GetAllExperienceRecords(ctx context.Context) ([]domain.ExperienceRecord, error) {
	if err := r.guard(domain.RecordKindExperience); err != nil {
		return nil, err
	}
	recs, err := r.repo.GetAllExperienceRecords(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveSkillsAll(ctx, r.skills, recs)
}

func (r *recordService) GetAllEducationalRecords(ctx context.Context) ([]domain.EducationalRecord, error) {
	if err := r.guard(domain.RecordKindEducation); err != nil {
		return nil, err
	}
	recs, err := r.repo.GetAllEducationalRecords(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveSkillsAll(ctx, r.skills, recs)
}

func (r *recordService) GetExperienceRecordByID(ctx context.Context, id string) (*domain.ExperienceRecord, error) {
	if err := r.guard(domain.RecordKindExperience); err != nil {
		return nil, err
	}
	rec, err := r.repo.GetExperienceRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ResolveSkills(ctx, r.skills, rec)
}

func (r *recordService) GetEducationalRecordByID(ctx context.Context, id string) (*domain.EducationalRecord, error) {
	if err := r.guard(domain.RecordKindEducation); err != nil {
		return nil, err
	}
	rec, err := r.repo.GetEducationalRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ResolveSkills(ctx, r.skills, rec)
}

func (r *recordService) guard(want domain.RecordKind) error {
	if r.kind != want {
		return errs.InvalidOperationError{Kind: string(want)}
	}
	return nil
}
