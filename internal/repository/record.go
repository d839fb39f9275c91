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

// RecordRepository 的 DAO 在构造时就绑定了某一种履历的集合。
// 仓储本身不拦截"调错方法"，那是服务层的事
type RecordRepository interface {
	GetAllExperienceRecords(ctx context.Context) ([]domain.ExperienceRecord, error)
	GetAllEducationalRecords(ctx context.Context) ([]domain.EducationalRecord, error)
	GetExperienceRecordByID(ctx context.Context, id string) (*domain.ExperienceRecord, error)
	GetEducationalRecordByID(ctx context.Context, id string) (*domain.EducationalRecord, error)
}

type recordRepository struct {
	dao dao.RecordDAO
}

func NewRecordRepository(d dao.RecordDAO) RecordRepository {
	return &recordRepository{
		dao: d,
	}
}

func (r *recordRepository) GetAllExperienceRecords(ctx context.Context) ([]domain.ExperienceRecord, error) {
	recs, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]domain.ExperienceRecord, 0, len(recs))
	for _, rec := range recs {
		record, err := r.toExperienceDomain(rec)
		if err != nil {
			return nil, err
		}
		res = append(res, record)
	}
	return res, nil
}

func (r *recordRepository) GetAllEducationalRecords(ctx context.Context) ([]domain.EducationalRecord, error) {
	recs, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]domain.EducationalRecord, 0, len(recs))
	for _, rec := range recs {
		record, err := r.toEducationalDomain(rec)
		if err != nil {
			return nil, err
		}
		res = append(res, record)
	}
	return res, nil
}

func (r *recordRepository) GetExperienceRecordByID(ctx context.Context, id string) (*domain.ExperienceRecord, error) {
	if err := requireString("ID", id); err != nil {
		return nil, err
	}
	rec, err := r.dao.FindByID(ctx, id)
	if err != nil || rec == nil {
		return nil, err
	}
	record, err := r.toExperienceDomain(*rec)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *recordRepository) GetEducationalRecordByID(ctx context.Context, id string) (*domain.EducationalRecord, error) {
	if err := requireString("ID", id); err != nil {
		return nil, err
	}
	rec, err := r.dao.FindByID(ctx, id)
	if err != nil || rec == nil {
		return nil, err
	}
	record, err := r.toEducationalDomain(*rec)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *recordRepository) validateBase(rec dao.Record) error {
	if rec.StartDate == 0 || rec.EndDate == 0 || rec.Description == "" ||
		rec.Location == "" || rec.Skills == nil {
		return errs.MissingFieldError{Kind: "Record", ID: rec.ID}
	}
	return nil
}

func (r *recordRepository) toBaseDomain(rec dao.Record) domain.Record {
	return domain.Record{
		ID:          rec.ID,
		Start:       rec.StartDate.Time(),
		End:         rec.EndDate.Time(),
		Description: rec.Description,
		Location:    rec.Location,
		SkillIDs:    rec.Skills,
	}
}

func (r *recordRepository) toExperienceDomain(rec dao.Record) (domain.ExperienceRecord, error) {
	if err := r.validateBase(rec); err != nil {
		return domain.ExperienceRecord{}, err
	}
	if rec.CompanyName == "" || rec.Title == "" {
		return domain.ExperienceRecord{}, errs.MissingFieldError{Kind: "Record", ID: rec.ID}
	}
	return domain.ExperienceRecord{
		Record:      r.toBaseDomain(rec),
		CompanyName: rec.CompanyName,
		Title:       rec.Title,
	}, nil
}

func (r *recordRepository) toEducationalDomain(rec dao.Record) (domain.EducationalRecord, error) {
	if err := r.validateBase(rec); err != nil {
		return domain.EducationalRecord{}, err
	}
	if rec.InstitutionName == "" || rec.Degree == "" {
		return domain.EducationalRecord{}, errs.MissingFieldError{Kind: "Record", ID: rec.ID}
	}
	return domain.EducationalRecord{
		Record:          r.toBaseDomain(rec),
		InstitutionName: rec.InstitutionName,
		Degree:          rec.Degree,
	}, nil
}
