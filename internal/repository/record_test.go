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
	"testing"
	"time"

	"github.com/ecodeclub/webfolio/internal/domain"
	"github.com/ecodeclub/webfolio/internal/errs"
	"github.com/ecodeclub/webfolio/internal/repository/dao"
	daomocks "github.com/ecodeclub/webfolio/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestRecordRepository_GetExperienceRecordByID(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name       string
		id         string
		mock       func(ctrl *gomock.Controller) dao.RecordDAO
		wantRecord *domain.ExperienceRecord
		wantErr    error
	}{
		{
			name: "查询成功",
			id:   "1",
			mock: func(ctrl *gomock.Controller) dao.RecordDAO {
				d := daomocks.NewMockRecordDAO(ctrl)
				d.EXPECT().FindByID(gomock.Any(), "1").Return(&dao.Record{
					ID:          "1",
					StartDate:   primitive.NewDateTimeFromTime(start),
					EndDate:     primitive.NewDateTimeFromTime(end),
					Description: "负责后端开发",
					Location:    "上海",
					Skills:      []string{"go"},
					CompanyName: "Meoying",
					Title:       "Backend Engineer",
				}, nil)
				return d
			},
			wantRecord: &domain.ExperienceRecord{
				Record: domain.Record{
					ID:          "1",
					Start:       primitive.NewDateTimeFromTime(start).Time(),
					End:         primitive.NewDateTimeFromTime(end).Time(),
					Description: "负责后端开发",
					Location:    "上海",
					SkillIDs:    []string{"go"},
				},
				CompanyName: "Meoying",
				Title:       "Backend Engineer",
			},
		},
		{
			name: "缺公司名，校验失败",
			id:   "1",
			mock: func(ctrl *gomock.Controller) dao.RecordDAO {
				d := daomocks.NewMockRecordDAO(ctrl)
				d.EXPECT().FindByID(gomock.Any(), "1").Return(&dao.Record{
					ID:          "1",
					StartDate:   primitive.NewDateTimeFromTime(start),
					EndDate:     primitive.NewDateTimeFromTime(end),
					Description: "负责后端开发",
					Location:    "上海",
					Skills:      []string{"go"},
					Title:       "Backend Engineer",
				}, nil)
				return d
			},
			wantErr: errs.MissingFieldError{Kind: "Record", ID: "1"},
		},
		{
			name: "缺基础字段 location",
			id:   "1",
			mock: func(ctrl *gomock.Controller) dao.RecordDAO {
				d := daomocks.NewMockRecordDAO(ctrl)
				d.EXPECT().FindByID(gomock.Any(), "1").Return(&dao.Record{
					ID:          "1",
					StartDate:   primitive.NewDateTimeFromTime(start),
					EndDate:     primitive.NewDateTimeFromTime(end),
					Description: "负责后端开发",
					Skills:      []string{"go"},
					CompanyName: "Meoying",
					Title:       "Backend Engineer",
				}, nil)
				return d
			},
			wantErr: errs.MissingFieldError{Kind: "Record", ID: "1"},
		},
		{
			name: "查不到返回 nil",
			id:   "404",
			mock: func(ctrl *gomock.Controller) dao.RecordDAO {
				d := daomocks.NewMockRecordDAO(ctrl)
				d.EXPECT().FindByID(gomock.Any(), "404").Return(nil, nil)
				return d
			},
		},
		{
			name: "ID 为空，不碰存储",
			id:   "",
			mock: func(ctrl *gomock.Controller) dao.RecordDAO {
				return daomocks.NewMockRecordDAO(ctrl)
			},
			wantErr: errs.InvalidArgumentError{Field: "ID"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewRecordRepository(tc.mock(ctrl))
			rec, err := repo.GetExperienceRecordByID(context.Background(), tc.id)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantRecord, rec)
		})
	}
}

func TestRecordRepository_GetAllEducationalRecords(t *testing.T) {
	start := time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 6, 30, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name        string
		mock        func(ctrl *gomock.Controller) dao.RecordDAO
		wantRecords []domain.EducationalRecord
		wantErr     error
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) dao.RecordDAO {
				d := daomocks.NewMockRecordDAO(ctrl)
				d.EXPECT().FindAll(gomock.Any()).Return([]dao.Record{
					{
						ID:              "1",
						StartDate:       primitive.NewDateTimeFromTime(start),
						EndDate:         primitive.NewDateTimeFromTime(end),
						Description:     "计算机科学与技术",
						Location:        "杭州",
						Skills:          []string{"algo"},
						InstitutionName: "浙江大学",
						Degree:          "学士",
					},
				}, nil)
				return d
			},
			wantRecords: []domain.EducationalRecord{
				{
					Record: domain.Record{
						ID:          "1",
						Start:       primitive.NewDateTimeFromTime(start).Time(),
						End:         primitive.NewDateTimeFromTime(end).Time(),
						Description: "计算机科学与技术",
						Location:    "杭州",
						SkillIDs:    []string{"algo"},
					},
					InstitutionName: "浙江大学",
					Degree:          "学士",
				},
			},
		},
		{
			name: "缺学位，整个查询失败",
			mock: func(ctrl *gomock.Controller) dao.RecordDAO {
				d := daomocks.NewMockRecordDAO(ctrl)
				d.EXPECT().FindAll(gomock.Any()).Return([]dao.Record{
					{
						ID:              "2",
						StartDate:       primitive.NewDateTimeFromTime(start),
						EndDate:         primitive.NewDateTimeFromTime(end),
						Description:     "计算机科学与技术",
						Location:        "杭州",
						Skills:          []string{"algo"},
						InstitutionName: "浙江大学",
					},
				}, nil)
				return d
			},
			wantErr: errs.MissingFieldError{Kind: "Record", ID: "2"},
		},
		{
			name: "没有文档，返回空切片",
			mock: func(ctrl *gomock.Controller) dao.RecordDAO {
				d := daomocks.NewMockRecordDAO(ctrl)
				d.EXPECT().FindAll(gomock.Any()).Return([]dao.Record{}, nil)
				return d
			},
			wantRecords: []domain.EducationalRecord{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewRecordRepository(tc.mock(ctrl))
			recs, err := repo.GetAllEducationalRecords(context.Background())
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRecords, recs)
		})
	}
}
