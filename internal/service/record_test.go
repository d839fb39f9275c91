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
	"testing"

	"github.com/ecodeclub/webfolio/internal/domain"
	"github.com/ecodeclub/webfolio/internal/errs"
	repomocks "github.com/ecodeclub/webfolio/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRecordService_TypeGuard(t *testing.T) {
	t.Run("experience 实例拒绝查教育履历", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		// 仓储和技能仓储都不应该被碰到
		repo := repomocks.NewMockRecordRepository(ctrl)
		skills := repomocks.NewMockSkillRepository(ctrl)
		svc := NewRecordService(domain.RecordKindExperience, repo, skills)

		_, err := svc.GetAllEducationalRecords(context.Background())
		assert.Equal(t, errs.InvalidOperationError{Kind: "education"}, err)
		assert.Equal(t, "Invalid method for education record type.", err.Error())

		_, err = svc.GetEducationalRecordByID(context.Background(), "1")
		assert.Equal(t, errs.InvalidOperationError{Kind: "education"}, err)
	})

	t.Run("education 实例拒绝查工作履历", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockRecordRepository(ctrl)
		skills := repomocks.NewMockSkillRepository(ctrl)
		svc := NewRecordService(domain.RecordKindEducation, repo, skills)

		_, err := svc.GetAllExperienceRecords(context.Background())
		assert.Equal(t, errs.InvalidOperationError{Kind: "experience"}, err)
		assert.Equal(t, "Invalid method for experience record type.", err.Error())

		_, err = svc.GetExperienceRecordByID(context.Background(), "1")
		assert.Equal(t, errs.InvalidOperationError{Kind: "experience"}, err)
	})
}

func TestRecordService_GetExperienceRecordByID(t *testing.T) {
	goSkill := domain.Skill{ID: "go", Name: "Go", Description: "后端语言", Level: domain.SkillLevelHigh}

	t.Run("查到之后补全技能", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockRecordRepository(ctrl)
		skills := repomocks.NewMockSkillRepository(ctrl)
		repo.EXPECT().GetExperienceRecordByID(gomock.Any(), "1").Return(&domain.ExperienceRecord{
			Record:      domain.Record{ID: "1", SkillIDs: []string{"go"}},
			CompanyName: "Meoying",
			Title:       "Backend Engineer",
		}, nil)
		skills.EXPECT().GetByIDs(gomock.Any(), []string{"go"}).
			Return([]domain.Skill{goSkill}, nil)

		svc := NewRecordService(domain.RecordKindExperience, repo, skills)
		rec, err := svc.GetExperienceRecordByID(context.Background(), "1")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, []domain.Skill{goSkill}, rec.Skills)
		assert.Nil(t, rec.SkillIDs)
		assert.Equal(t, "Meoying", rec.CompanyName)
	})

	t.Run("查不到原样返回 nil，不再查技能", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockRecordRepository(ctrl)
		skills := repomocks.NewMockSkillRepository(ctrl)
		repo.EXPECT().GetExperienceRecordByID(gomock.Any(), "404").Return(nil, nil)

		svc := NewRecordService(domain.RecordKindExperience, repo, skills)
		rec, err := svc.GetExperienceRecordByID(context.Background(), "404")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})
}
