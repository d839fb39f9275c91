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
	"errors"
	"testing"

	"github.com/ecodeclub/webfolio/internal/domain"
	repomocks "github.com/ecodeclub/webfolio/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProjectService_GetByID(t *testing.T) {
	goSkill := domain.Skill{ID: "go", Name: "Go", Description: "后端语言", Level: domain.SkillLevelHigh}
	testCases := []struct {
		name        string
		id          string
		mock        func(ctrl *gomock.Controller) (*repomocks.MockProjectRepository, *repomocks.MockSkillRepository)
		wantProject *domain.Project
		wantErr     error
	}{
		{
			name: "查到之后补全技能",
			id:   "1",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockProjectRepository, *repomocks.MockSkillRepository) {
				repo := repomocks.NewMockProjectRepository(ctrl)
				skills := repomocks.NewMockSkillRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), "1").Return(&domain.Project{
					ID: "1", Name: "webfolio", SkillIDs: []string{"go"},
				}, nil)
				skills.EXPECT().GetByIDs(gomock.Any(), []string{"go"}).
					Return([]domain.Skill{goSkill}, nil)
				return repo, skills
			},
			wantProject: &domain.Project{
				ID: "1", Name: "webfolio",
				Skills: []domain.Skill{goSkill},
			},
		},
		{
			name: "查不到原样返回 nil，不再查技能",
			id:   "404",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockProjectRepository, *repomocks.MockSkillRepository) {
				repo := repomocks.NewMockProjectRepository(ctrl)
				skills := repomocks.NewMockSkillRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), "404").Return(nil, nil)
				return repo, skills
			},
		},
		{
			name: "仓储出错直接往上抛",
			id:   "1",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockProjectRepository, *repomocks.MockSkillRepository) {
				repo := repomocks.NewMockProjectRepository(ctrl)
				skills := repomocks.NewMockSkillRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), "1").Return(nil, errors.New("Test"))
				return repo, skills
			},
			wantErr: errors.New("Test"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, skills := tc.mock(ctrl)
			svc := NewProjectService(repo, skills)
			prj, err := svc.GetByID(context.Background(), tc.id)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantProject, prj)
		})
	}
}

func TestProjectService_GetAll(t *testing.T) {
	t.Run("空列表不碰技能仓储", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockProjectRepository(ctrl)
		skills := repomocks.NewMockSkillRepository(ctrl)
		repo.EXPECT().GetAll(gomock.Any()).Return([]domain.Project{}, nil)

		svc := NewProjectService(repo, skills)
		prjs, err := svc.GetAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, prjs)
	})
}
