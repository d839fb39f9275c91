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

func TestProjectRepository_GetByName(t *testing.T) {
	start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name        string
		projectName string
		mock        func(ctrl *gomock.Controller) dao.ProjectDAO
		wantProject *domain.Project
		wantErr     error
	}{
		{
			name:        "查询成功",
			projectName: "webfolio",
			mock: func(ctrl *gomock.Controller) dao.ProjectDAO {
				d := daomocks.NewMockProjectDAO(ctrl)
				d.EXPECT().FindByName(gomock.Any(), "webfolio").Return(&dao.Project{
					ID:          "1",
					Name:        "webfolio",
					StartDate:   primitive.NewDateTimeFromTime(start),
					EndDate:     primitive.NewDateTimeFromTime(end),
					Description: "个人作品集服务",
					URL:         "https://github.com/ecodeclub/webfolio",
					Skills:      []string{"go", "mongo"},
				}, nil)
				return d
			},
			wantProject: &domain.Project{
				ID:          "1",
				Name:        "webfolio",
				Start:       primitive.NewDateTimeFromTime(start).Time(),
				End:         primitive.NewDateTimeFromTime(end).Time(),
				Description: "个人作品集服务",
				URL:         "https://github.com/ecodeclub/webfolio",
				SkillIDs:    []string{"go", "mongo"},
			},
		},
		{
			name:        "名字为空，不碰存储",
			projectName: "",
			mock: func(ctrl *gomock.Controller) dao.ProjectDAO {
				return daomocks.NewMockProjectDAO(ctrl)
			},
			wantErr: errs.InvalidArgumentError{Field: "Name"},
		},
		{
			name:        "skills 字段缺失视为脏数据",
			projectName: "webfolio",
			mock: func(ctrl *gomock.Controller) dao.ProjectDAO {
				d := daomocks.NewMockProjectDAO(ctrl)
				d.EXPECT().FindByName(gomock.Any(), "webfolio").Return(&dao.Project{
					ID:          "1",
					Name:        "webfolio",
					StartDate:   primitive.NewDateTimeFromTime(start),
					EndDate:     primitive.NewDateTimeFromTime(end),
					Description: "个人作品集服务",
					URL:         "https://github.com/ecodeclub/webfolio",
				}, nil)
				return d
			},
			wantErr: errs.MissingFieldError{Kind: "Project", ID: "1"},
		},
		{
			name:        "查不到返回 nil",
			projectName: "ghost",
			mock: func(ctrl *gomock.Controller) dao.ProjectDAO {
				d := daomocks.NewMockProjectDAO(ctrl)
				d.EXPECT().FindByName(gomock.Any(), "ghost").Return(nil, nil)
				return d
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewProjectRepository(tc.mock(ctrl))
			prj, err := repo.GetByName(context.Background(), tc.projectName)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantProject, prj)
		})
	}
}
