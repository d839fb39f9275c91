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
	"errors"
	"testing"

	"github.com/ecodeclub/webfolio/internal/domain"
	"github.com/ecodeclub/webfolio/internal/errs"
	"github.com/ecodeclub/webfolio/internal/repository/dao"
	daomocks "github.com/ecodeclub/webfolio/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCourseRepository_GetByID(t *testing.T) {
	testCases := []struct {
		name       string
		id         string
		mock       func(ctrl *gomock.Controller) dao.CourseDAO
		wantCourse *domain.Course
		wantErr    error
	}{
		{
			name: "查询成功",
			id:   "1",
			mock: func(ctrl *gomock.Controller) dao.CourseDAO {
				d := daomocks.NewMockCourseDAO(ctrl)
				d.EXPECT().FindByID(gomock.Any(), "1").Return(&dao.Course{
					ID:          "1",
					Name:        "算法导论",
					Code:        "CS101",
					Description: "基础算法课程",
					Institution: "浙江大学",
					Skills:      []string{"algo"},
				}, nil)
				return d
			},
			wantCourse: &domain.Course{
				ID:          "1",
				Name:        "算法导论",
				Code:        "CS101",
				Description: "基础算法课程",
				Institution: "浙江大学",
				SkillIDs:    []string{"algo"},
			},
		},
		{
			name: "技能列表为空也是合法数据",
			id:   "2",
			mock: func(ctrl *gomock.Controller) dao.CourseDAO {
				d := daomocks.NewMockCourseDAO(ctrl)
				d.EXPECT().FindByID(gomock.Any(), "2").Return(&dao.Course{
					ID:          "2",
					Name:        "操作系统",
					Code:        "CS202",
					Description: "操作系统原理",
					Institution: "浙江大学",
					Skills:      []string{},
				}, nil)
				return d
			},
			wantCourse: &domain.Course{
				ID:          "2",
				Name:        "操作系统",
				Code:        "CS202",
				Description: "操作系统原理",
				Institution: "浙江大学",
				SkillIDs:    []string{},
			},
		},
		{
			name: "缺课程代码",
			id:   "1",
			mock: func(ctrl *gomock.Controller) dao.CourseDAO {
				d := daomocks.NewMockCourseDAO(ctrl)
				d.EXPECT().FindByID(gomock.Any(), "1").Return(&dao.Course{
					ID:          "1",
					Name:        "算法导论",
					Description: "基础算法课程",
					Institution: "浙江大学",
				}, nil)
				return d
			},
			wantErr: errs.MissingFieldError{Kind: "Course", ID: "1"},
		},
		{
			name: "查不到返回 nil",
			id:   "404",
			mock: func(ctrl *gomock.Controller) dao.CourseDAO {
				d := daomocks.NewMockCourseDAO(ctrl)
				d.EXPECT().FindByID(gomock.Any(), "404").Return(nil, nil)
				return d
			},
		},
		{
			name: "ID 为空，不碰存储",
			id:   "",
			mock: func(ctrl *gomock.Controller) dao.CourseDAO {
				return daomocks.NewMockCourseDAO(ctrl)
			},
			wantErr: errs.InvalidArgumentError{Field: "ID"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCourseRepository(tc.mock(ctrl))
			cr, err := repo.GetByID(context.Background(), tc.id)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantCourse, cr)
		})
	}
}

func TestCourseRepository_GetAll(t *testing.T) {
	testCases := []struct {
		name        string
		mock        func(ctrl *gomock.Controller) dao.CourseDAO
		wantCourses []domain.Course
		wantErr     error
	}{
		{
			name: "查询成功，保持存储顺序",
			mock: func(ctrl *gomock.Controller) dao.CourseDAO {
				d := daomocks.NewMockCourseDAO(ctrl)
				d.EXPECT().FindAll(gomock.Any()).Return([]dao.Course{
					{ID: "1", Name: "算法导论", Code: "CS101", Description: "基础算法课程", Institution: "浙江大学"},
					{ID: "2", Name: "操作系统", Code: "CS202", Description: "操作系统原理", Institution: "浙江大学"},
				}, nil)
				return d
			},
			wantCourses: []domain.Course{
				{ID: "1", Name: "算法导论", Code: "CS101", Description: "基础算法课程", Institution: "浙江大学"},
				{ID: "2", Name: "操作系统", Code: "CS202", Description: "操作系统原理", Institution: "浙江大学"},
			},
		},
		{
			name: "缺开课机构，整个查询失败",
			mock: func(ctrl *gomock.Controller) dao.CourseDAO {
				d := daomocks.NewMockCourseDAO(ctrl)
				d.EXPECT().FindAll(gomock.Any()).Return([]dao.Course{
					{ID: "1", Name: "算法导论", Code: "CS101", Description: "基础算法课程"},
				}, nil)
				return d
			},
			wantErr: errs.MissingFieldError{Kind: "Course", ID: "1"},
		},
		{
			name: "存储报错原样往上抛",
			mock: func(ctrl *gomock.Controller) dao.CourseDAO {
				d := daomocks.NewMockCourseDAO(ctrl)
				d.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("Test"))
				return d
			},
			wantErr: errors.New("Test"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCourseRepository(tc.mock(ctrl))
			crs, err := repo.GetAll(context.Background())
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantCourses, crs)
		})
	}
}
