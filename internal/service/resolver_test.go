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

func TestResolveSkills(t *testing.T) {
	goSkill := domain.Skill{ID: "go", Name: "Go", Description: "后端语言", Level: domain.SkillLevelHigh}
	mongoSkill := domain.Skill{ID: "mongo", Name: "MongoDB", Description: "文档数据库", Level: domain.SkillLevelMid}

	t.Run("解析后引用清空，顺序跟引用走", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockSkillRepository(ctrl)
		// $in 查询不保证返回顺序，这里故意倒序返回
		repo.EXPECT().GetByIDs(gomock.Any(), []string{"go", "mongo"}).
			Return([]domain.Skill{mongoSkill, goSkill}, nil)

		prj := domain.Project{ID: "1", Name: "webfolio", SkillIDs: []string{"go", "mongo"}}
		resolved, err := ResolveSkills(context.Background(), repo, &prj)
		require.NoError(t, err)
		require.NotNil(t, resolved)
		assert.Equal(t, []domain.Skill{goSkill, mongoSkill}, resolved.Skills)
		assert.Nil(t, resolved.SkillIDs)
		// 入参不能被改动
		assert.Equal(t, []string{"go", "mongo"}, prj.SkillIDs)
		assert.Nil(t, prj.Skills)
	})

	t.Run("技能列表为空也能正常解析", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockSkillRepository(ctrl)
		repo.EXPECT().GetByIDs(gomock.Any(), []string{}).
			Return([]domain.Skill{}, nil)

		crs := domain.Course{ID: "1", Name: "算法导论", SkillIDs: []string{}}
		resolved, err := ResolveSkills(context.Background(), repo, &crs)
		require.NoError(t, err)
		require.NotNil(t, resolved)
		assert.NotNil(t, resolved.Skills)
		assert.Empty(t, resolved.Skills)
		assert.Nil(t, resolved.SkillIDs)
	})

	t.Run("入参为 nil 直接返回 nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockSkillRepository(ctrl)
		resolved, err := ResolveSkills[domain.Project](context.Background(), repo, nil)
		require.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("批量查询出错原样往上抛", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockSkillRepository(ctrl)
		repo.EXPECT().GetByIDs(gomock.Any(), []string{"go"}).
			Return(nil, errors.New("Test"))

		prj := domain.Project{ID: "1", Name: "webfolio", SkillIDs: []string{"go"}}
		resolved, err := ResolveSkills(context.Background(), repo, &prj)
		assert.Equal(t, errors.New("Test"), err)
		assert.Nil(t, resolved)
	})

	t.Run("重复解析结果一致", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockSkillRepository(ctrl)
		repo.EXPECT().GetByIDs(gomock.Any(), []string{"go"}).
			Return([]domain.Skill{goSkill}, nil).Times(2)

		prj := domain.Project{ID: "1", Name: "webfolio", SkillIDs: []string{"go"}}
		first, err := ResolveSkills(context.Background(), repo, &prj)
		require.NoError(t, err)
		second, err := ResolveSkills(context.Background(), repo, &prj)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestResolveSkillsAll(t *testing.T) {
	goSkill := domain.Skill{ID: "go", Name: "Go", Description: "后端语言", Level: domain.SkillLevelHigh}
	k8sSkill := domain.Skill{ID: "k8s", Name: "Kubernetes", Description: "容器编排", Level: domain.SkillLevelMid}

	t.Run("并发解析保持输入顺序", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockSkillRepository(ctrl)
		repo.EXPECT().GetByIDs(gomock.Any(), []string{"go"}).
			Return([]domain.Skill{goSkill}, nil)
		repo.EXPECT().GetByIDs(gomock.Any(), []string{"k8s"}).
			Return([]domain.Skill{k8sSkill}, nil)

		prjs := []domain.Project{
			{ID: "1", Name: "a", SkillIDs: []string{"go"}},
			{ID: "2", Name: "b", SkillIDs: []string{"k8s"}},
		}
		resolved, err := ResolveSkillsAll(context.Background(), repo, prjs)
		require.NoError(t, err)
		require.Len(t, resolved, 2)
		assert.Equal(t, "1", resolved[0].ID)
		assert.Equal(t, []domain.Skill{goSkill}, resolved[0].Skills)
		assert.Equal(t, "2", resolved[1].ID)
		assert.Equal(t, []domain.Skill{k8sSkill}, resolved[1].Skills)
	})

	t.Run("空批直接返回 nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockSkillRepository(ctrl)
		resolved, err := ResolveSkillsAll(context.Background(), repo, []domain.Project{})
		require.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("一个失败整批失败", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockSkillRepository(ctrl)
		repo.EXPECT().GetByIDs(gomock.Any(), []string{"go"}).
			Return([]domain.Skill{goSkill}, nil).AnyTimes()
		repo.EXPECT().GetByIDs(gomock.Any(), []string{"bad"}).
			Return(nil, errors.New("Test")).AnyTimes()

		prjs := []domain.Project{
			{ID: "1", Name: "a", SkillIDs: []string{"go"}},
			{ID: "2", Name: "b", SkillIDs: []string{"bad"}},
		}
		resolved, err := ResolveSkillsAll(context.Background(), repo, prjs)
		assert.Equal(t, errors.New("Test"), err)
		assert.Nil(t, resolved)
	})
}
