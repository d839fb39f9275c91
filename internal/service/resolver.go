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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/webfolio/internal/domain"
	"github.com/ecodeclub/webfolio/internal/repository"
	"golang.org/x/sync/errgroup"
)

// SkillCarrier 是带技能引用的实体。WithSkills 返回副本，
// 所有消费方都经由这里把技能 ID 换成完整的技能对象
type SkillCarrier[T any] interface {
	SkillRefs() []string
	WithSkills(skills []domain.Skill) T
}

// ResolveSkills 解析单个实体的技能引用。入参为 nil 时返回 nil，不会修改入参
func ResolveSkills[T SkillCarrier[T]](ctx context.Context,
	repo repository.SkillRepository, entity *T) (*T, error) {
	if entity == nil {
		return nil, nil
	}
	refs := (*entity).SkillRefs()
	skills, err := repo.GetByIDs(ctx, refs)
	if err != nil {
		return nil, err
	}
	// $in 不保证顺序，按引用顺序重排
	m := slice.ToMap(skills, func(s domain.Skill) string {
		return s.ID
	})
	ordered := make([]domain.Skill, 0, len(refs))
	for _, ref := range refs {
		if s, ok := m[ref]; ok {
			ordered = append(ordered, s)
		}
	}
	res := (*entity).WithSkills(ordered)
	return &res, nil
}

// ResolveSkillsAll 并发解析一批实体，保持输入顺序。
// 任何一个实体解析失败整批失败
func ResolveSkillsAll[T SkillCarrier[T]](ctx context.Context,
	repo repository.SkillRepository, entities []T) ([]T, error) {
	if len(entities) == 0 {
		return nil, nil
	}
	res := make([]T, len(entities))
	var eg errgroup.Group
	for i := range entities {
		i := i
		eg.Go(func() error {
			resolved, err := ResolveSkills(ctx, repo, &entities[i])
			if err != nil {
				return err
			}
			res[i] = *resolved
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
