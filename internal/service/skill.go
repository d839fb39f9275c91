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
	"github.com/ecodeclub/webfolio/internal/repository"
)

// SkillService 没有技能引用要解析，直接透传仓储
type SkillService interface {
	GetAll(ctx context.Context) ([]domain.Skill, error)
	GetByName(ctx context.Context, name string) (*domain.Skill, error)
	GetByID(ctx context.Context, id string) (*domain.Skill, error)
}

type skillService struct {
	repo repository.SkillRepository
}

func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillService{
		repo: repo,
	}
}

func (s *skillService) GetAll(ctx context.Context) ([]domain.Skill, error) {
	return s.repo.GetAll(ctx)
}

func (s *skillService) GetByName(ctx context.Context, name string) (*domain.Skill, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *skillService) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	return s.repo.GetByID(ctx, id)
}
