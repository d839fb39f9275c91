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

package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

const skillCollection = "skills"

type SkillDAO interface {
	FindAll(ctx context.Context) ([]Skill, error)
	FindByID(ctx context.Context, id string) (*Skill, error)
	FindByName(ctx context.Context, name string) (*Skill, error)
	// FindByIDs 返回 nil 代表没有结果集，和空结果是两回事
	FindByIDs(ctx context.Context, ids []string) ([]Skill, error)
}

type skillDAO struct {
	coll *mongo.Collection
}

func NewSkillDAO(db *mongo.Database) SkillDAO {
	return &skillDAO{
		coll: db.Collection(skillCollection),
	}
}

func (s *skillDAO) FindAll(ctx context.Context) ([]Skill, error) {
	return findAll[Skill](ctx, s.coll)
}

func (s *skillDAO) FindByID(ctx context.Context, id string) (*Skill, error) {
	return findOneByID[Skill](ctx, s.coll, id)
}

func (s *skillDAO) FindByName(ctx context.Context, name string) (*Skill, error) {
	return findOneByField[Skill](ctx, s.coll, "name", name)
}

func (s *skillDAO) FindByIDs(ctx context.Context, ids []string) ([]Skill, error) {
	return findByIDSet[Skill](ctx, s.coll, ids)
}
