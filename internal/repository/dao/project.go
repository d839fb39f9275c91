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

const projectCollection = "projects"

type ProjectDAO interface {
	FindAll(ctx context.Context) ([]Project, error)
	FindByID(ctx context.Context, id string) (*Project, error)
	FindByName(ctx context.Context, name string) (*Project, error)
}

type projectDAO struct {
	coll *mongo.Collection
}

func NewProjectDAO(db *mongo.Database) ProjectDAO {
	return &projectDAO{
		coll: db.Collection(projectCollection),
	}
}

func (p *projectDAO) FindAll(ctx context.Context) ([]Project, error) {
	return findAll[Project](ctx, p.coll)
}

func (p *projectDAO) FindByID(ctx context.Context, id string) (*Project, error) {
	return findOneByID[Project](ctx, p.coll, id)
}

func (p *projectDAO) FindByName(ctx context.Context, name string) (*Project, error) {
	return findOneByField[Project](ctx, p.coll, "name", name)
}
