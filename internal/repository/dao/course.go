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

const courseCollection = "courses"

type CourseDAO interface {
	FindAll(ctx context.Context) ([]Course, error)
	FindByID(ctx context.Context, id string) (*Course, error)
	FindByName(ctx context.Context, name string) (*Course, error)
}

type courseDAO struct {
	coll *mongo.Collection
}

func NewCourseDAO(db *mongo.Database) CourseDAO {
	return &courseDAO{
		coll: db.Collection(courseCollection),
	}
}

func (c *courseDAO) FindAll(ctx context.Context) ([]Course, error) {
	return findAll[Course](ctx, c.coll)
}

func (c *courseDAO) FindByID(ctx context.Context, id string) (*Course, error) {
	return findOneByID[Course](ctx, c.coll, id)
}

func (c *courseDAO) FindByName(ctx context.Context, name string) (*Course, error) {
	return findOneByField[Course](ctx, c.coll, "name", name)
}
