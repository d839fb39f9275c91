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

	"github.com/ecodeclub/webfolio/internal/domain"
	"github.com/ecodeclub/webfolio/internal/errs"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	experienceCollection = "experience-records"
	educationCollection  = "educational-records"
)

type RecordDAO interface {
	FindAll(ctx context.Context) ([]Record, error)
	FindByID(ctx context.Context, id string) (*Record, error)
}

type recordDAO struct {
	coll *mongo.Collection
}

// NewRecordDAO 按履历类型绑定底层集合，类型不认识就构造失败
func NewRecordDAO(db *mongo.Database, kind domain.RecordKind) (RecordDAO, error) {
	var name string
	switch kind {
	case domain.RecordKindExperience:
		name = experienceCollection
	case domain.RecordKindEducation:
		name = educationCollection
	default:
		return nil, errs.InvalidTypeError{Type: string(kind)}
	}
	return &recordDAO{
		coll: db.Collection(name),
	}, nil
}

func (r *recordDAO) FindAll(ctx context.Context) ([]Record, error) {
	return findAll[Record](ctx, r.coll)
}

func (r *recordDAO) FindByID(ctx context.Context, id string) (*Record, error) {
	return findOneByID[Record](ctx, r.coll, id)
}
