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

const certificationCollection = "certifications"

type CertificationDAO interface {
	FindAll(ctx context.Context) ([]Certification, error)
	FindByID(ctx context.Context, id string) (*Certification, error)
	FindByName(ctx context.Context, name string) (*Certification, error)
	FindByInstitution(ctx context.Context, institution string) ([]Certification, error)
}

type certificationDAO struct {
	coll *mongo.Collection
}

func NewCertificationDAO(db *mongo.Database) CertificationDAO {
	return &certificationDAO{
		coll: db.Collection(certificationCollection),
	}
}

func (c *certificationDAO) FindAll(ctx context.Context) ([]Certification, error) {
	return findAll[Certification](ctx, c.coll)
}

func (c *certificationDAO) FindByID(ctx context.Context, id string) (*Certification, error) {
	return findOneByID[Certification](ctx, c.coll, id)
}

func (c *certificationDAO) FindByName(ctx context.Context, name string) (*Certification, error) {
	return findOneByField[Certification](ctx, c.coll, "name", name)
}

func (c *certificationDAO) FindByInstitution(ctx context.Context, institution string) ([]Certification, error) {
	return findManyByField[Certification](ctx, c.coll, "institution", institution)
}
