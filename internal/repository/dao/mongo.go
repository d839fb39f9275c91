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

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// 各实体 DAO 共用的查询原语，纯读

func findAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	cur, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrapf(err, "查询 %s 失败", coll.Name())
	}
	docs := make([]T, 0, 8)
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "解码 %s 失败", coll.Name())
	}
	return docs, nil
}

// findOneByID 查不到返回 (nil, nil)，查不到不是错误
func findOneByID[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	return findOneByField[T](ctx, coll, "_id", id)
}

func findOneByField[T any](ctx context.Context, coll *mongo.Collection, field, value string) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, bson.M{field: value}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "查询 %s 失败", coll.Name())
	}
	return &doc, nil
}

func findManyByField[T any](ctx context.Context, coll *mongo.Collection, field, value string) ([]T, error) {
	cur, err := coll.Find(ctx, bson.M{field: value})
	if err != nil {
		return nil, errors.Wrapf(err, "查询 %s 失败", coll.Name())
	}
	docs := make([]T, 0, 4)
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "解码 %s 失败", coll.Name())
	}
	return docs, nil
}

// findByIDSet 返回 nil 代表压根没有结果集，
// 返回非 nil 的空切片代表查了但一个都没匹配上。
// id 集合为空属于后者：空的技能列表是合法数据，不碰存储直接返回空结果
func findByIDSet[T any](ctx context.Context, coll *mongo.Collection, ids []string) ([]T, error) {
	if len(ids) == 0 {
		return make([]T, 0), nil
	}
	cur, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, errors.Wrapf(err, "查询 %s 失败", coll.Name())
	}
	docs := make([]T, 0, len(ids))
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "解码 %s 失败", coll.Name())
	}
	return docs, nil
}
