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

package ioc

import (
	"github.com/ecodeclub/webfolio/internal/domain"
	"github.com/ecodeclub/webfolio/internal/repository"
	"github.com/ecodeclub/webfolio/internal/repository/dao"
	"github.com/ecodeclub/webfolio/internal/service"
	"github.com/ecodeclub/webfolio/internal/web"
	"go.mongodb.org/mongo-driver/mongo"
)

// 两种履历各自绑定一套 DAO/仓储/服务，wire 不方便表达同类型两个实例，手工装
func initRecordHandler(db *mongo.Database, skills repository.SkillRepository) (*web.RecordHandler, error) {
	expSvc, err := initRecordService(db, domain.RecordKindExperience, skills)
	if err != nil {
		return nil, err
	}
	eduSvc, err := initRecordService(db, domain.RecordKindEducation, skills)
	if err != nil {
		return nil, err
	}
	return web.NewRecordHandler(expSvc, eduSvc), nil
}

func initRecordService(db *mongo.Database, kind domain.RecordKind,
	skills repository.SkillRepository) (service.RecordService, error) {
	d, err := dao.NewRecordDAO(db, kind)
	if err != nil {
		return nil, err
	}
	return service.NewRecordService(kind, repository.NewRecordRepository(d), skills), nil
}
