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

//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/webfolio/internal/repository"
	"github.com/ecodeclub/webfolio/internal/repository/dao"
	"github.com/ecodeclub/webfolio/internal/service"
	"github.com/ecodeclub/webfolio/internal/web"
	"github.com/google/wire"
)

func InitApp() (*App, error) {
	wire.Build(
		InitMongo,
		InitDialer,
		InitContactService,

		dao.NewSkillDAO,
		dao.NewProjectDAO,
		dao.NewCourseDAO,
		dao.NewCertificationDAO,

		repository.NewSkillRepository,
		repository.NewProjectRepository,
		repository.NewCourseRepository,
		repository.NewCertificationRepository,

		service.NewSkillService,
		service.NewProjectService,
		service.NewCourseService,
		service.NewCertificationService,

		web.NewSkillHandler,
		web.NewProjectHandler,
		web.NewCourseHandler,
		web.NewCertificationHandler,
		web.NewContactHandler,
		initRecordHandler,

		initGinServer,
		wire.Struct(new(App), "*"),
	)
	return new(App), nil
}
