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
	"strings"

	"github.com/ecodeclub/webfolio/internal/web"
	"github.com/gin-contrib/cors"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinServer(skillHdl *web.SkillHandler,
	projectHdl *web.ProjectHandler,
	courseHdl *web.CourseHandler,
	certHdl *web.CertificationHandler,
	recordHdl *web.RecordHandler,
	contactHdl *web.ContactHandler,
) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		AllowHeaders: []string{"Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我自己的域名过来的
			return strings.Contains(origin, econf.GetString("web.domain"))
		},
	}))
	skillHdl.PublicRoutes(res.Engine)
	projectHdl.PublicRoutes(res.Engine)
	courseHdl.PublicRoutes(res.Engine)
	certHdl.PublicRoutes(res.Engine)
	recordHdl.PublicRoutes(res.Engine)
	contactHdl.PublicRoutes(res.Engine)
	return res
}
