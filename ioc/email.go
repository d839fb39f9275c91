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
	"github.com/ecodeclub/webfolio/internal/service"
	"github.com/go-gomail/gomail"
	"github.com/gotomicro/ego/core/econf"
)

func InitDialer() *gomail.Dialer {
	return gomail.NewDialer(
		econf.GetString("smtp.host"),
		econf.GetInt("smtp.port"),
		econf.GetString("smtp.username"),
		econf.GetString("smtp.password"),
	)
}

func InitContactService(dialer *gomail.Dialer) service.ContactService {
	return service.NewContactService(dialer, econf.GetString("smtp.to"))
}
