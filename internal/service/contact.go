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

package service

import (
	"context"
	"fmt"

	"github.com/go-gomail/gomail"
)

// ContactService 把联系表单转发到站长邮箱
type ContactService interface {
	Send(ctx context.Context, name, email, message string) error
}

type contactService struct {
	d  *gomail.Dialer
	to string
}

func NewContactService(dialer *gomail.Dialer, to string) ContactService {
	return &contactService{
		d:  dialer,
		to: to,
	}
}

func (c *contactService) Send(ctx context.Context, name, email, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.d.Username)
	m.SetHeader("To", c.to)
	m.SetHeader("Reply-To", email)
	m.SetHeader("Subject", fmt.Sprintf("Portfolio contact from %s", name))
	m.SetBody("text/plain", message)
	return c.d.DialAndSend(m)
}
