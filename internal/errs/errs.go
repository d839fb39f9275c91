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

package errs

import (
	"errors"
	"fmt"
)

// ErrNonexistent 是批量技能查询连结果集都没有的情况，
// 注意和"查到了但是是空列表"区分开
var ErrNonexistent = errors.New("queried documents do not exist")

// InvalidArgumentError 是入参校验失败，在任何 I/O 之前返回
type InvalidArgumentError struct {
	Field string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s is required and should be a string.", e.Field)
}

// MissingFieldError 是落库文档缺少必填字段，在映射阶段检测出来。
// 永远往上抛，不允许吞掉之后返回残缺实体
type MissingFieldError struct {
	Kind string
	ID   string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("%s with ID %s is missing mandatory fields.", e.Kind, e.ID)
}

// InvalidTypeError 是用不认识的履历类型构造仓储，构造期直接失败
type InvalidTypeError struct {
	Type string
}

func (e InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid record type: %s", e.Type)
}

// InvalidOperationError 是在类型不匹配的履历服务上调了专属方法，
// 比如在 education 服务上调 experience 的方法
type InvalidOperationError struct {
	Kind string
}

func (e InvalidOperationError) Error() string {
	return fmt.Sprintf("Invalid method for %s record type.", e.Kind)
}
