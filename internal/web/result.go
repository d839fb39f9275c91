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

package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Result 是所有控制器方法统一返回的信封。
// 查不到数据不是错误：status 还是 200，body 放提示文案，绝不 404
type Result struct {
	Status int `json:"status"`
	Body   any `json:"body"`
}

func dataResult(data any) Result {
	return Result{
		Status: http.StatusOK,
		Body:   data,
	}
}

func messageResult(format string, args ...any) Result {
	return Result{
		Status: http.StatusOK,
		Body:   fmt.Sprintf(format, args...),
	}
}

func requiredFieldResult(field string) Result {
	return Result{
		Status: http.StatusBadRequest,
		Body:   fmt.Sprintf("%s is required and should be a string.", field),
	}
}

func failedResult(format string, args ...any) Result {
	return Result{
		Status: http.StatusInternalServerError,
		Body:   fmt.Sprintf(format, args...),
	}
}

var invalidQueryResult = Result{
	Status: http.StatusBadRequest,
	Body:   "Invalid query parameters",
}

// writeResult 拆信封：status 写成 HTTP 状态码，body 直接作为响应体
func writeResult(ctx *gin.Context, res Result) {
	ctx.JSON(res.Status, res.Body)
}

// allowQuery 在进控制器之前把不认识的查询参数挡掉
func allowQuery(ctx *gin.Context, allowed ...string) bool {
	for key := range ctx.Request.URL.Query() {
		ok := false
		for _, a := range allowed {
			if key == a {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
