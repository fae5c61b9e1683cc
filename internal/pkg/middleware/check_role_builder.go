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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	ClaimRole     = "role"
	RoleRecruiter = "recruiter"
	RoleCandidate = "candidate"
)

// CheckRoleMiddlewareBuilder 角色放在 jwt 的 claims 里面，登录的时候写入
type CheckRoleMiddlewareBuilder struct {
	sp     session.Provider
	logger *elog.Component
}

func NewCheckRoleMiddlewareBuilder() *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		logger: elog.DefaultLogger,
	}
}

func (c *CheckRoleMiddlewareBuilder) Build(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sp := c.sp
		if sp == nil {
			sp = session.DefaultProvider()
		}
		gctx := &ginx.Context{Context: ctx}
		sess, err := sp.Get(gctx)
		if err != nil {
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		role := sess.Claims().Get(ClaimRole).StringOrDefault("")
		if !slice.Contains(roles, role) {
			c.logger.Debug("用户角色不符合要求",
				elog.Int64("uid", sess.Claims().Uid),
				elog.String("role", role))
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}
		ctx.Next()
	}
}
