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
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/session"
	_ "github.com/ecodeclub/hireflow/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCheckRole(t *testing.T) {
	testCases := []struct {
		name     string
		claims   session.Claims
		wantCode int
	}{
		{
			name: "招聘方可以访问",
			claims: session.Claims{Uid: 1, Data: map[string]string{
				ClaimRole: RoleRecruiter,
			}},
			wantCode: http.StatusOK,
		},
		{
			name: "候选人不能访问",
			claims: session.Claims{Uid: 2, Data: map[string]string{
				ClaimRole: RoleCandidate,
			}},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "没有角色",
			claims:   session.Claims{Uid: 3, Data: map[string]string{}},
			wantCode: http.StatusForbidden,
		},
	}
	gin.SetMode(gin.TestMode)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := gin.New()
			server.Use(func(ctx *gin.Context) {
				ctx.Set(session.CtxSessionKey, session.NewMemorySession(tc.claims))
			})
			server.GET("/report", NewCheckRoleMiddlewareBuilder().Build(RoleRecruiter), func(ctx *gin.Context) {
				ctx.Status(http.StatusOK)
			})
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/report", nil)
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}
