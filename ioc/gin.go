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
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hireflow/internal/analysis"
	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/interview"
	"github.com/ecodeclub/hireflow/internal/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	appHdl *application.Handler,
	intrHdl *interview.Handler,
	analysisHdl *analysis.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder("hireflow", nil).Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc:  allowOrigin(econf.GetStringSlice("web.allowOrigins")),
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	appHdl.PrivateRoutes(res.Engine)
	intrHdl.PrivateRoutes(res.Engine)

	recruiter := res.Group("", middleware.NewCheckRoleMiddlewareBuilder().Build(middleware.RoleRecruiter))
	appHdl.RecruiterRoutes(recruiter)
	analysisHdl.RecruiterRoutes(recruiter)
	return res
}

func allowOrigin(domains []string) func(origin string) bool {
	return func(origin string) bool {
		if strings.HasPrefix(origin, "http://localhost") {
			return true
		}
		for _, d := range domains {
			if strings.Contains(origin, d) {
				return true
			}
		}
		return false
	}
}
