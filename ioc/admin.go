// Copyright 2024 mekongtech
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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"

	"github.com/mekongtech/recruitment/internal/assessment"
	"github.com/mekongtech/recruitment/internal/audit"
	"github.com/mekongtech/recruitment/internal/credential"
	"github.com/mekongtech/recruitment/internal/pipeline"
	"github.com/mekongtech/recruitment/internal/user"
)

type AdminServer *egin.Component

func InitAdminServer(
	userModule *user.Module,
	assessmentModule *assessment.Module,
	pipelineModule *pipeline.Module,
	credentialModule *credential.Module,
	auditModule *audit.Module,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我们自己的域名过来的
			return strings.Contains(origin, "mekongtech.com")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(AdminPermission())
	userModule.AdminHdl.PrivateRoutes(res.Engine)
	assessmentModule.AdminHdl.PrivateRoutes(res.Engine)
	pipelineModule.AdminHdl.PrivateRoutes(res.Engine)
	credentialModule.AdminHdl.PrivateRoutes(res.Engine)
	auditModule.AdminHdl.PrivateRoutes(res.Engine)
	return res
}

// AdminPermission 管理端只放行 admin 和 hr
func AdminPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		xctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(xctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusInternalServerError)
			elog.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		role := sess.Claims().Get("role").StringOrDefault("")
		if role != "admin" && role != "hr" {
			ctx.AbortWithStatus(http.StatusForbidden)
			elog.Error("非法访问 admin 接口，角色权限不足",
				elog.String("role", role))
			return
		}
	}
}
