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

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"

	"github.com/mekongtech/recruitment/internal/assessment"
	"github.com/mekongtech/recruitment/internal/candidate"
	"github.com/mekongtech/recruitment/internal/credential"
	"github.com/mekongtech/recruitment/internal/executive"
	"github.com/mekongtech/recruitment/internal/interview"
	"github.com/mekongtech/recruitment/internal/pkg/middleware"
	"github.com/mekongtech/recruitment/internal/position"
	"github.com/mekongtech/recruitment/internal/user"
)

func initGinxServer(sp session.Provider,
	metricsBuilder *middleware.MetricsBuilder,
	userModule *user.Module,
	candidateModule *candidate.Module,
	positionModule *position.Module,
	assessmentModule *assessment.Module,
	interviewModule *interview.Module,
	executiveModule *executive.Module,
	credentialModule *credential.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我们自己的域名过来的
			return strings.Contains(origin, "mekongtech.com")
		},
	}))
	res.Use(metricsBuilder.Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 登录和凭证校验不要求会话
	userModule.Hdl.PublicRoutes(res.Engine)
	credentialModule.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userModule.Hdl.PrivateRoutes(res.Engine)
	candidateModule.Hdl.PrivateRoutes(res.Engine)
	positionModule.Hdl.PrivateRoutes(res.Engine)
	assessmentModule.Hdl.PrivateRoutes(res.Engine)
	interviewModule.Hdl.PrivateRoutes(res.Engine)
	executiveModule.Hdl.PrivateRoutes(res.Engine)
	return res
}
