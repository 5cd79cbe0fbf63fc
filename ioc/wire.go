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

//go:build wireinject

package ioc

import (
	"github.com/google/wire"

	"github.com/mekongtech/recruitment/internal/assessment"
	"github.com/mekongtech/recruitment/internal/audit"
	"github.com/mekongtech/recruitment/internal/candidate"
	"github.com/mekongtech/recruitment/internal/credential"
	"github.com/mekongtech/recruitment/internal/executive"
	"github.com/mekongtech/recruitment/internal/interview"
	"github.com/mekongtech/recruitment/internal/notification"
	"github.com/mekongtech/recruitment/internal/pipeline"
	"github.com/mekongtech/recruitment/internal/pkg/middleware"
	"github.com/mekongtech/recruitment/internal/position"
	"github.com/mekongtech/recruitment/internal/user"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitEmailService)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		middleware.NewMetricsBuilder,
		user.InitModule,
		candidate.InitModule,
		position.InitModule,
		notification.InitModule,
		pipeline.InitModule,
		assessment.InitModule,
		interview.InitModule,
		executive.InitModule,
		credential.InitModule,
		audit.InitModule,
		initGinxServer,
		InitAdminServer,
		initCronJobs,
	)
	return new(App), nil
}
