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

package interview

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"

	"github.com/mekongtech/recruitment/internal/interview/internal/repository"
	"github.com/mekongtech/recruitment/internal/interview/internal/repository/dao"
	"github.com/mekongtech/recruitment/internal/interview/internal/service"
	"github.com/mekongtech/recruitment/internal/interview/internal/web"
	"github.com/mekongtech/recruitment/internal/notification"
	"github.com/mekongtech/recruitment/internal/pipeline"
	"github.com/mekongtech/recruitment/internal/user"
)

func InitModule(db *egorm.Component,
	userModule *user.Module,
	notificationModule *notification.Module,
	pipelineModule *pipeline.Module) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		InitService,
		web.NewHandler,
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component,
	userModule *user.Module,
	notificationModule *notification.Module,
	pipelineModule *pipeline.Module) Service {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		repo := repository.NewEvaluationRepository(dao.NewEvaluationGORMDAO(db))
		svc = service.NewService(repo, userModule.Svc, notificationModule.Svc, pipelineModule.Svc)
	})
	return svc
}
