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

package executive

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"

	"github.com/mekongtech/recruitment/internal/executive/internal/event"
	"github.com/mekongtech/recruitment/internal/executive/internal/repository"
	"github.com/mekongtech/recruitment/internal/executive/internal/repository/dao"
	"github.com/mekongtech/recruitment/internal/executive/internal/service"
	"github.com/mekongtech/recruitment/internal/executive/internal/web"
	"github.com/mekongtech/recruitment/internal/pipeline"
)

func InitModule(db *egorm.Component, q mq.MQ, pipelineModule *pipeline.Module) (*Module, error) {
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

func InitService(db *egorm.Component, q mq.MQ, pipelineModule *pipeline.Module) Service {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		auditProducer, err := event.NewAuditEventProducer(q)
		if err != nil {
			panic(err)
		}
		d := dao.NewDecisionGORMDAO(db)
		repo := repository.NewDecisionRepository(d)
		svc = service.NewService(repo, pipelineModule.Svc, auditProducer)
	})
	return svc
}
