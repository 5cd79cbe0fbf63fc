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

package credential

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"

	"github.com/mekongtech/recruitment/internal/candidate"
	"github.com/mekongtech/recruitment/internal/credential/internal/event"
	"github.com/mekongtech/recruitment/internal/credential/internal/job"
	"github.com/mekongtech/recruitment/internal/credential/internal/repository"
	"github.com/mekongtech/recruitment/internal/credential/internal/repository/dao"
	"github.com/mekongtech/recruitment/internal/credential/internal/service"
	"github.com/mekongtech/recruitment/internal/credential/internal/web"
	"github.com/mekongtech/recruitment/internal/notification"
)

func InitModule(db *egorm.Component, q mq.MQ,
	candidateModule *candidate.Module,
	notificationModule *notification.Module) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		InitService,
		web.NewHandler,
		web.NewAdminHandler,
		job.NewWeekendExtensionSweepJob,
		job.NewReminderSweepJob,
		job.NewExpiryCleanupSweepJob,
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component, q mq.MQ,
	candidateModule *candidate.Module,
	notificationModule *notification.Module) Service {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		var cfg service.Config
		err = econf.UnmarshalKey("credential", &cfg)
		if err != nil {
			panic(err)
		}
		auditProducer, err := event.NewAuditEventProducer(q)
		if err != nil {
			panic(err)
		}
		d := dao.NewCredentialDAO(db)
		repo := repository.NewCredentialRepository(d)
		svc = service.NewService(repo, candidateModule.Svc, notificationModule.Svc, auditProducer, cfg)
	})
	return svc
}
