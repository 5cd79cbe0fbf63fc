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

package pipeline

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"

	"github.com/mekongtech/recruitment/internal/candidate"
	"github.com/mekongtech/recruitment/internal/notification"
	"github.com/mekongtech/recruitment/internal/pipeline/internal/event"
	"github.com/mekongtech/recruitment/internal/pipeline/internal/service"
	"github.com/mekongtech/recruitment/internal/pipeline/internal/web"
)

func InitModule(q mq.MQ, candidateModule *candidate.Module, notificationModule *notification.Module) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		InitService,
		web.NewAdminHandler,
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(q mq.MQ, candidateModule *candidate.Module, notificationModule *notification.Module) Service {
	once.Do(func() {
		var cfg service.Config
		err := econf.UnmarshalKey("pipeline", &cfg)
		if err != nil {
			panic(err)
		}
		statusProducer, err := event.NewStatusEventProducer(q)
		if err != nil {
			panic(err)
		}
		auditProducer, err := event.NewAuditEventProducer(q)
		if err != nil {
			panic(err)
		}
		svc = service.NewService(candidateModule.Svc, notificationModule.Svc, statusProducer, auditProducer, cfg)
	})
	return svc
}
