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

package notification

import (
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"

	"github.com/mekongtech/recruitment/internal/email"
	"github.com/mekongtech/recruitment/internal/notification/internal/service"
)

func InitModule(emailSvc email.Service) *Module {
	wire.Build(
		wire.Struct(new(Module), "*"),
		InitService,
	)
	return new(Module)
}

func InitService(emailSvc email.Service) Service {
	return service.NewService(emailSvc, econf.GetString("email.from"))
}
