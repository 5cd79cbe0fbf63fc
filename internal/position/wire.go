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

package position

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"

	"github.com/mekongtech/recruitment/internal/position/internal/repository"
	"github.com/mekongtech/recruitment/internal/position/internal/repository/dao"
	"github.com/mekongtech/recruitment/internal/position/internal/service"
	"github.com/mekongtech/recruitment/internal/position/internal/web"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		InitService,
		web.NewHandler,
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.PositionService
)

func InitService(db *egorm.Component) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewPositionGORMDAO(db)
		r := repository.NewPositionRepository(d)
		svc = service.NewPositionService(r)
	})
	return svc
}
