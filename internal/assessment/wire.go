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

package assessment

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"

	"github.com/mekongtech/recruitment/internal/assessment/internal/domain"
	"github.com/mekongtech/recruitment/internal/assessment/internal/repository"
	"github.com/mekongtech/recruitment/internal/assessment/internal/repository/cache"
	"github.com/mekongtech/recruitment/internal/assessment/internal/repository/dao"
	"github.com/mekongtech/recruitment/internal/assessment/internal/service"
	"github.com/mekongtech/recruitment/internal/assessment/internal/web"
	"github.com/mekongtech/recruitment/internal/candidate"
	"github.com/mekongtech/recruitment/internal/pipeline"
	"github.com/mekongtech/recruitment/internal/position"
)

func InitModule(db *egorm.Component, ec ecache.Cache,
	candidateModule *candidate.Module,
	positionModule *position.Module,
	pipelineModule *pipeline.Module) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		InitService,
		web.NewHandler,
		web.NewAdminHandler,
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

type scoringConfig struct {
	AutoApproveThreshold float64 `yaml:"autoApproveThreshold"`
	ManualReviewMin      float64 `yaml:"manualReviewMin"`
	IQWeight             float64 `yaml:"iqWeight"`
	TechWeight           float64 `yaml:"techWeight"`
}

func InitService(db *egorm.Component, ec ecache.Cache,
	candidateModule *candidate.Module,
	positionModule *position.Module,
	pipelineModule *pipeline.Module) Service {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		cfg := scoringConfig{
			AutoApproveThreshold: 70,
			ManualReviewMin:      50,
			IQWeight:             0.4,
			TechWeight:           0.6,
		}
		err = econf.UnmarshalKey("assessment", &cfg)
		if err != nil {
			panic(err)
		}
		repo := repository.NewAssessmentRepository(
			dao.NewAssessmentGORMDAO(db),
			cache.NewQuestionSetECache(ec),
			cache.NewSessionECache(ec))
		svc, err = service.NewService(repo,
			candidateModule.Svc,
			positionModule.Svc,
			pipelineModule.Svc,
			service.ScoringConfig{
				AutoApproveThreshold: cfg.AutoApproveThreshold,
				ManualReviewMin:      cfg.ManualReviewMin,
				Weights: map[domain.Category]float64{
					domain.CategoryIQ:   cfg.IQWeight,
					domain.CategoryTech: cfg.TechWeight,
				},
			})
		if err != nil {
			panic(err)
		}
	})
	return svc
}
