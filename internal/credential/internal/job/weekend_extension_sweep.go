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

package job

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/task/ecron"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mekongtech/recruitment/internal/credential/internal/service"
)

var _ ecron.NamedJob = (*WeekendExtensionSweepJob)(nil)

// WeekendExtensionSweepJob 把落在周五到周日的到期时间顺延到周一，
// 每条凭证只顺延一次，和在线请求并发跑是安全的
type WeekendExtensionSweepJob struct {
	svc      service.Service
	extended prometheus.Counter
}

func NewWeekendExtensionSweepJob(svc service.Service) *WeekendExtensionSweepJob {
	return &WeekendExtensionSweepJob{
		svc: svc,
		extended: promauto.NewCounter(prometheus.CounterOpts{
			Name: "credential_weekend_extensions_total",
			Help: "Total number of credentials auto-extended over weekends",
		}),
	}
}

func (j *WeekendExtensionSweepJob) Name() string {
	return "WeekendExtensionSweepJob"
}

func (j *WeekendExtensionSweepJob) Run(ctx context.Context) error {
	count, err := j.svc.RunWeekendExtensionSweep(ctx)
	if err != nil {
		return fmt.Errorf("周末顺延扫描失败: %w", err)
	}
	j.extended.Add(float64(count))
	return nil
}
