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

var _ ecron.NamedJob = (*ExpiryCleanupSweepJob)(nil)

// ExpiryCleanupSweepJob 纯记账：把已过期的 active 凭证标成 expired。
// 校验本身不依赖这个任务，没扫到的过期凭证照样过不了校验。
type ExpiryCleanupSweepJob struct {
	svc     service.Service
	expired prometheus.Counter
}

func NewExpiryCleanupSweepJob(svc service.Service) *ExpiryCleanupSweepJob {
	return &ExpiryCleanupSweepJob{
		svc: svc,
		expired: promauto.NewCounter(prometheus.CounterOpts{
			Name: "credential_expired_total",
			Help: "Total number of credentials marked expired",
		}),
	}
}

func (j *ExpiryCleanupSweepJob) Name() string {
	return "ExpiryCleanupSweepJob"
}

func (j *ExpiryCleanupSweepJob) Run(ctx context.Context) error {
	count, err := j.svc.RunExpiryCleanupSweep(ctx)
	if err != nil {
		return fmt.Errorf("过期清理扫描失败: %w", err)
	}
	j.expired.Add(float64(count))
	return nil
}
