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

var _ ecron.NamedJob = (*ReminderSweepJob)(nil)

// ReminderSweepJob 按剩余时长发到期提醒，标记位保证每档至多一次，
// 跑得比提醒粒度更勤也不会重复发
type ReminderSweepJob struct {
	svc       service.Service
	reminders prometheus.Counter
}

func NewReminderSweepJob(svc service.Service) *ReminderSweepJob {
	return &ReminderSweepJob{
		svc: svc,
		reminders: promauto.NewCounter(prometheus.CounterOpts{
			Name: "credential_reminders_sent_total",
			Help: "Total number of credential expiry reminders sent",
		}),
	}
}

func (j *ReminderSweepJob) Name() string {
	return "ReminderSweepJob"
}

func (j *ReminderSweepJob) Run(ctx context.Context) error {
	count, err := j.svc.RunReminderSweep(ctx)
	if err != nil {
		return fmt.Errorf("到期提醒扫描失败: %w", err)
	}
	j.reminders.Add(float64(count))
	return nil
}
