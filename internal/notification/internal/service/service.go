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

package service

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"

	"github.com/mekongtech/recruitment/internal/email"
)

//go:generate mockgen -source=./service.go -package=notificationmocks -destination=../../mocks/notification.mock.go -typed Service
type Service interface {
	// Send 尽力而为的投递。邮件发不出去只记日志，
	// 绝不把错误传导回业务流程，状态流转不会因为通知失败而回滚。
	Send(ctx context.Context, recipient, subject, body string)
}

type service struct {
	email   email.Service
	from    string
	timeout time.Duration
	logger  *elog.Component
}

func NewService(emailSvc email.Service, from string) Service {
	return &service{
		email:   emailSvc,
		from:    from,
		timeout: 10 * time.Second,
		logger:  elog.DefaultLogger,
	}
}

func (s *service) Send(_ context.Context, recipient, subject, body string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		err := s.email.SendMail(ctx, email.Mail{
			From:    s.from,
			To:      recipient,
			Subject: subject,
			Body:    []byte(body),
		})
		if err != nil {
			s.logger.Error("发送通知邮件失败",
				elog.FieldErr(err),
				elog.String("recipient", recipient),
				elog.String("subject", subject))
		}
	}()
}
