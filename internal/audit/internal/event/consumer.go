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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"

	"github.com/mekongtech/recruitment/internal/audit/internal/domain"
	"github.com/mekongtech/recruitment/internal/audit/internal/service"
)

type AuditEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewAuditEventConsumer(svc service.Service, q mq.MQ) (*AuditEventConsumer, error) {
	groupID := "audit"
	consumer, err := q.Consumer(auditEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &AuditEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *AuditEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费审计事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *AuditEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt AuditEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	_, err = c.svc.Record(ctx, domain.Record{
		Key:       evt.Key,
		ActorID:   evt.ActorID,
		ActorRole: evt.ActorRole,
		Action:    evt.Action,
		Biz:       evt.Biz,
		BizID:     evt.BizID,
		Detail:    evt.Detail,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicatedRecord) {
			c.logger.Warn("重复消费",
				elog.FieldErr(err),
				elog.Any("AuditEvent", evt))
			return nil
		}
		c.logger.Error("写入审计记录失败",
			elog.FieldErr(err),
			elog.String("action", evt.Action))
	}
	return err
}
