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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"

	"github.com/mekongtech/recruitment/internal/audit/internal/domain"
	"github.com/mekongtech/recruitment/internal/audit/internal/repository/dao"
)

var ErrDuplicatedRecord = dao.ErrDuplicatedAuditLog

type AuditRepository interface {
	Create(ctx context.Context, r domain.Record) (int64, error)
	FindByBiz(ctx context.Context, biz string, bizID int64, offset, limit int) ([]domain.Record, error)
	CountByBiz(ctx context.Context, biz string, bizID int64) (int64, error)
}

func NewAuditRepository(d dao.AuditLogDAO) AuditRepository {
	return &auditRepository{dao: d}
}

type auditRepository struct {
	dao dao.AuditLogDAO
}

func (a *auditRepository) Create(ctx context.Context, r domain.Record) (int64, error) {
	return a.dao.Create(ctx, dao.AuditLog{
		Key:       r.Key,
		ActorId:   r.ActorID,
		ActorRole: r.ActorRole,
		Action:    r.Action,
		Biz:       r.Biz,
		BizId:     r.BizID,
		Detail:    r.Detail,
	})
}

func (a *auditRepository) FindByBiz(ctx context.Context, biz string, bizID int64, offset, limit int) ([]domain.Record, error) {
	logs, err := a.dao.FindByBiz(ctx, biz, bizID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(logs, func(idx int, src dao.AuditLog) domain.Record {
		return domain.Record{
			ID:        src.Id,
			Key:       src.Key,
			ActorID:   src.ActorId,
			ActorRole: src.ActorRole,
			Action:    src.Action,
			Biz:       src.Biz,
			BizID:     src.BizId,
			Detail:    src.Detail,
			Ctime:     src.Ctime,
		}
	}), nil
}

func (a *auditRepository) CountByBiz(ctx context.Context, biz string, bizID int64) (int64, error) {
	return a.dao.CountByBiz(ctx, biz, bizID)
}
