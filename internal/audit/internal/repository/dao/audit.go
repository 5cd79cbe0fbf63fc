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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

var ErrDuplicatedAuditLog = errors.New("审计记录重复")

type AuditLogDAO interface {
	Create(ctx context.Context, l AuditLog) (int64, error)
	FindByBiz(ctx context.Context, biz string, bizId int64, offset, limit int) ([]AuditLog, error)
	CountByBiz(ctx context.Context, biz string, bizId int64) (int64, error)
}

type auditLogGORMDAO struct {
	db *egorm.Component
}

func NewAuditLogGORMDAO(db *egorm.Component) AuditLogDAO {
	return &auditLogGORMDAO{db: db}
}

func (g *auditLogGORMDAO) Create(ctx context.Context, l AuditLog) (int64, error) {
	now := time.Now().UnixMilli()
	l.Ctime, l.Utime = now, now
	err := g.db.WithContext(ctx).Create(&l).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				// 消息重复投递，幂等处理
				return 0, ErrDuplicatedAuditLog
			}
		}
		return 0, err
	}
	return l.Id, nil
}

func (g *auditLogGORMDAO) FindByBiz(ctx context.Context, biz string, bizId int64, offset, limit int) ([]AuditLog, error) {
	var res []AuditLog
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id = ?", biz, bizId).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *auditLogGORMDAO) CountByBiz(ctx context.Context, biz string, bizId int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&AuditLog{}).
		Where("biz = ? AND biz_id = ?", biz, bizId).
		Count(&res).Error
	return res, err
}

type AuditLog struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:审计记录自增ID"`
	Key       string `gorm:"type:varchar(256);not null;uniqueIndex:unq_key;comment:去重key"`
	ActorId   int64  `gorm:"not null;index:idx_actor_id;comment:操作人ID,系统操作为0"`
	ActorRole string `gorm:"type:varchar(32);not null;comment:操作人角色"`
	Action    string `gorm:"type:varchar(128);not null;comment:动作"`
	Biz       string `gorm:"type:varchar(64);not null;index:idx_biz;comment:业务类型 candidate/credential/decision"`
	BizId     int64  `gorm:"not null;index:idx_biz;comment:业务ID"`
	Detail    string `gorm:"type:text;comment:详情"`
	Ctime     int64
	Utime     int64
}
