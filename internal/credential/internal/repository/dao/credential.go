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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type CredentialDAO interface {
	Insert(ctx context.Context, c Credential) (int64, error)
	// DeactivateActive 把候选人在该环节的 active 凭证全部置为 inactive，
	// 新凭证签发前调用，保证同一环节至多一条 active
	DeactivateActive(ctx context.Context, candidateID int64, stage uint8) error
	FindByLinkId(ctx context.Context, linkID string) (Credential, error)
	FindById(ctx context.Context, id int64) (Credential, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]Credential, error)
	// FindActiveExpiringBetween 扫描任务用，按到期时间取 active 凭证
	FindActiveExpiringBetween(ctx context.Context, begin, end int64) ([]Credential, error)

	// UpdateExpiry 手动延期，只对 active 记录生效
	UpdateExpiry(ctx context.Context, id int64, expiresAt int64) (int64, error)
	// MarkAutoExtended 周末顺延。auto_extended 条件保证重跑不会二次顺延。
	MarkAutoExtended(ctx context.Context, id int64, expiresAt int64) (int64, error)
	MarkReminder24hSent(ctx context.Context, id int64) (int64, error)
	MarkReminder3hSent(ctx context.Context, id int64) (int64, error)
	// ExpireOverdue 把已过期但还是 active 的记录标成 expired，返回条数
	ExpireOverdue(ctx context.Context, now int64) (int64, error)

	IncrFailedAttempts(ctx context.Context, id int64) error
	// RecordSuccess 校验成功，清零失败计数并记录最近一次使用
	RecordSuccess(ctx context.Context, id int64, usedAt int64, ip string) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type credentialDAO struct {
	db *egorm.Component
}

func NewCredentialDAO(db *egorm.Component) CredentialDAO {
	return &credentialDAO{db: db}
}

func (d *credentialDAO) Insert(ctx context.Context, c Credential) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := d.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (d *credentialDAO) DeactivateActive(ctx context.Context, candidateID int64, stage uint8) error {
	return d.db.WithContext(ctx).Model(&Credential{}).
		Where("candidate_id = ? AND stage = ? AND status = ?", candidateID, stage, "active").
		Updates(map[string]any{
			"status": "inactive",
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *credentialDAO) FindByLinkId(ctx context.Context, linkID string) (Credential, error) {
	var c Credential
	err := d.db.WithContext(ctx).Where("link_id = ?", linkID).First(&c).Error
	return c, err
}

func (d *credentialDAO) FindById(ctx context.Context, id int64) (Credential, error) {
	var c Credential
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (d *credentialDAO) ListByCandidate(ctx context.Context, candidateID int64) ([]Credential, error) {
	var res []Credential
	err := d.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (d *credentialDAO) FindActiveExpiringBetween(ctx context.Context, begin, end int64) ([]Credential, error) {
	var res []Credential
	err := d.db.WithContext(ctx).
		Where("status = ? AND expires_at >= ? AND expires_at <= ?", "active", begin, end).
		Find(&res).Error
	return res, err
}

func (d *credentialDAO) UpdateExpiry(ctx context.Context, id int64, expiresAt int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Credential{}).
		Where("id = ? AND status = ?", id, "active").
		Updates(map[string]any{
			"expires_at":      expiresAt,
			"extension_count": gorm.Expr("extension_count + 1"),
			"utime":           time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *credentialDAO) MarkAutoExtended(ctx context.Context, id int64, expiresAt int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Credential{}).
		Where("id = ? AND status = ? AND auto_extended = ?", id, "active", false).
		Updates(map[string]any{
			"expires_at":      expiresAt,
			"auto_extended":   true,
			"extension_count": gorm.Expr("extension_count + 1"),
			"utime":           time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *credentialDAO) MarkReminder24hSent(ctx context.Context, id int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Credential{}).
		Where("id = ? AND reminder_24h_sent = ?", id, false).
		Updates(map[string]any{
			"reminder_24h_sent": true,
			"utime":             time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *credentialDAO) MarkReminder3hSent(ctx context.Context, id int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Credential{}).
		Where("id = ? AND reminder_3h_sent = ?", id, false).
		Updates(map[string]any{
			"reminder_3h_sent": true,
			"utime":            time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *credentialDAO) ExpireOverdue(ctx context.Context, now int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Credential{}).
		Where("status = ? AND expires_at < ?", "active", now).
		Updates(map[string]any{
			"status": "expired",
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *credentialDAO) IncrFailedAttempts(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Model(&Credential{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"failed_attempts": gorm.Expr("failed_attempts + 1"),
			"utime":           time.Now().UnixMilli(),
		}).Error
}

func (d *credentialDAO) RecordSuccess(ctx context.Context, id int64, usedAt int64, ip string) error {
	return d.db.WithContext(ctx).Model(&Credential{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"failed_attempts": 0,
			"last_used_at":    usedAt,
			"last_used_ip":    ip,
			"utime":           time.Now().UnixMilli(),
		}).Error
}

func (d *credentialDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return d.db.WithContext(ctx).Model(&Credential{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

// Credential 访问凭证。密钥只存 bcrypt 哈希。
type Credential struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:凭证自增ID"`
	CandidateId int64  `gorm:"index:idx_candidate_id;comment:候选人ID"`
	LinkId      string `gorm:"type:varchar(64);uniqueIndex:unq_link_id;comment:对外链接标识"`
	SecretHash  string `gorm:"type:varchar(128);comment:密钥的bcrypt哈希"`
	Stage       uint8  `gorm:"comment:环节 1-笔试 2-面试"`
	IssuedAt    int64  `gorm:"comment:签发时间"`
	ExpiresAt   int64  `gorm:"index:idx_status_expires_at,priority:2;comment:到期时间"`
	Status      string `gorm:"type:varchar(16);index:idx_status_expires_at,priority:1;comment:active/inactive/expired"`

	FailedAttempts  int    `gorm:"comment:连续猜错次数"`
	AutoExtended    bool   `gorm:"comment:周末顺延标记"`
	ExtensionCount  int    `gorm:"comment:累计延期次数"`
	Reminder24hSent bool   `gorm:"comment:24小时提醒已发"`
	Reminder3hSent  bool   `gorm:"comment:3小时提醒已发"`
	LastUsedAt      int64  `gorm:"comment:最近一次使用时间"`
	LastUsedIP      string `gorm:"type:varchar(64);comment:最近一次使用IP"`

	Ctime int64
	Utime int64
}
