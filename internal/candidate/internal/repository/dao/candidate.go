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
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound      = gorm.ErrRecordNotFound
	ErrDuplicatedCandidate = errors.New("候选人重复投递同一岗位")
	// ErrStatusMismatch 预期状态对不上，说明有并发流转或者重复触发
	ErrStatusMismatch = errors.New("候选人状态不匹配")
)

type CandidateDAO interface {
	Insert(ctx context.Context, c Candidate) (int64, error)
	FindById(ctx context.Context, id int64) (Candidate, error)
	List(ctx context.Context, status string, offset, limit int) ([]Candidate, error)
	Count(ctx context.Context, status string) (int64, error)
	// UpdateStatus 带状态前置条件的CAS更新，并发流转靠它裁决
	UpdateStatus(ctx context.Context, id int64, from, to, note string) error
	// OverrideStatus 管理员覆盖，不校验前置状态
	OverrideStatus(ctx context.Context, id int64, to, note string) error
}

type candidateGORMDAO struct {
	db *egorm.Component
}

func NewCandidateGORMDAO(db *egorm.Component) CandidateDAO {
	return &candidateGORMDAO{db: db}
}

func (g *candidateGORMDAO) Insert(ctx context.Context, c Candidate) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Create(&c).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicatedCandidate
			}
		}
		return 0, err
	}
	return c.Id, nil
}

func (g *candidateGORMDAO) FindById(ctx context.Context, id int64) (Candidate, error) {
	var c Candidate
	err := g.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (g *candidateGORMDAO) List(ctx context.Context, status string, offset, limit int) ([]Candidate, error) {
	var res []Candidate
	query := g.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *candidateGORMDAO) Count(ctx context.Context, status string) (int64, error) {
	var res int64
	query := g.db.WithContext(ctx).Model(&Candidate{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&res).Error
	return res, err
}

func (g *candidateGORMDAO) UpdateStatus(ctx context.Context, id int64, from, to, note string) error {
	res := g.db.WithContext(ctx).Model(&Candidate{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":      to,
			"status_note": note,
			"utime":       time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusMismatch
	}
	return nil
}

func (g *candidateGORMDAO) OverrideStatus(ctx context.Context, id int64, to, note string) error {
	res := g.db.WithContext(ctx).Model(&Candidate{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      to,
			"status_note": note,
			"utime":       time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

type Candidate struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:候选人自增ID"`
	Name       string `gorm:"type:varchar(128);not null;comment:姓名"`
	Email      string `gorm:"type:varchar(128);not null;uniqueIndex:unq_email_position;comment:邮箱"`
	Phone      string `gorm:"type:varchar(32);comment:电话"`
	PositionId int64  `gorm:"not null;uniqueIndex:unq_email_position;index:idx_position_id;comment:应聘岗位ID"`
	Status     string `gorm:"type:varchar(32);not null;default:pending;index:idx_status;comment:流水线状态"`
	StatusNote string `gorm:"type:varchar(512);comment:状态备注"`
	Ctime      int64
	Utime      int64
}
