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
	ErrRecordNotFound     = gorm.ErrRecordNotFound
	ErrDuplicatedDecision = errors.New("候选人已有终面决策记录")
	ErrVersionMismatch    = errors.New("决策记录版本冲突")
)

type DecisionDAO interface {
	Insert(ctx context.Context, d Decision) (int64, error)
	FindByCandidate(ctx context.Context, candidateId int64) (Decision, error)
	List(ctx context.Context, status string, offset, limit int) ([]Decision, error)
	// Update 带版本号的整行更新，版本不匹配返回 ErrVersionMismatch
	Update(ctx context.Context, d Decision) error
}

type decisionGORMDAO struct {
	db *egorm.Component
}

func NewDecisionGORMDAO(db *egorm.Component) DecisionDAO {
	return &decisionGORMDAO{db: db}
}

func (g *decisionGORMDAO) Insert(ctx context.Context, d Decision) (int64, error) {
	now := time.Now().UnixMilli()
	d.Ctime, d.Utime = now, now
	d.Version = 1
	err := g.db.WithContext(ctx).Create(&d).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicatedDecision
			}
		}
		return 0, err
	}
	return d.Id, nil
}

func (g *decisionGORMDAO) FindByCandidate(ctx context.Context, candidateId int64) (Decision, error) {
	var d Decision
	err := g.db.WithContext(ctx).First(&d, "candidate_id = ?", candidateId).Error
	return d, err
}

func (g *decisionGORMDAO) List(ctx context.Context, status string, offset, limit int) ([]Decision, error) {
	var res []Decision
	query := g.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *decisionGORMDAO) Update(ctx context.Context, d Decision) error {
	version := d.Version
	d.Version = version + 1
	d.Utime = time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Decision{}).
		Where("id = ? AND version = ?", d.Id, version).
		Updates(&d)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionMismatch
	}
	return nil
}

type Decision struct {
	Id          int64 `gorm:"primaryKey;autoIncrement;comment:决策自增ID"`
	CandidateId int64 `gorm:"not null;uniqueIndex:unq_candidate_id;comment:候选人ID"`

	CtoId              int64   `gorm:"comment:CTO用户ID，0表示未提交"`
	CtoTechnicalScore  float64 `gorm:"comment:CTO技术分"`
	CtoCulturalScore   float64 `gorm:"comment:CTO文化分"`
	CtoLeadershipScore float64 `gorm:"comment:CTO领导力分"`
	CtoScore           float64 `gorm:"comment:CTO加权分"`
	CtoRecommendation  string  `gorm:"type:varchar(16);comment:CTO建议"`
	CtoNotes           string  `gorm:"type:text"`
	CtoEvaluatedAt     int64

	CeoId              int64   `gorm:"comment:CEO用户ID，0表示未提交"`
	CeoTechnicalScore  float64 `gorm:"comment:CEO技术分"`
	CeoCulturalScore   float64 `gorm:"comment:CEO文化分"`
	CeoLeadershipScore float64 `gorm:"comment:CEO领导力分"`
	CeoScore           float64 `gorm:"comment:CEO加权分"`
	CeoRecommendation  string  `gorm:"type:varchar(16);comment:CEO建议"`
	CeoNotes           string  `gorm:"type:text"`
	CeoEvaluatedAt     int64

	Status        string  `gorm:"type:varchar(16);not null;default:pending;index:idx_status;comment:pending/completed"`
	FinalScore    float64 `gorm:"comment:双方加权分的均值"`
	FinalDecision string  `gorm:"type:varchar(16);comment:hire/manual_review/reject"`
	CompletedAt   int64

	CtoCompensationApproved bool   `gorm:"not null;default:false"`
	CtoCompensationNotes    string `gorm:"type:text"`
	CeoCompensationApproved bool   `gorm:"not null;default:false"`
	CeoCompensationNotes    string `gorm:"type:text"`
	CompensationStatus      string `gorm:"type:varchar(16);not null;default:pending;comment:薪酬包审批状态"`
	CompensationApprovedAt  int64

	Version int64 `gorm:"not null;default:1;comment:乐观锁版本号"`
	Ctime   int64
	Utime   int64
}
