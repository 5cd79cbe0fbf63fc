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
	"gorm.io/gorm/clause"
)

type PositionDAO interface {
	Save(ctx context.Context, p Position) (int64, error)
	FindById(ctx context.Context, id int64) (Position, error)
	List(ctx context.Context, offset, limit int) ([]Position, error)
	Count(ctx context.Context) (int64, error)
}

type positionGORMDAO struct {
	db *egorm.Component
}

func NewPositionGORMDAO(db *egorm.Component) PositionDAO {
	return &positionGORMDAO{db: db}
}

func (g *positionGORMDAO) Save(ctx context.Context, p Position) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "department", "level", "description", "status",
			"auto_approve_threshold", "manual_review_min",
			"iq_weight", "tech_weight", "utime"}),
	}).Create(&p).Error
	return p.Id, err
}

func (g *positionGORMDAO) FindById(ctx context.Context, id int64) (Position, error) {
	var p Position
	err := g.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return p, err
}

func (g *positionGORMDAO) List(ctx context.Context, offset, limit int) ([]Position, error) {
	var res []Position
	err := g.db.WithContext(ctx).Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *positionGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Position{}).Count(&res).Error
	return res, err
}

type Position struct {
	Id                   int64   `gorm:"primaryKey;autoIncrement;comment:岗位自增ID"`
	Title                string  `gorm:"type:varchar(256);not null;comment:岗位名称"`
	Department           string  `gorm:"type:varchar(128);not null;comment:部门"`
	Level                string  `gorm:"type:varchar(64);not null;comment:职级"`
	Description          string  `gorm:"type:text;comment:岗位描述"`
	Status               string  `gorm:"type:varchar(32);not null;default:open;comment:状态 open/closed"`
	AutoApproveThreshold float64 `gorm:"not null;default:0;comment:笔试自动通过阈值覆盖,0表示用全局配置"`
	ManualReviewMin      float64 `gorm:"not null;default:0;comment:笔试人工复核下限覆盖,0表示用全局配置"`
	IqWeight             float64 `gorm:"not null;default:0;comment:IQ权重覆盖,0表示用全局配置"`
	TechWeight           float64 `gorm:"not null;default:0;comment:技术权重覆盖,0表示用全局配置"`
	Ctime                int64
	Utime                int64
}
