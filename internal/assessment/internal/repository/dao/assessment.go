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
	ErrRecordNotFound    = gorm.ErrRecordNotFound
	ErrDuplicatedResult  = errors.New("候选人重复提交笔试")
	ErrDuplicatedSetName = errors.New("同岗位下卷子名称重复")
)

type AssessmentDAO interface {
	SaveQuestionSet(ctx context.Context, set QuestionSet, questions []Question) (int64, error)
	FindSetById(ctx context.Context, id int64) (QuestionSet, []Question, error)
	ListSets(ctx context.Context, positionId int64, offset, limit int) ([]QuestionSet, error)

	InsertResult(ctx context.Context, r AssessmentResult) (int64, error)
	FindResultByCandidate(ctx context.Context, candidateId int64) (AssessmentResult, error)
	Statistics(ctx context.Context) (StatisticsRow, error)
}

type assessmentGORMDAO struct {
	db *egorm.Component
}

func NewAssessmentGORMDAO(db *egorm.Component) AssessmentDAO {
	return &assessmentGORMDAO{db: db}
}

// SaveQuestionSet 整卷保存：新建或整体替换题目列表
func (g *assessmentGORMDAO) SaveQuestionSet(ctx context.Context, set QuestionSet, questions []Question) (int64, error) {
	now := time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		set.Utime = now
		if set.Id == 0 {
			set.Ctime = now
			if err := tx.Create(&set).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&QuestionSet{}).Where("id = ?", set.Id).
				Updates(map[string]any{
					"name":               set.Name,
					"time_limit_minutes": set.TimeLimitMinutes,
					"utime":              now,
				}).Error; err != nil {
				return err
			}
			// 旧题整体作废，按新列表重建
			if err := tx.Where("set_id = ?", set.Id).Delete(&Question{}).Error; err != nil {
				return err
			}
		}
		for i := range questions {
			questions[i].SetId = set.Id
			questions[i].Ctime = now
			questions[i].Utime = now
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicatedSetName
			}
		}
		return 0, err
	}
	return set.Id, nil
}

func (g *assessmentGORMDAO) FindSetById(ctx context.Context, id int64) (QuestionSet, []Question, error) {
	var set QuestionSet
	err := g.db.WithContext(ctx).First(&set, "id = ?", id).Error
	if err != nil {
		return QuestionSet{}, nil, err
	}
	var questions []Question
	err = g.db.WithContext(ctx).Where("set_id = ?", id).Order("id ASC").Find(&questions).Error
	return set, questions, err
}

func (g *assessmentGORMDAO) ListSets(ctx context.Context, positionId int64, offset, limit int) ([]QuestionSet, error) {
	var res []QuestionSet
	query := g.db.WithContext(ctx)
	if positionId > 0 {
		query = query.Where("position_id = ?", positionId)
	}
	err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *assessmentGORMDAO) InsertResult(ctx context.Context, r AssessmentResult) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	err := g.db.WithContext(ctx).Create(&r).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicatedResult
			}
		}
		return 0, err
	}
	return r.Id, nil
}

func (g *assessmentGORMDAO) FindResultByCandidate(ctx context.Context, candidateId int64) (AssessmentResult, error) {
	var r AssessmentResult
	err := g.db.WithContext(ctx).First(&r, "candidate_id = ?", candidateId).Error
	return r, err
}

type StatisticsRow struct {
	Total        int64
	Passed       int64
	ManualReview int64
	Failed       int64
	AvgOverall   float64
}

func (g *assessmentGORMDAO) Statistics(ctx context.Context) (StatisticsRow, error) {
	var row StatisticsRow
	err := g.db.WithContext(ctx).Model(&AssessmentResult{}).
		Select("COUNT(*) AS total, " +
			"SUM(classification = 'passed') AS passed, " +
			"SUM(classification = 'manual_review') AS manual_review, " +
			"SUM(classification = 'failed') AS failed, " +
			"COALESCE(AVG(overall), 0) AS avg_overall").
		Scan(&row).Error
	return row, err
}

type QuestionSet struct {
	Id               int64  `gorm:"primaryKey;autoIncrement;comment:卷子自增ID"`
	PositionId       int64  `gorm:"not null;uniqueIndex:unq_position_name;comment:岗位ID"`
	Name             string `gorm:"type:varchar(256);not null;uniqueIndex:unq_position_name;comment:卷子名称"`
	TimeLimitMinutes int    `gorm:"not null;default:0;comment:答题时限分钟，0不限时"`
	Ctime            int64
	Utime            int64
}

type Question struct {
	Id    int64  `gorm:"primaryKey;autoIncrement;comment:题目自增ID"`
	SetId int64  `gorm:"not null;index:idx_set_id;comment:所属卷子ID"`
	Type  string `gorm:"type:varchar(16);not null;comment:choice或text"`
	// Category 评分类别，权重按类别配置
	Category      string  `gorm:"type:varchar(32);not null;comment:iq或technical"`
	Text          string  `gorm:"type:text;not null;comment:题干"`
	Options       string  `gorm:"type:text;comment:选项JSON，仅choice题"`
	CorrectAnswer string  `gorm:"type:varchar(512);comment:标准答案，仅choice题"`
	Keywords      string  `gorm:"type:text;comment:关键词JSON，仅text题"`
	Points        float64 `gorm:"not null;comment:满分分值"`
	Ctime         int64
	Utime         int64
}

type AssessmentResult struct {
	Id int64 `gorm:"primaryKey;autoIncrement;comment:结果自增ID"`
	// 一个候选人只允许一份笔试结果，重复提交靠唯一索引兜底
	CandidateId    int64   `gorm:"not null;uniqueIndex:unq_candidate_id;comment:候选人ID"`
	SetId          int64   `gorm:"not null;index:idx_set_id;comment:卷子ID"`
	Overall        float64 `gorm:"not null;comment:加权总分"`
	Classification string  `gorm:"type:varchar(32);not null;index:idx_classification;comment:路由结果"`
	Detail         string  `gorm:"type:text;comment:逐题和分类明细JSON"`
	Ctime          int64
	Utime          int64
}
