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
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrAlreadyCompleted 定稿CAS没更新到行，说明已经定稿过
	ErrAlreadyCompleted = errors.New("面试评估已定稿")
)

type EvaluationDAO interface {
	Insert(ctx context.Context, e Evaluation) (int64, error)
	FindById(ctx context.Context, id int64) (Evaluation, error)
	ListByCandidate(ctx context.Context, candidateId int64) ([]Evaluation, error)
	ListByInterviewer(ctx context.Context, interviewerId int64) ([]Evaluation, error)
	// Finalize 只允许 scheduled -> completed 一次
	Finalize(ctx context.Context, id int64, scores, notes string, overall float64, recommendation string) error
	// MeanCompletedScore 已定稿评估的平均总分，count 为 0 时 mean 无意义
	MeanCompletedScore(ctx context.Context, candidateId int64) (mean float64, count int64, err error)
}

type evaluationGORMDAO struct {
	db *egorm.Component
}

func NewEvaluationGORMDAO(db *egorm.Component) EvaluationDAO {
	return &evaluationGORMDAO{db: db}
}

func (g *evaluationGORMDAO) Insert(ctx context.Context, e Evaluation) (int64, error) {
	now := time.Now().UnixMilli()
	e.Ctime, e.Utime = now, now
	err := g.db.WithContext(ctx).Create(&e).Error
	return e.Id, err
}

func (g *evaluationGORMDAO) FindById(ctx context.Context, id int64) (Evaluation, error) {
	var e Evaluation
	err := g.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return e, err
}

func (g *evaluationGORMDAO) ListByCandidate(ctx context.Context, candidateId int64) ([]Evaluation, error) {
	var res []Evaluation
	err := g.db.WithContext(ctx).
		Where("candidate_id = ?", candidateId).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (g *evaluationGORMDAO) ListByInterviewer(ctx context.Context, interviewerId int64) ([]Evaluation, error) {
	var res []Evaluation
	err := g.db.WithContext(ctx).
		Where("interviewer_id = ?", interviewerId).
		Order("scheduled_at ASC").Find(&res).Error
	return res, err
}

func (g *evaluationGORMDAO) Finalize(ctx context.Context, id int64, scores, notes string, overall float64, recommendation string) error {
	now := time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Evaluation{}).
		Where("id = ? AND status = ?", id, "scheduled").
		Updates(map[string]any{
			"scores":         scores,
			"notes":          notes,
			"overall_score":  overall,
			"recommendation": recommendation,
			"status":         "completed",
			"completed_at":   now,
			"utime":          now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyCompleted
	}
	return nil
}

func (g *evaluationGORMDAO) MeanCompletedScore(ctx context.Context, candidateId int64) (float64, int64, error) {
	var row struct {
		Mean  sql.NullFloat64
		Count int64
	}
	err := g.db.WithContext(ctx).Model(&Evaluation{}).
		Select("AVG(overall_score) AS mean, COUNT(*) AS count").
		Where("candidate_id = ? AND status = ?", candidateId, "completed").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Mean.Float64, row.Count, nil
}

type Evaluation struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:评估自增ID"`
	CandidateId   int64  `gorm:"not null;index:idx_candidate_id;comment:候选人ID"`
	InterviewerId int64  `gorm:"not null;index:idx_interviewer_id;comment:面试官ID"`
	ScheduledAt   int64  `gorm:"not null;comment:面试时间"`
	Duration      int    `gorm:"not null;default:60;comment:时长分钟"`
	QuestionIds   string `gorm:"type:text;comment:选题ID列表JSON"`
	Scores        string `gorm:"type:text;comment:逐题打分JSON"`
	Notes         string `gorm:"type:text;comment:面试官笔记"`
	OverallScore  float64
	// Recommendation 定稿前为空
	Recommendation string `gorm:"type:varchar(16);comment:approve/review/reject"`
	Status         string `gorm:"type:varchar(16);not null;default:scheduled;index:idx_status;comment:scheduled/completed"`
	CompletedAt    int64  `gorm:"comment:定稿时间"`
	Ctime          int64
	Utime          int64
}
