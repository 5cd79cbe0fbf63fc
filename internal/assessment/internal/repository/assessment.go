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
	"encoding/json"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"

	"github.com/mekongtech/recruitment/internal/assessment/internal/domain"
	"github.com/mekongtech/recruitment/internal/assessment/internal/repository/cache"
	"github.com/mekongtech/recruitment/internal/assessment/internal/repository/dao"
)

type AssessmentRepository interface {
	SaveQuestionSet(ctx context.Context, set domain.QuestionSet) (int64, error)
	QuestionSetById(ctx context.Context, id int64) (domain.QuestionSet, error)
	ListQuestionSets(ctx context.Context, positionID int64, offset, limit int) ([]domain.QuestionSet, error)

	SaveResult(ctx context.Context, r domain.Result) (int64, error)
	ResultByCandidate(ctx context.Context, candidateID int64) (domain.Result, error)
	Statistics(ctx context.Context) (domain.Statistics, error)

	SaveSession(ctx context.Context, sess domain.Session) error
	SessionByCandidate(ctx context.Context, candidateID int64) (domain.Session, error)
	DelSession(ctx context.Context, candidateID int64) error
}

var ErrSessionNotFound = cache.ErrSessionNotFound

type assessmentRepository struct {
	dao          dao.AssessmentDAO
	cache        cache.QuestionSetCache
	sessionCache cache.SessionCache
	logger       *elog.Component
}

func NewAssessmentRepository(d dao.AssessmentDAO,
	c cache.QuestionSetCache,
	sc cache.SessionCache) AssessmentRepository {
	return &assessmentRepository{
		dao:          d,
		cache:        c,
		sessionCache: sc,
		logger:       elog.DefaultLogger,
	}
}

func (r *assessmentRepository) SaveQuestionSet(ctx context.Context, set domain.QuestionSet) (int64, error) {
	entity := dao.QuestionSet{
		Id:               set.ID,
		PositionId:       set.PositionID,
		Name:             set.Name,
		TimeLimitMinutes: set.TimeLimitMinutes,
	}
	questions := slice.Map(set.Questions, func(_ int, q domain.Question) dao.Question {
		return r.questionToEntity(q)
	})
	id, err := r.dao.SaveQuestionSet(ctx, entity, questions)
	if err != nil {
		return 0, err
	}
	// 缓存删除失败不影响保存，下一次读会穿透到数据库
	if set.ID > 0 {
		if err := r.cache.Del(ctx, set.ID); err != nil {
			r.logger.Warn("删除卷子缓存失败",
				elog.Int64("setID", set.ID),
				elog.FieldErr(err))
		}
	}
	return id, nil
}

func (r *assessmentRepository) QuestionSetById(ctx context.Context, id int64) (domain.QuestionSet, error) {
	set, err := r.cache.Get(ctx, id)
	if err == nil {
		return set, nil
	}
	entity, questions, err := r.dao.FindSetById(ctx, id)
	if err != nil {
		return domain.QuestionSet{}, err
	}
	set = r.setToDomain(entity, questions)
	if err := r.cache.Set(ctx, set); err != nil {
		r.logger.Warn("回填卷子缓存失败",
			elog.Int64("setID", id),
			elog.FieldErr(err))
	}
	return set, nil
}

func (r *assessmentRepository) ListQuestionSets(ctx context.Context, positionID int64, offset, limit int) ([]domain.QuestionSet, error) {
	sets, err := r.dao.ListSets(ctx, positionID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(sets, func(_ int, s dao.QuestionSet) domain.QuestionSet {
		return domain.QuestionSet{
			ID:               s.Id,
			PositionID:       s.PositionId,
			Name:             s.Name,
			TimeLimitMinutes: s.TimeLimitMinutes,
		}
	}), nil
}

func (r *assessmentRepository) SaveResult(ctx context.Context, res domain.Result) (int64, error) {
	detail, err := json.Marshal(resultDetail{
		Categories: res.Categories,
		Questions:  res.Questions,
	})
	if err != nil {
		return 0, err
	}
	return r.dao.InsertResult(ctx, dao.AssessmentResult{
		CandidateId:    res.CandidateID,
		SetId:          res.SetID,
		Overall:        res.Overall,
		Classification: res.Classification.String(),
		Detail:         string(detail),
	})
}

func (r *assessmentRepository) ResultByCandidate(ctx context.Context, candidateID int64) (domain.Result, error) {
	entity, err := r.dao.FindResultByCandidate(ctx, candidateID)
	if err != nil {
		return domain.Result{}, err
	}
	res := domain.Result{
		ID:             entity.Id,
		CandidateID:    entity.CandidateId,
		SetID:          entity.SetId,
		Overall:        entity.Overall,
		Classification: domain.Classification(entity.Classification),
		Ctime:          entity.Ctime,
	}
	var detail resultDetail
	if entity.Detail != "" {
		if err := json.Unmarshal([]byte(entity.Detail), &detail); err != nil {
			return domain.Result{}, err
		}
		res.Categories = detail.Categories
		res.Questions = detail.Questions
	}
	return res, nil
}

func (r *assessmentRepository) Statistics(ctx context.Context) (domain.Statistics, error) {
	row, err := r.dao.Statistics(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	return domain.Statistics{
		Total:        row.Total,
		Passed:       row.Passed,
		ManualReview: row.ManualReview,
		Failed:       row.Failed,
		AvgOverall:   row.AvgOverall,
	}, nil
}

type resultDetail struct {
	Categories []domain.CategoryScore `json:"categories"`
	Questions  []domain.QuestionScore `json:"questions"`
}

func (r *assessmentRepository) questionToEntity(q domain.Question) dao.Question {
	options, _ := json.Marshal(q.Options)
	keywords, _ := json.Marshal(q.Keywords)
	return dao.Question{
		Id:            q.ID,
		SetId:         q.SetID,
		Type:          string(q.Type),
		Category:      q.Category.String(),
		Text:          q.Text,
		Options:       string(options),
		CorrectAnswer: q.CorrectAnswer,
		Keywords:      string(keywords),
		Points:        q.Points,
	}
}

func (r *assessmentRepository) SaveSession(ctx context.Context, sess domain.Session) error {
	return r.sessionCache.Set(ctx, sess)
}

func (r *assessmentRepository) SessionByCandidate(ctx context.Context, candidateID int64) (domain.Session, error) {
	return r.sessionCache.Get(ctx, candidateID)
}

func (r *assessmentRepository) DelSession(ctx context.Context, candidateID int64) error {
	return r.sessionCache.Del(ctx, candidateID)
}

func (r *assessmentRepository) setToDomain(s dao.QuestionSet, questions []dao.Question) domain.QuestionSet {
	return domain.QuestionSet{
		ID:               s.Id,
		PositionID:       s.PositionId,
		Name:             s.Name,
		TimeLimitMinutes: s.TimeLimitMinutes,
		Questions: slice.Map(questions, func(_ int, q dao.Question) domain.Question {
			var options, keywords []string
			_ = json.Unmarshal([]byte(q.Options), &options)
			_ = json.Unmarshal([]byte(q.Keywords), &keywords)
			return domain.Question{
				ID:            q.Id,
				SetID:         q.SetId,
				Type:          domain.QuestionType(q.Type),
				Category:      domain.Category(q.Category),
				Text:          q.Text,
				Options:       options,
				CorrectAnswer: q.CorrectAnswer,
				Keywords:      keywords,
				Points:        q.Points,
			}
		}),
	}
}
