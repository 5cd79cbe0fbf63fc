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

package service

import (
	"context"
	"errors"
	"time"

	"github.com/gotomicro/ego/core/elog"

	"github.com/mekongtech/recruitment/internal/assessment/internal/domain"
	"github.com/mekongtech/recruitment/internal/assessment/internal/repository"
	"github.com/mekongtech/recruitment/internal/assessment/internal/repository/dao"
	"github.com/mekongtech/recruitment/internal/candidate"
	"github.com/mekongtech/recruitment/internal/pipeline"
	"github.com/mekongtech/recruitment/internal/position"
)

var (
	ErrDuplicateSubmission = dao.ErrDuplicatedResult
	ErrQuestionSetNotFound = errors.New("卷子不存在")
	ErrNoActiveSession     = errors.New("没有进行中的答题会话")
)

//go:generate mockgen -source=./service.go -package=assessmentmocks -destination=../../mocks/assessment.mock.go -typed Service
type Service interface {
	SaveQuestionSet(ctx context.Context, set domain.QuestionSet) (int64, error)
	QuestionSetDetail(ctx context.Context, id int64) (domain.QuestionSet, error)
	ListQuestionSets(ctx context.Context, positionID int64, offset, limit int) ([]domain.QuestionSet, error)
	// StartPaper 下发考卷并开启答题会话。会话已存在时直接复用，
	// 重新拉卷不会重置计时。
	StartPaper(ctx context.Context, candidateID, setID int64) (domain.QuestionSet, domain.Session, error)
	// SaveProgress 保存部分作答到会话里
	SaveProgress(ctx context.Context, candidateID int64, answers []domain.Answer) (domain.Session, error)
	// Submit 候选人交卷。评分、落库、触发流水线一步完成，
	// 重复交卷返回 ErrDuplicateSubmission。会话里已保存的作答
	// 会和本次提交合并，本次提交的优先。
	Submit(ctx context.Context, candidateID, setID int64, answers []domain.Answer) (domain.Result, error)
	ResultByCandidate(ctx context.Context, candidateID int64) (domain.Result, error)
	Statistics(ctx context.Context) (domain.Statistics, error)
}

type service struct {
	repo         repository.AssessmentRepository
	candidateSvc candidate.Service
	positionSvc  position.Service
	pipelineSvc  pipeline.Service
	globalCfg    ScoringConfig
	nowFunc      func() time.Time
	logger       *elog.Component
}

func NewService(repo repository.AssessmentRepository,
	candidateSvc candidate.Service,
	positionSvc position.Service,
	pipelineSvc pipeline.Service,
	globalCfg ScoringConfig) (Service, error) {
	if err := globalCfg.Validate(); err != nil {
		return nil, err
	}
	return &service{
		repo:         repo,
		candidateSvc: candidateSvc,
		positionSvc:  positionSvc,
		pipelineSvc:  pipelineSvc,
		globalCfg:    globalCfg,
		nowFunc:      time.Now,
		logger:       elog.DefaultLogger,
	}, nil
}

func (s *service) SaveQuestionSet(ctx context.Context, set domain.QuestionSet) (int64, error) {
	return s.repo.SaveQuestionSet(ctx, set)
}

func (s *service) QuestionSetDetail(ctx context.Context, id int64) (domain.QuestionSet, error) {
	set, err := s.repo.QuestionSetById(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.QuestionSet{}, ErrQuestionSetNotFound
	}
	return set, err
}

func (s *service) ListQuestionSets(ctx context.Context, positionID int64, offset, limit int) ([]domain.QuestionSet, error) {
	return s.repo.ListQuestionSets(ctx, positionID, offset, limit)
}

func (s *service) StartPaper(ctx context.Context, candidateID, setID int64) (domain.QuestionSet, domain.Session, error) {
	set, err := s.QuestionSetDetail(ctx, setID)
	if err != nil {
		return domain.QuestionSet{}, domain.Session{}, err
	}
	sess, err := s.repo.SessionByCandidate(ctx, candidateID)
	if err == nil && sess.SetID == setID {
		return set, sess, nil
	}
	sess = domain.NewSession(candidateID, set, s.nowFunc())
	if err := s.repo.SaveSession(ctx, sess); err != nil {
		return domain.QuestionSet{}, domain.Session{}, err
	}
	return set, sess, nil
}

func (s *service) SaveProgress(ctx context.Context, candidateID int64, answers []domain.Answer) (domain.Session, error) {
	sess, err := s.repo.SessionByCandidate(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domain.Session{}, ErrNoActiveSession
		}
		return domain.Session{}, err
	}
	sess.SaveAnswers(answers)
	if err := s.repo.SaveSession(ctx, sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

func (s *service) Submit(ctx context.Context, candidateID, setID int64, answers []domain.Answer) (domain.Result, error) {
	set, err := s.QuestionSetDetail(ctx, setID)
	if err != nil {
		return domain.Result{}, err
	}
	// 有会话就合并已保存的作答；超时的强制交卷也照常评分，
	// 缺题按零分处理
	sess, serr := s.repo.SessionByCandidate(ctx, candidateID)
	if serr == nil && sess.SetID == setID {
		sess.SaveAnswers(answers)
		answers = sess.Answers
		if sess.TimedOut(s.nowFunc()) {
			s.logger.Info("超时强制交卷",
				elog.Int64("candidateID", candidateID),
				elog.Int64("setID", setID))
		}
	}
	c, err := s.candidateSvc.Detail(ctx, candidateID)
	if err != nil {
		return domain.Result{}, err
	}
	cfg, err := s.effectiveConfig(ctx, c.PositionID)
	if err != nil {
		return domain.Result{}, err
	}
	calc, err := NewCalculator(cfg)
	if err != nil {
		return domain.Result{}, err
	}
	res, err := calc.Score(set.Questions, answers)
	if err != nil {
		return domain.Result{}, err
	}
	res.CandidateID = candidateID
	res.SetID = setID
	res.ID, err = s.repo.SaveResult(ctx, res)
	if err != nil {
		return domain.Result{}, err
	}
	// 结果已落库，流水线触发失败交给人工处理，不回滚评分
	err = s.pipelineSvc.CompleteStep1(ctx, candidateID, s.toStep1Result(res.Classification), res.Overall)
	if err != nil {
		s.logger.Error("触发笔试流转失败",
			elog.FieldErr(err),
			elog.Int64("candidateID", candidateID))
	}
	if serr == nil && sess.SetID == setID {
		if err := s.repo.DelSession(ctx, candidateID); err != nil {
			s.logger.Warn("清理答题会话失败",
				elog.Int64("candidateID", candidateID),
				elog.FieldErr(err))
		}
	}
	return res, nil
}

func (s *service) ResultByCandidate(ctx context.Context, candidateID int64) (domain.Result, error) {
	return s.repo.ResultByCandidate(ctx, candidateID)
}

func (s *service) Statistics(ctx context.Context) (domain.Statistics, error) {
	return s.repo.Statistics(ctx)
}

// effectiveConfig 全局配置打底，岗位级非0项覆盖
func (s *service) effectiveConfig(ctx context.Context, positionID int64) (ScoringConfig, error) {
	cfg := ScoringConfig{
		AutoApproveThreshold: s.globalCfg.AutoApproveThreshold,
		ManualReviewMin:      s.globalCfg.ManualReviewMin,
		Weights: map[domain.Category]float64{
			domain.CategoryIQ:   s.globalCfg.Weights[domain.CategoryIQ],
			domain.CategoryTech: s.globalCfg.Weights[domain.CategoryTech],
		},
	}
	p, err := s.positionSvc.Detail(ctx, positionID)
	if err != nil {
		return ScoringConfig{}, err
	}
	if p.Scoring.AutoApproveThreshold > 0 {
		cfg.AutoApproveThreshold = p.Scoring.AutoApproveThreshold
	}
	if p.Scoring.ManualReviewMin > 0 {
		cfg.ManualReviewMin = p.Scoring.ManualReviewMin
	}
	if p.Scoring.IQWeight > 0 || p.Scoring.TechWeight > 0 {
		cfg.Weights[domain.CategoryIQ] = p.Scoring.IQWeight
		cfg.Weights[domain.CategoryTech] = p.Scoring.TechWeight
	}
	return cfg, nil
}

func (s *service) toStep1Result(c domain.Classification) pipeline.Step1Result {
	switch c {
	case domain.ClassificationPassed:
		return pipeline.Step1Passed
	case domain.ClassificationManualReview:
		return pipeline.Step1ManualReview
	default:
		return pipeline.Step1Failed
	}
}
