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
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"

	"github.com/mekongtech/recruitment/internal/interview/internal/domain"
	"github.com/mekongtech/recruitment/internal/interview/internal/repository"
	"github.com/mekongtech/recruitment/internal/notification"
	"github.com/mekongtech/recruitment/internal/pipeline"
	"github.com/mekongtech/recruitment/internal/user"
)

var (
	ErrEvaluationCompleted    = errors.New("面试评估已定稿")
	ErrNotAssignedInterviewer = errors.New("不是这场面试的面试官")
	ErrInvalidScore           = errors.New("打分必须在0到10之间")
	ErrNoCompletedEvaluation  = errors.New("没有已定稿的面试评估")
)

//go:generate mockgen -source=./service.go -package=interviewmocks -destination=../../mocks/interview.mock.go -typed Service
type Service interface {
	// Schedule HR排期，创建评估记录并通知面试官
	Schedule(ctx context.Context, e domain.Evaluation) (int64, error)
	// Finalize 指定面试官定稿，只允许一次。定稿后触发二面完成流转。
	Finalize(ctx context.Context, evaluationID, interviewerID int64,
		scores []domain.QuestionScore, notes string) (domain.Evaluation, error)
	Detail(ctx context.Context, id int64) (domain.Evaluation, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Evaluation, error)
	ListByInterviewer(ctx context.Context, interviewerID int64) ([]domain.Evaluation, error)
	// AdvanceToFinal 按已定稿评估的平均分把候选人推进终面
	AdvanceToFinal(ctx context.Context, candidateID int64, actor pipeline.Actor) error
}

type service struct {
	repo            repository.EvaluationRepository
	userSvc         user.Service
	notificationSvc notification.Service
	pipelineSvc     pipeline.Service
	logger          *elog.Component
}

func NewService(repo repository.EvaluationRepository,
	userSvc user.Service,
	notificationSvc notification.Service,
	pipelineSvc pipeline.Service) Service {
	return &service{
		repo:            repo,
		userSvc:         userSvc,
		notificationSvc: notificationSvc,
		pipelineSvc:     pipelineSvc,
		logger:          elog.DefaultLogger,
	}
}

func (s *service) Schedule(ctx context.Context, e domain.Evaluation) (int64, error) {
	if e.Duration <= 0 {
		e.Duration = 60
	}
	id, err := s.repo.Create(ctx, e)
	if err != nil {
		return 0, err
	}
	s.notifyInterviewer(ctx, e)
	return id, nil
}

func (s *service) Finalize(ctx context.Context, evaluationID, interviewerID int64,
	scores []domain.QuestionScore, notes string) (domain.Evaluation, error) {
	for _, sc := range scores {
		if sc.Score < 0 || sc.Score > 10 {
			return domain.Evaluation{}, fmt.Errorf("%w: 题目 %d 打了 %.1f",
				ErrInvalidScore, sc.QuestionID, sc.Score)
		}
	}
	e, err := s.repo.FindById(ctx, evaluationID)
	if err != nil {
		return domain.Evaluation{}, err
	}
	if e.InterviewerID != interviewerID {
		return domain.Evaluation{}, ErrNotAssignedInterviewer
	}
	if e.Status == domain.StatusCompleted {
		return domain.Evaluation{}, ErrEvaluationCompleted
	}
	e.Scores = scores
	e.Notes = notes
	e.OverallScore = domain.MeanScore(scores)
	e.Recommendation = domain.DeriveRecommendation(e.OverallScore)
	e.Status = domain.StatusCompleted
	e.CompletedAt = time.Now().UnixMilli()
	err = s.repo.Finalize(ctx, e)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyCompleted) {
			return domain.Evaluation{}, ErrEvaluationCompleted
		}
		return domain.Evaluation{}, err
	}
	// 定稿已落库，流转失败不回滚，pipeline 对重放免疫
	mean, _, er := s.repo.MeanCompletedScore(ctx, e.CandidateID)
	if er != nil {
		mean = e.OverallScore
	}
	er = s.pipelineSvc.MarkStep2Evaluated(ctx, e.CandidateID, mean)
	if er != nil {
		s.logger.Error("触发二面完成流转失败",
			elog.FieldErr(er),
			elog.Int64("candidateID", e.CandidateID))
	}
	return e, nil
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Evaluation, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Evaluation, error) {
	return s.repo.ListByCandidate(ctx, candidateID)
}

func (s *service) ListByInterviewer(ctx context.Context, interviewerID int64) ([]domain.Evaluation, error) {
	return s.repo.ListByInterviewer(ctx, interviewerID)
}

func (s *service) AdvanceToFinal(ctx context.Context, candidateID int64, actor pipeline.Actor) error {
	mean, count, err := s.repo.MeanCompletedScore(ctx, candidateID)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNoCompletedEvaluation
	}
	return s.pipelineSvc.AdvanceToStep3(ctx, candidateID, mean, actor)
}

func (s *service) notifyInterviewer(ctx context.Context, e domain.Evaluation) {
	interviewer, err := s.userSvc.Profile(ctx, e.InterviewerID)
	if err != nil {
		s.logger.Warn("查询面试官失败，跳过排期通知",
			elog.FieldErr(err),
			elog.Int64("interviewerID", e.InterviewerID))
		return
	}
	when := time.UnixMilli(e.ScheduledAt).Format("2006-01-02 15:04")
	s.notificationSvc.Send(ctx, interviewer.Email, "面试安排通知",
		fmt.Sprintf("你有一场新的技术面试：%s，时长 %d 分钟，请提前在系统里查看候选人资料。", when, e.Duration))
}
