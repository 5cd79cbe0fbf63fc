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
	"github.com/lithammer/shortuuid/v4"

	"github.com/mekongtech/recruitment/internal/executive/internal/domain"
	"github.com/mekongtech/recruitment/internal/executive/internal/event"
	"github.com/mekongtech/recruitment/internal/executive/internal/repository"
	"github.com/mekongtech/recruitment/internal/pipeline"
)

var (
	ErrNotExecutive         = errors.New("只有CTO和CEO能提交终面决策")
	ErrInvalidScore         = errors.New("子项打分必须在0到10之间")
	ErrInvalidRecommend     = errors.New("非法的建议")
	ErrDecisionNotFound     = errors.New("候选人还没有终面决策记录")
	ErrConcurrentSubmission = errors.New("并发提交冲突，请重试")
)

// maxRetries 乐观锁冲突的重试次数。双方并发提交顶多撞一次，
// 3次足够吸收偶发的连环冲突。
const maxRetries = 3

// Submission 单侧高管的一次提交
type Submission struct {
	EvaluatorID     int64
	Role            domain.Role
	TechnicalScore  float64
	CulturalScore   float64
	LeadershipScore float64
	Recommendation  domain.Recommendation
	Notes           string
}

//go:generate mockgen -source=./service.go -package=executivemocks -destination=../../mocks/executive.mock.go -typed Service
type Service interface {
	// Submit 记录单侧提交。双方齐了触发共识定稿和终面流转；
	// 定稿后的再次提交是一次被单独审计的修订，会重算共识。
	Submit(ctx context.Context, candidateID int64, sub Submission) (domain.Decision, error)
	// ApproveCompensation 薪酬包单侧审批，双方都批了才置为 approved
	ApproveCompensation(ctx context.Context, candidateID int64, evaluatorID int64,
		role domain.Role, notes string) (domain.Decision, error)
	Detail(ctx context.Context, candidateID int64) (domain.Decision, error)
	List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Decision, error)
}

type service struct {
	repo          repository.DecisionRepository
	pipelineSvc   pipeline.Service
	auditProducer event.AuditEventProducer
	logger        *elog.Component
}

func NewService(repo repository.DecisionRepository,
	pipelineSvc pipeline.Service,
	auditProducer event.AuditEventProducer) Service {
	return &service{
		repo:          repo,
		pipelineSvc:   pipelineSvc,
		auditProducer: auditProducer,
		logger:        elog.DefaultLogger,
	}
}

func (s *service) Submit(ctx context.Context, candidateID int64, sub Submission) (domain.Decision, error) {
	if !sub.Role.IsValid() {
		return domain.Decision{}, fmt.Errorf("%w: %s", ErrNotExecutive, sub.Role)
	}
	if !sub.Recommendation.IsValid() {
		return domain.Decision{}, fmt.Errorf("%w: %s", ErrInvalidRecommend, sub.Recommendation)
	}
	for _, score := range []float64{sub.TechnicalScore, sub.CulturalScore, sub.LeadershipScore} {
		if score < 0 || score > 10 {
			return domain.Decision{}, fmt.Errorf("%w: %.1f", ErrInvalidScore, score)
		}
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		d, err := s.loadOrCreate(ctx, candidateID)
		if err != nil {
			return domain.Decision{}, err
		}
		revised := d.Status == domain.StatusCompleted

		slot := d.Slot(sub.Role)
		slot.EvaluatorID = sub.EvaluatorID
		slot.TechnicalScore = sub.TechnicalScore
		slot.CulturalScore = sub.CulturalScore
		slot.LeadershipScore = sub.LeadershipScore
		slot.WeightedScore = sub.Role.WeightedScore(sub.TechnicalScore, sub.CulturalScore)
		slot.Recommendation = sub.Recommendation
		slot.Notes = sub.Notes
		slot.EvaluatedAt = time.Now().UnixMilli()

		finalized := false
		if d.BothSubmitted() {
			d.Finalize(time.Now().UnixMilli())
			finalized = true
		}

		err = s.repo.Update(ctx, d)
		if err != nil {
			if errors.Is(err, repository.ErrVersionMismatch) {
				// 另一侧刚提交，重读再算
				lastErr = err
				continue
			}
			return domain.Decision{}, err
		}

		action := "decision_submitted"
		if revised {
			action = "decision_revised"
		}
		s.produceAudit(ctx, sub.EvaluatorID, string(sub.Role), action, candidateID,
			fmt.Sprintf("%s 加权分 %.2f 建议 %s", sub.Role, slot.WeightedScore, sub.Recommendation))

		if finalized {
			s.completePipeline(ctx, d)
		}
		return d, nil
	}
	return domain.Decision{}, fmt.Errorf("%w: %v", ErrConcurrentSubmission, lastErr)
}

func (s *service) ApproveCompensation(ctx context.Context, candidateID int64, evaluatorID int64,
	role domain.Role, notes string) (domain.Decision, error) {
	if !role.IsValid() {
		return domain.Decision{}, fmt.Errorf("%w: %s", ErrNotExecutive, role)
	}
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		d, err := s.repo.FindByCandidate(ctx, candidateID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domain.Decision{}, ErrDecisionNotFound
			}
			return domain.Decision{}, err
		}

		slot := d.Slot(role)
		slot.CompensationApproved = true
		slot.CompensationNotes = notes
		if d.CTO.CompensationApproved && d.CEO.CompensationApproved {
			d.CompensationStatus = domain.CompensationApproved
			d.CompensationApprovedAt = time.Now().UnixMilli()
		}

		err = s.repo.Update(ctx, d)
		if err != nil {
			if errors.Is(err, repository.ErrVersionMismatch) {
				lastErr = err
				continue
			}
			return domain.Decision{}, err
		}
		s.produceAudit(ctx, evaluatorID, string(role), "compensation_approved", candidateID,
			fmt.Sprintf("薪酬包审批状态 %s", d.CompensationStatus))
		return d, nil
	}
	return domain.Decision{}, fmt.Errorf("%w: %v", ErrConcurrentSubmission, lastErr)
}

func (s *service) Detail(ctx context.Context, candidateID int64) (domain.Decision, error) {
	d, err := s.repo.FindByCandidate(ctx, candidateID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Decision{}, ErrDecisionNotFound
	}
	return d, err
}

func (s *service) List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Decision, error) {
	return s.repo.List(ctx, status, offset, limit)
}

func (s *service) loadOrCreate(ctx context.Context, candidateID int64) (domain.Decision, error) {
	d, err := s.repo.FindByCandidate(ctx, candidateID)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Decision{}, err
	}
	_, err = s.repo.Create(ctx, domain.Decision{
		CandidateID:        candidateID,
		Status:             domain.StatusPending,
		CompensationStatus: domain.CompensationPending,
	})
	if err != nil && !errors.Is(err, repository.ErrDuplicatedDecision) {
		return domain.Decision{}, err
	}
	// 重复创建说明另一侧抢先了，读回来就行
	return s.repo.FindByCandidate(ctx, candidateID)
}

// completePipeline 共识结果驱动终面流转。流转失败只记日志，
// 决策记录本身已经落库。
func (s *service) completePipeline(ctx context.Context, d domain.Decision) {
	var outcome pipeline.Step3Outcome
	switch d.FinalDecision {
	case domain.FinalHire:
		outcome = pipeline.OutcomeHire
	case domain.FinalManualReview:
		outcome = pipeline.OutcomeManualReview
	default:
		outcome = pipeline.OutcomeReject
	}
	err := s.pipelineSvc.CompleteStep3(ctx, d.CandidateID, outcome, d.FinalScore)
	if err != nil {
		s.logger.Error("触发终面流转失败",
			elog.FieldErr(err),
			elog.Int64("candidateID", d.CandidateID),
			elog.String("finalDecision", d.FinalDecision.String()))
	}
}

func (s *service) produceAudit(ctx context.Context, actorID int64, role, action string, candidateID int64, detail string) {
	err := s.auditProducer.Produce(ctx, event.AuditEvent{
		Key:       shortuuid.New(),
		ActorID:   actorID,
		ActorRole: role,
		Action:    action,
		Biz:       "executive_decision",
		BizID:     candidateID,
		Detail:    detail,
	})
	if err != nil {
		s.logger.Error("发送审计事件失败",
			elog.FieldErr(err),
			elog.String("action", action),
			elog.Int64("candidateID", candidateID))
	}
}
