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

	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"

	"github.com/mekongtech/recruitment/internal/candidate"
	"github.com/mekongtech/recruitment/internal/notification"
	"github.com/mekongtech/recruitment/internal/pipeline/internal/domain"
	"github.com/mekongtech/recruitment/internal/pipeline/internal/event"
)

var (
	ErrTerminalStatus      = errors.New("候选人已处于终态")
	ErrInvalidTransition   = errors.New("非法的状态流转")
	ErrNotEligibleForStep3 = errors.New("二面平均分未达到终面门槛")
	ErrInvalidStatus       = errors.New("非法的目标状态")
)

// Step1Result 笔试评分的路由结果
type Step1Result string

const (
	Step1Passed       Step1Result = "passed"
	Step1ManualReview Step1Result = "manual_review"
	Step1Failed       Step1Result = "failed"
)

// Config 流水线配置。Step3EligibilityBar 是进入终面要求的二面平均分下限。
type Config struct {
	Step3EligibilityBar float64 `yaml:"step3EligibilityBar"`
}

//go:generate mockgen -source=./service.go -package=pipelinemocks -destination=../../mocks/pipeline.mock.go -typed Service
type Service interface {
	// CompleteStep1 笔试评分完成后由 assessment 模块触发
	CompleteStep1(ctx context.Context, candidateID int64, res Step1Result, overall float64) error
	// ResolveManualReview 人工复核笔试边界分数
	ResolveManualReview(ctx context.Context, candidateID int64, approved bool, actor domain.Actor, note string) error
	// MarkStep2Evaluated 二面评估定稿后由 interview 模块触发
	MarkStep2Evaluated(ctx context.Context, candidateID int64, meanScore float64) error
	// AdvanceToStep3 校验二面平均分后把候选人推进终面
	AdvanceToStep3(ctx context.Context, candidateID int64, meanScore float64, actor domain.Actor) error
	// CompleteStep3 双高管共识定稿后由 executive 模块触发
	CompleteStep3(ctx context.Context, candidateID int64, outcome domain.Step3Outcome, finalScore float64) error
	// Override 管理员直接改状态，终态也能动，单独审计
	Override(ctx context.Context, candidateID int64, to candidate.Status, actor domain.Actor, note string) error
}

type service struct {
	candidateSvc    candidate.Service
	notificationSvc notification.Service
	statusProducer  event.StatusEventProducer
	auditProducer   event.AuditEventProducer
	cfg             Config
	logger          *elog.Component
}

func NewService(candidateSvc candidate.Service,
	notificationSvc notification.Service,
	statusProducer event.StatusEventProducer,
	auditProducer event.AuditEventProducer,
	cfg Config) Service {
	if cfg.Step3EligibilityBar <= 0 {
		cfg.Step3EligibilityBar = 7.0
	}
	return &service{
		candidateSvc:    candidateSvc,
		notificationSvc: notificationSvc,
		statusProducer:  statusProducer,
		auditProducer:   auditProducer,
		cfg:             cfg,
		logger:          elog.DefaultLogger,
	}
}

func (s *service) CompleteStep1(ctx context.Context, candidateID int64, res Step1Result, overall float64) error {
	var to candidate.Status
	switch res {
	case Step1Passed:
		to = candidate.StatusStep1Passed
	case Step1ManualReview:
		to = candidate.StatusStep1ManualReview
	case Step1Failed:
		to = candidate.StatusStep1Rejected
	default:
		return fmt.Errorf("%w: 未知的笔试结果 %s", ErrInvalidTransition, res)
	}
	note := fmt.Sprintf("笔试加权总分 %.2f", overall)
	return s.transition(ctx, candidateID, candidate.StatusPending, to, note, domain.SystemActor, "step1_completed")
}

func (s *service) ResolveManualReview(ctx context.Context, candidateID int64, approved bool, actor domain.Actor, note string) error {
	to := candidate.StatusStep1Passed
	if !approved {
		to = candidate.StatusStep1Rejected
	}
	return s.transition(ctx, candidateID, candidate.StatusStep1ManualReview, to, note, actor, "manual_review_resolved")
}

func (s *service) MarkStep2Evaluated(ctx context.Context, candidateID int64, meanScore float64) error {
	note := fmt.Sprintf("二面平均分 %.2f", meanScore)
	return s.transition(ctx, candidateID, candidate.StatusStep1Passed, candidate.StatusStep2Evaluated, note, domain.SystemActor, "step2_completed")
}

func (s *service) AdvanceToStep3(ctx context.Context, candidateID int64, meanScore float64, actor domain.Actor) error {
	if meanScore < s.cfg.Step3EligibilityBar {
		return fmt.Errorf("%w: %.2f < %.2f", ErrNotEligibleForStep3, meanScore, s.cfg.Step3EligibilityBar)
	}
	note := fmt.Sprintf("二面平均分 %.2f，达到终面门槛", meanScore)
	return s.transition(ctx, candidateID, candidate.StatusStep2Evaluated, candidate.StatusStep3Pending, note, actor, "advanced_to_step3")
}

func (s *service) CompleteStep3(ctx context.Context, candidateID int64, outcome domain.Step3Outcome, finalScore float64) error {
	note := fmt.Sprintf("终面最终得分 %.2f", finalScore)
	switch outcome {
	case domain.OutcomeHire:
		return s.transition(ctx, candidateID, candidate.StatusStep3Pending, candidate.StatusHired, note, domain.SystemActor, "step3_completed")
	case domain.OutcomeReject:
		return s.transition(ctx, candidateID, candidate.StatusStep3Pending, candidate.StatusRejected, note, domain.SystemActor, "step3_completed")
	case domain.OutcomeManualReview:
		// 分数落在人工区间，状态停在 step3_pending，等 admin 裁决，只记审计
		s.produceAudit(ctx, domain.SystemActor, "step3_manual_review", candidateID, note)
		return nil
	default:
		return fmt.Errorf("%w: 未知的终面结果 %s", ErrInvalidTransition, outcome)
	}
}

func (s *service) Override(ctx context.Context, candidateID int64, to candidate.Status, actor domain.Actor, note string) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, to)
	}
	c, err := s.candidateSvc.Detail(ctx, candidateID)
	if err != nil {
		return err
	}
	err = s.candidateSvc.OverrideStatus(ctx, candidateID, to, note)
	if err != nil {
		return err
	}
	s.produceStatus(ctx, candidateID, c.Status, to, note)
	s.produceAudit(ctx, actor, "status_override", candidateID,
		fmt.Sprintf("%s -> %s: %s", c.Status, to, note))
	s.notify(ctx, c, to)
	return nil
}

// transition 常规流转的统一入口。重复触发（当前状态已经是目标状态）是无害的no-op。
func (s *service) transition(ctx context.Context, candidateID int64,
	from, to candidate.Status, note string, actor domain.Actor, action string) error {
	c, err := s.candidateSvc.Detail(ctx, candidateID)
	if err != nil {
		return err
	}
	if c.Status == to {
		// 幂等：同一个触发重放
		return nil
	}
	if c.Status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalStatus, c.Status)
	}
	if c.Status != from || !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s，当前 %s", ErrInvalidTransition, from, to, c.Status)
	}
	err = s.candidateSvc.UpdateStatus(ctx, candidateID, from, to, note)
	if err != nil {
		if errors.Is(err, candidate.ErrStatusMismatch) {
			// 并发流转，重读裁决
			cur, er := s.candidateSvc.Detail(ctx, candidateID)
			if er == nil && cur.Status == to {
				return nil
			}
			return fmt.Errorf("%w: 并发流转冲突", ErrInvalidTransition)
		}
		return err
	}
	s.produceStatus(ctx, candidateID, from, to, note)
	s.produceAudit(ctx, actor, action, candidateID, fmt.Sprintf("%s -> %s: %s", from, to, note))
	s.notify(ctx, c, to)
	return nil
}

func (s *service) produceStatus(ctx context.Context, candidateID int64, from, to candidate.Status, reason string) {
	err := s.statusProducer.Produce(ctx, event.StatusEvent{
		Key:         shortuuid.New(),
		CandidateID: candidateID,
		From:        from.String(),
		To:          to.String(),
		Reason:      reason,
	})
	if err != nil {
		// 事件发送失败不回滚状态
		s.logger.Error("发送状态事件失败",
			elog.FieldErr(err),
			elog.Int64("candidateID", candidateID))
	}
}

func (s *service) produceAudit(ctx context.Context, actor domain.Actor, action string, candidateID int64, detail string) {
	err := s.auditProducer.Produce(ctx, event.AuditEvent{
		Key:       shortuuid.New(),
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Action:    action,
		Biz:       "candidate",
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

var notifyCopy = map[candidate.Status]struct {
	subject string
	body    string
}{
	candidate.StatusStep1Passed: {
		subject: "笔试通过通知",
		body:    "恭喜，你已通过在线笔试，我们会尽快与你约技术面试时间。",
	},
	candidate.StatusStep1Rejected: {
		subject: "笔试结果通知",
		body:    "很遗憾，你的笔试成绩未达到要求，感谢你的投递。",
	},
	candidate.StatusStep3Pending: {
		subject: "面试进展通知",
		body:    "恭喜，你已进入终面环节，我们会尽快与你联系。",
	},
	candidate.StatusHired: {
		subject: "录用通知",
		body:    "恭喜，你已通过全部面试环节，HR 会与你沟通后续入职事宜。",
	},
	candidate.StatusRejected: {
		subject: "面试结果通知",
		body:    "很遗憾，这次我们没能走到一起，感谢你花时间参与面试。",
	},
}

func (s *service) notify(ctx context.Context, c candidate.Candidate, to candidate.Status) {
	copywriting, ok := notifyCopy[to]
	if !ok {
		// 中间状态不打扰候选人
		return
	}
	s.notificationSvc.Send(ctx, c.Email, copywriting.subject, copywriting.body)
}
