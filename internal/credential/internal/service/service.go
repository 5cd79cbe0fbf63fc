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
	"golang.org/x/crypto/bcrypt"

	"github.com/mekongtech/recruitment/internal/candidate"
	"github.com/mekongtech/recruitment/internal/credential/internal/domain"
	"github.com/mekongtech/recruitment/internal/credential/internal/event"
	"github.com/mekongtech/recruitment/internal/credential/internal/repository"
	"github.com/mekongtech/recruitment/internal/notification"
	"github.com/mekongtech/recruitment/internal/pkg/secret"
)

var (
	ErrInvalidStage        = errors.New("非法的凭证环节")
	ErrCredentialNotFound  = errors.New("访问凭证不存在")
	ErrCredentialExpired   = errors.New("访问凭证已过期")
	ErrCredentialLocked    = errors.New("访问凭证已锁定")
	ErrInvalidSecret       = errors.New("密钥不正确")
	ErrCannotExtendExpired = errors.New("过期凭证不能延期")
)

// Config 凭证有效期和提醒的配置。零值字段取默认值，
// 改配置只影响之后签发的凭证。
type Config struct {
	Stage1ExpiryDays     int    `yaml:"stage1ExpiryDays"`
	Stage2ExpiryDays     int    `yaml:"stage2ExpiryDays"`
	SecretLength         int    `yaml:"secretLength"`
	MaxFailedAttempts    int    `yaml:"maxFailedAttempts"`
	WeekendLookaheadDays int    `yaml:"weekendLookaheadDays"`
	LinkBaseURL          string `yaml:"linkBaseURL"`
}

func (c Config) withDefaults() Config {
	if c.Stage1ExpiryDays <= 0 {
		c.Stage1ExpiryDays = 7
	}
	if c.Stage2ExpiryDays <= 0 {
		c.Stage2ExpiryDays = 3
	}
	if c.SecretLength <= 0 {
		c.SecretLength = secret.DefaultLength
	}
	if c.MaxFailedAttempts <= 0 {
		c.MaxFailedAttempts = 3
	}
	if c.WeekendLookaheadDays <= 0 {
		c.WeekendLookaheadDays = 3
	}
	if c.LinkBaseURL == "" {
		c.LinkBaseURL = "https://careers.mekongtech.com/verify"
	}
	return c
}

//go:generate mockgen -source=./service.go -package=credentialmocks -destination=../../mocks/credential.mock.go -typed Service
type Service interface {
	// Issue 签发凭证并把旧的 active 凭证顶成 inactive。
	// 明文密钥只在这里返回一次，之后只能重新签发。
	Issue(ctx context.Context, candidateID int64, stage domain.Stage) (domain.Credential, string, error)
	// Validate 候选人凭链接和密钥换会话。失败原因按
	// 不存在、过期、锁定、密钥错误的顺序判定，只有密钥错误累加计数。
	Validate(ctx context.Context, linkID, secretText, ip string) (domain.Credential, error)
	Extend(ctx context.Context, linkID string, days int, actorID int64, role, reason string) (domain.Credential, error)
	// Deactivate 管理员吊销凭证
	Deactivate(ctx context.Context, linkID string, actorID int64, role, reason string) error
	Detail(ctx context.Context, linkID string) (domain.Credential, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Credential, error)

	// RunWeekendExtensionSweep 把未来几天内落在周五到周日的到期时间
	// 顺延两天到周一，每条凭证只顺延一次
	RunWeekendExtensionSweep(ctx context.Context) (int64, error)
	// RunReminderSweep 按剩余时长发 24 小时和 3 小时两档提醒，每档至多一次
	RunReminderSweep(ctx context.Context) (int64, error)
	// RunExpiryCleanupSweep 把已过期的 active 凭证标成 expired
	RunExpiryCleanupSweep(ctx context.Context) (int64, error)
}

type service struct {
	repo            repository.CredentialRepository
	candidateSvc    candidate.Service
	notificationSvc notification.Service
	auditProducer   event.AuditEventProducer
	cfg             Config
	// nowFunc 可注入，扫描任务的时间判定全走这里
	nowFunc func() time.Time
	logger  *elog.Component
}

func NewService(repo repository.CredentialRepository,
	candidateSvc candidate.Service,
	notificationSvc notification.Service,
	auditProducer event.AuditEventProducer,
	cfg Config) Service {
	return &service{
		repo:            repo,
		candidateSvc:    candidateSvc,
		notificationSvc: notificationSvc,
		auditProducer:   auditProducer,
		cfg:             cfg.withDefaults(),
		nowFunc:         time.Now,
		logger:          elog.DefaultLogger,
	}
}

func (s *service) Issue(ctx context.Context, candidateID int64, stage domain.Stage) (domain.Credential, string, error) {
	if !stage.IsValid() {
		return domain.Credential{}, "", fmt.Errorf("%w: %d", ErrInvalidStage, stage)
	}
	c, err := s.candidateSvc.Detail(ctx, candidateID)
	if err != nil {
		return domain.Credential{}, "", fmt.Errorf("查找候选人失败: %w", err)
	}

	plaintext, err := secret.Generate(s.cfg.SecretLength)
	if err != nil {
		return domain.Credential{}, "", fmt.Errorf("生成密钥失败: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return domain.Credential{}, "", fmt.Errorf("计算密钥哈希失败: %w", err)
	}

	expiryDays := s.cfg.Stage1ExpiryDays
	if stage == domain.StageInterview {
		expiryDays = s.cfg.Stage2ExpiryDays
	}
	now := s.nowFunc()
	cred := domain.Credential{
		CandidateID: candidateID,
		LinkID:      shortuuid.New(),
		SecretHash:  string(hash),
		Stage:       stage,
		IssuedAt:    now.UnixMilli(),
		ExpiresAt:   now.AddDate(0, 0, expiryDays).UnixMilli(),
		Status:      domain.StatusActive,
	}

	// 先顶掉旧凭证再落新的，保证同一环节至多一条 active
	err = s.repo.DeactivateActive(ctx, candidateID, stage)
	if err != nil {
		return domain.Credential{}, "", err
	}
	cred.ID, err = s.repo.Create(ctx, cred)
	if err != nil {
		return domain.Credential{}, "", err
	}

	s.notificationSvc.Send(ctx, c.Email, "笔试入口和访问密钥",
		fmt.Sprintf("%s/%s 密钥 %s，%s 前有效",
			s.cfg.LinkBaseURL, cred.LinkID, plaintext,
			time.UnixMilli(cred.ExpiresAt).Format("2006-01-02 15:04")))
	s.produceAudit(ctx, 0, "system", "credential_issued", candidateID,
		fmt.Sprintf("环节 %d 凭证 %s", stage, cred.LinkID))
	return cred, plaintext, nil
}

func (s *service) Validate(ctx context.Context, linkID, secretText, ip string) (domain.Credential, error) {
	cred, err := s.repo.FindByLinkID(ctx, linkID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domain.Credential{}, ErrCredentialNotFound
		}
		return domain.Credential{}, err
	}
	if cred.Status == domain.StatusInactive {
		return domain.Credential{}, ErrCredentialNotFound
	}
	now := s.nowFunc()
	if cred.Expired(now) {
		return domain.Credential{}, ErrCredentialExpired
	}
	if cred.Locked(s.cfg.MaxFailedAttempts) {
		return domain.Credential{}, ErrCredentialLocked
	}
	err = bcrypt.CompareHashAndPassword([]byte(cred.SecretHash), []byte(secretText))
	if err != nil {
		// 只有真实的猜测才累加，计数失败不掩盖校验结果
		er := s.repo.IncrFailedAttempts(ctx, cred.ID)
		if er != nil {
			s.logger.Error("累加失败计数失败",
				elog.FieldErr(er),
				elog.String("linkID", linkID))
		}
		return domain.Credential{}, ErrInvalidSecret
	}
	err = s.repo.RecordSuccess(ctx, cred.ID, now.UnixMilli(), ip)
	if err != nil {
		return domain.Credential{}, err
	}
	cred.FailedAttempts = 0
	cred.LastUsedAt = now.UnixMilli()
	cred.LastUsedIP = ip
	return cred, nil
}

func (s *service) Extend(ctx context.Context, linkID string, days int, actorID int64, role, reason string) (domain.Credential, error) {
	cred, err := s.repo.FindByLinkID(ctx, linkID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domain.Credential{}, ErrCredentialNotFound
		}
		return domain.Credential{}, err
	}
	if cred.Status != domain.StatusActive || cred.Expired(s.nowFunc()) {
		return domain.Credential{}, ErrCannotExtendExpired
	}
	newExpiresAt := time.UnixMilli(cred.ExpiresAt).AddDate(0, 0, days).UnixMilli()
	ok, err := s.repo.UpdateExpiry(ctx, cred.ID, newExpiresAt)
	if err != nil {
		return domain.Credential{}, err
	}
	if !ok {
		return domain.Credential{}, ErrCannotExtendExpired
	}
	cred.ExpiresAt = newExpiresAt
	cred.ExtensionCount++
	s.produceAudit(ctx, actorID, role, "credential_extended", cred.CandidateID,
		fmt.Sprintf("凭证 %s 延期 %d 天：%s", linkID, days, reason))
	return cred, nil
}

func (s *service) Deactivate(ctx context.Context, linkID string, actorID int64, role, reason string) error {
	cred, err := s.repo.FindByLinkID(ctx, linkID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrCredentialNotFound
		}
		return err
	}
	err = s.repo.UpdateStatus(ctx, cred.ID, domain.StatusInactive)
	if err != nil {
		return err
	}
	s.produceAudit(ctx, actorID, role, "credential_revoked", cred.CandidateID,
		fmt.Sprintf("凭证 %s 被吊销：%s", linkID, reason))
	return nil
}

func (s *service) Detail(ctx context.Context, linkID string) (domain.Credential, error) {
	cred, err := s.repo.FindByLinkID(ctx, linkID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Credential{}, ErrCredentialNotFound
	}
	return cred, err
}

func (s *service) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Credential, error) {
	return s.repo.ListByCandidate(ctx, candidateID)
}

func (s *service) RunWeekendExtensionSweep(ctx context.Context) (int64, error) {
	now := s.nowFunc()
	deadline := now.AddDate(0, 0, s.cfg.WeekendLookaheadDays)
	candidates, err := s.repo.FindActiveExpiringBetween(ctx, now.UnixMilli(), deadline.UnixMilli())
	if err != nil {
		return 0, err
	}
	var count int64
	for _, cred := range candidates {
		if cred.AutoExtended || !cred.ExpiresOnWeekend() {
			continue
		}
		newExpiresAt := time.UnixMilli(cred.ExpiresAt).AddDate(0, 0, 2).UnixMilli()
		// auto_extended 标记在更新条件里，并发重跑只会有一次生效
		ok, err := s.repo.MarkAutoExtended(ctx, cred.ID, newExpiresAt)
		if err != nil {
			return count, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

func (s *service) RunReminderSweep(ctx context.Context) (int64, error) {
	now := s.nowFunc()
	deadline := now.Add(24 * time.Hour)
	candidates, err := s.repo.FindActiveExpiringBetween(ctx, now.UnixMilli(), deadline.UnixMilli())
	if err != nil {
		return 0, err
	}
	var count int64
	for _, cred := range candidates {
		remaining := time.UnixMilli(cred.ExpiresAt).Sub(now)
		// 已经进了3小时窗口就不再补发24小时那档
		if remaining <= 3*time.Hour {
			if cred.Reminder3hSent {
				continue
			}
			sent, err := s.remind(ctx, cred, "3小时", s.repo.MarkReminder3hSent)
			if err != nil {
				return count, err
			}
			if sent {
				count++
			}
			continue
		}
		if !cred.Reminder24hSent {
			sent, err := s.remind(ctx, cred, "24小时", s.repo.MarkReminder24hSent)
			if err != nil {
				return count, err
			}
			if sent {
				count++
			}
		}
	}
	return count, nil
}

func (s *service) RunExpiryCleanupSweep(ctx context.Context) (int64, error) {
	return s.repo.ExpireOverdue(ctx, s.nowFunc().UnixMilli())
}

// remind 先占标记位再发通知，扫描重跑不会重复打扰候选人
func (s *service) remind(ctx context.Context, cred domain.Credential, lead string,
	mark func(ctx context.Context, id int64) (bool, error)) (bool, error) {
	ok, err := mark(ctx, cred.ID)
	if err != nil || !ok {
		return false, err
	}
	c, err := s.candidateSvc.Detail(ctx, cred.CandidateID)
	if err != nil {
		s.logger.Error("查找候选人失败，提醒未发出",
			elog.FieldErr(err),
			elog.Int64("candidateID", cred.CandidateID))
		return true, nil
	}
	s.notificationSvc.Send(ctx, c.Email, "访问凭证即将到期",
		fmt.Sprintf("你的访问凭证将在%s内到期（%s），请尽快完成。",
			lead, time.UnixMilli(cred.ExpiresAt).Format("2006-01-02 15:04")))
	return true, nil
}

func (s *service) produceAudit(ctx context.Context, actorID int64, role, action string, candidateID int64, detail string) {
	err := s.auditProducer.Produce(ctx, event.AuditEvent{
		Key:       shortuuid.New(),
		ActorID:   actorID,
		ActorRole: role,
		Action:    action,
		Biz:       "credential",
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
