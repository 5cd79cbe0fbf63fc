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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mekongtech/recruitment/internal/candidate"
	"github.com/mekongtech/recruitment/internal/credential/internal/domain"
	"github.com/mekongtech/recruitment/internal/credential/internal/event"
	"github.com/mekongtech/recruitment/internal/credential/internal/repository"
)

type fakeRepo struct {
	credentials map[int64]domain.Credential
	nextID      int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{credentials: map[int64]domain.Credential{}, nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, c domain.Credential) (int64, error) {
	c.ID = f.nextID
	f.nextID++
	c.Status = domain.StatusActive
	f.credentials[c.ID] = c
	return c.ID, nil
}

func (f *fakeRepo) DeactivateActive(_ context.Context, candidateID int64, stage domain.Stage) error {
	for id, c := range f.credentials {
		if c.CandidateID == candidateID && c.Stage == stage && c.Status == domain.StatusActive {
			c.Status = domain.StatusInactive
			f.credentials[id] = c
		}
	}
	return nil
}

func (f *fakeRepo) FindByLinkID(_ context.Context, linkID string) (domain.Credential, error) {
	for _, c := range f.credentials {
		if c.LinkID == linkID {
			return c, nil
		}
	}
	return domain.Credential{}, repository.ErrRecordNotFound
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (domain.Credential, error) {
	c, ok := f.credentials[id]
	if !ok {
		return domain.Credential{}, repository.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeRepo) ListByCandidate(_ context.Context, candidateID int64) ([]domain.Credential, error) {
	var res []domain.Credential
	for _, c := range f.credentials {
		if c.CandidateID == candidateID {
			res = append(res, c)
		}
	}
	return res, nil
}

func (f *fakeRepo) FindActiveExpiringBetween(_ context.Context, begin, end int64) ([]domain.Credential, error) {
	var res []domain.Credential
	for _, c := range f.credentials {
		if c.Status == domain.StatusActive && c.ExpiresAt >= begin && c.ExpiresAt <= end {
			res = append(res, c)
		}
	}
	return res, nil
}

func (f *fakeRepo) UpdateExpiry(_ context.Context, id int64, expiresAt int64) (bool, error) {
	c, ok := f.credentials[id]
	if !ok || c.Status != domain.StatusActive {
		return false, nil
	}
	c.ExpiresAt = expiresAt
	c.ExtensionCount++
	f.credentials[id] = c
	return true, nil
}

func (f *fakeRepo) MarkAutoExtended(_ context.Context, id int64, expiresAt int64) (bool, error) {
	c, ok := f.credentials[id]
	if !ok || c.Status != domain.StatusActive || c.AutoExtended {
		return false, nil
	}
	c.ExpiresAt = expiresAt
	c.AutoExtended = true
	c.ExtensionCount++
	f.credentials[id] = c
	return true, nil
}

func (f *fakeRepo) MarkReminder24hSent(_ context.Context, id int64) (bool, error) {
	c := f.credentials[id]
	if c.Reminder24hSent {
		return false, nil
	}
	c.Reminder24hSent = true
	f.credentials[id] = c
	return true, nil
}

func (f *fakeRepo) MarkReminder3hSent(_ context.Context, id int64) (bool, error) {
	c := f.credentials[id]
	if c.Reminder3hSent {
		return false, nil
	}
	c.Reminder3hSent = true
	f.credentials[id] = c
	return true, nil
}

func (f *fakeRepo) ExpireOverdue(_ context.Context, now int64) (int64, error) {
	var count int64
	for id, c := range f.credentials {
		if c.Status == domain.StatusActive && c.ExpiresAt < now {
			c.Status = domain.StatusExpired
			f.credentials[id] = c
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) IncrFailedAttempts(_ context.Context, id int64) error {
	c := f.credentials[id]
	c.FailedAttempts++
	f.credentials[id] = c
	return nil
}

func (f *fakeRepo) RecordSuccess(_ context.Context, id int64, usedAt int64, ip string) error {
	c := f.credentials[id]
	c.FailedAttempts = 0
	c.LastUsedAt = usedAt
	c.LastUsedIP = ip
	f.credentials[id] = c
	return nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.Status) error {
	c := f.credentials[id]
	c.Status = status
	f.credentials[id] = c
	return nil
}

type fakeCandidateSvc struct{}

func (f *fakeCandidateSvc) Create(_ context.Context, _ candidate.Candidate) (int64, error) {
	return 0, nil
}

func (f *fakeCandidateSvc) Detail(_ context.Context, id int64) (candidate.Candidate, error) {
	return candidate.Candidate{ID: id, Name: "张三", Email: "zhangsan@example.com"}, nil
}

func (f *fakeCandidateSvc) List(_ context.Context, _ candidate.Status, _, _ int) ([]candidate.Candidate, int64, error) {
	return nil, 0, nil
}

func (f *fakeCandidateSvc) UpdateStatus(_ context.Context, _ int64, _, _ candidate.Status, _ string) error {
	return nil
}

func (f *fakeCandidateSvc) OverrideStatus(_ context.Context, _ int64, _ candidate.Status, _ string) error {
	return nil
}

type fakeNotification struct {
	recipients []string
	subjects   []string
	bodies     []string
}

func (f *fakeNotification) Send(_ context.Context, recipient, subject, body string) {
	f.recipients = append(f.recipients, recipient)
	f.subjects = append(f.subjects, subject)
	f.bodies = append(f.bodies, body)
}

type fakeAuditProducer struct {
	actions []string
}

func (f *fakeAuditProducer) Produce(_ context.Context, evt event.AuditEvent) error {
	f.actions = append(f.actions, evt.Action)
	return nil
}

func newTestService(now time.Time) (*service, *fakeRepo, *fakeNotification, *fakeAuditProducer) {
	repo := newFakeRepo()
	n := &fakeNotification{}
	ap := &fakeAuditProducer{}
	svc := NewService(repo, &fakeCandidateSvc{}, n, ap, Config{}).(*service)
	svc.nowFunc = func() time.Time { return now }
	return svc, repo, n, ap
}

func TestService_Issue(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	svc, repo, n, ap := newTestService(now)

	cred, plaintext, err := svc.Issue(context.Background(), 1, domain.StageAssessment)
	require.NoError(t, err)
	assert.NotEmpty(t, cred.LinkID)
	assert.Equal(t, now.AddDate(0, 0, 7).UnixMilli(), cred.ExpiresAt)
	// 明文只返回一次，库里只有哈希
	assert.NotEqual(t, plaintext, cred.SecretHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cred.SecretHash), []byte(plaintext)))
	require.Len(t, n.recipients, 1)
	assert.Equal(t, "zhangsan@example.com", n.recipients[0])
	assert.Contains(t, n.bodies[0], plaintext)
	assert.Equal(t, []string{"credential_issued"}, ap.actions)

	// 再签一张，旧的被顶成 inactive，同一环节只剩一条 active
	cred2, _, err := svc.Issue(context.Background(), 1, domain.StageAssessment)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInactive, repo.credentials[cred.ID].Status)
	assert.Equal(t, domain.StatusActive, repo.credentials[cred2.ID].Status)

	// 面试环节默认3天
	cred3, _, err := svc.Issue(context.Background(), 1, domain.StageInterview)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, 3).UnixMilli(), cred3.ExpiresAt)
	assert.Equal(t, domain.StatusActive, repo.credentials[cred2.ID].Status)

	_, _, err = svc.Issue(context.Background(), 1, domain.Stage(9))
	assert.ErrorIs(t, err, ErrInvalidStage)
}

func TestService_Validate(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	svc, repo, _, _ := newTestService(now)
	cred, plaintext, err := svc.Issue(context.Background(), 1, domain.StageAssessment)
	require.NoError(t, err)

	t.Run("校验成功记录最近使用", func(t *testing.T) {
		got, err := svc.Validate(context.Background(), cred.LinkID, plaintext, "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, now.UnixMilli(), got.LastUsedAt)
		assert.Equal(t, "10.0.0.1", got.LastUsedIP)
	})

	t.Run("重复用正确密钥不累加失败计数", func(t *testing.T) {
		_, err := svc.Validate(context.Background(), cred.LinkID, plaintext, "10.0.0.1")
		require.NoError(t, err)
		_, err = svc.Validate(context.Background(), cred.LinkID, plaintext, "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, 0, repo.credentials[cred.ID].FailedAttempts)
	})

	t.Run("不存在", func(t *testing.T) {
		_, err := svc.Validate(context.Background(), "no-such-link", plaintext, "10.0.0.1")
		assert.ErrorIs(t, err, ErrCredentialNotFound)
	})

	t.Run("被顶掉的凭证视同不存在", func(t *testing.T) {
		_, plaintext2, err := svc.Issue(context.Background(), 2, domain.StageAssessment)
		require.NoError(t, err)
		superseded, err := svc.ListByCandidate(context.Background(), 2)
		require.NoError(t, err)
		_, _, err = svc.Issue(context.Background(), 2, domain.StageAssessment)
		require.NoError(t, err)
		_, err = svc.Validate(context.Background(), superseded[0].LinkID, plaintext2, "10.0.0.1")
		assert.ErrorIs(t, err, ErrCredentialNotFound)
	})

	t.Run("过期优先于密钥错误", func(t *testing.T) {
		expired, _, err := svc.Issue(context.Background(), 3, domain.StageAssessment)
		require.NoError(t, err)
		svc.nowFunc = func() time.Time { return now.AddDate(0, 0, 8) }
		_, err = svc.Validate(context.Background(), expired.LinkID, "wrong-secret", "10.0.0.1")
		assert.ErrorIs(t, err, ErrCredentialExpired)
		// 没有进猜测计数
		assert.Equal(t, 0, repo.credentials[expired.ID].FailedAttempts)
		svc.nowFunc = func() time.Time { return now }
	})
}

func TestService_Validate_Lockout(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	svc, repo, _, _ := newTestService(now)
	cred, plaintext, err := svc.Issue(context.Background(), 1, domain.StageAssessment)
	require.NoError(t, err)

	// 连猜错三次锁定
	for i := 0; i < 3; i++ {
		_, err = svc.Validate(context.Background(), cred.LinkID, "wrong-secret", "10.0.0.1")
		assert.ErrorIs(t, err, ErrInvalidSecret)
	}
	assert.Equal(t, 3, repo.credentials[cred.ID].FailedAttempts)

	// 第四次就算密钥对了也进不来，且计数不再涨
	_, err = svc.Validate(context.Background(), cred.LinkID, plaintext, "10.0.0.1")
	assert.ErrorIs(t, err, ErrCredentialLocked)
	assert.Equal(t, 3, repo.credentials[cred.ID].FailedAttempts)
}

func TestService_Extend(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	svc, _, _, ap := newTestService(now)
	cred, _, err := svc.Issue(context.Background(), 1, domain.StageAssessment)
	require.NoError(t, err)

	got, err := svc.Extend(context.Background(), cred.LinkID, 2, 11, "hr", "候选人出差")
	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(cred.ExpiresAt).AddDate(0, 0, 2).UnixMilli(), got.ExpiresAt)
	assert.Equal(t, 1, got.ExtensionCount)
	assert.Equal(t, "credential_extended", ap.actions[len(ap.actions)-1])

	// 已经过期的不能延
	svc.nowFunc = func() time.Time { return now.AddDate(0, 0, 30) }
	_, err = svc.Extend(context.Background(), cred.LinkID, 2, 11, "hr", "来不及了")
	assert.ErrorIs(t, err, ErrCannotExtendExpired)

	_, err = svc.Extend(context.Background(), "no-such-link", 2, 11, "hr", "")
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestService_WeekendExtensionSweep(t *testing.T) {
	// 2026-03-05 是周四
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.Local)
	svc, repo, _, _ := newTestService(now)

	// 周六到期，在3天窗口内，应该顺延到周一
	saturday, _, err := svc.Issue(context.Background(), 1, domain.StageAssessment)
	require.NoError(t, err)
	ok, err := repo.UpdateExpiry(context.Background(), saturday.ID,
		time.Date(2026, 3, 7, 10, 0, 0, 0, time.Local).UnixMilli())
	require.NoError(t, err)
	require.True(t, ok)

	// 下周二到期，不在周末，不动
	tuesday, _, err := svc.Issue(context.Background(), 2, domain.StageAssessment)
	require.NoError(t, err)
	tuesdayAt := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local).UnixMilli()
	_, err = repo.UpdateExpiry(context.Background(), tuesday.ID, tuesdayAt)
	require.NoError(t, err)

	count, err := svc.RunWeekendExtensionSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	got := repo.credentials[saturday.ID]
	assert.Equal(t, time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local).UnixMilli(), got.ExpiresAt)
	assert.True(t, got.AutoExtended)
	assert.Equal(t, tuesdayAt, repo.credentials[tuesday.ID].ExpiresAt)

	// 重跑不会二次顺延
	count, err = svc.RunWeekendExtensionSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.Equal(t, time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local).UnixMilli(),
		repo.credentials[saturday.ID].ExpiresAt)
}

func TestService_ReminderSweep(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	svc, repo, n, _ := newTestService(now)

	// 20小时后到期，进24小时档
	in20h, _, err := svc.Issue(context.Background(), 1, domain.StageAssessment)
	require.NoError(t, err)
	_, err = repo.UpdateExpiry(context.Background(), in20h.ID, now.Add(20*time.Hour).UnixMilli())
	require.NoError(t, err)

	// 2小时后到期，进3小时档
	in2h, _, err := svc.Issue(context.Background(), 2, domain.StageAssessment)
	require.NoError(t, err)
	_, err = repo.UpdateExpiry(context.Background(), in2h.ID, now.Add(2*time.Hour).UnixMilli())
	require.NoError(t, err)

	// 3天后到期，不在提醒窗口
	_, _, err = svc.Issue(context.Background(), 3, domain.StageAssessment)
	require.NoError(t, err)

	n.bodies = nil
	count, err := svc.RunReminderSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.True(t, repo.credentials[in20h.ID].Reminder24hSent)
	assert.True(t, repo.credentials[in2h.ID].Reminder3hSent)
	require.Len(t, n.bodies, 2)

	// 每档至多一次，重跑不再发
	count, err = svc.RunReminderSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.Len(t, n.bodies, 2)
}

func TestService_ExpiryCleanupSweep(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	svc, repo, _, _ := newTestService(now)
	cred, plaintext, err := svc.Issue(context.Background(), 1, domain.StageAssessment)
	require.NoError(t, err)

	svc.nowFunc = func() time.Time { return now.AddDate(0, 0, 8) }
	// 还没被清理任务扫到的过期凭证，校验也必须拒绝
	_, err = svc.Validate(context.Background(), cred.LinkID, plaintext, "10.0.0.1")
	assert.ErrorIs(t, err, ErrCredentialExpired)

	count, err := svc.RunExpiryCleanupSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, domain.StatusExpired, repo.credentials[cred.ID].Status)

	count, err = svc.RunExpiryCleanupSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
