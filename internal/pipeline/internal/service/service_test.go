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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mekongtech/recruitment/internal/candidate"
	"github.com/mekongtech/recruitment/internal/pipeline/internal/domain"
	"github.com/mekongtech/recruitment/internal/pipeline/internal/event"
)

type fakeCandidateSvc struct {
	candidates map[int64]candidate.Candidate
}

func newFakeCandidateSvc(cs ...candidate.Candidate) *fakeCandidateSvc {
	f := &fakeCandidateSvc{candidates: map[int64]candidate.Candidate{}}
	for _, c := range cs {
		f.candidates[c.ID] = c
	}
	return f
}

func (f *fakeCandidateSvc) Create(_ context.Context, c candidate.Candidate) (int64, error) {
	f.candidates[c.ID] = c
	return c.ID, nil
}

func (f *fakeCandidateSvc) Detail(_ context.Context, id int64) (candidate.Candidate, error) {
	return f.candidates[id], nil
}

func (f *fakeCandidateSvc) List(_ context.Context, _ candidate.Status, _, _ int) ([]candidate.Candidate, int64, error) {
	return nil, 0, nil
}

func (f *fakeCandidateSvc) UpdateStatus(_ context.Context, id int64, from, to candidate.Status, note string) error {
	c := f.candidates[id]
	if c.Status != from {
		return candidate.ErrStatusMismatch
	}
	c.Status = to
	c.StatusNote = note
	f.candidates[id] = c
	return nil
}

func (f *fakeCandidateSvc) OverrideStatus(_ context.Context, id int64, to candidate.Status, note string) error {
	c := f.candidates[id]
	c.Status = to
	c.StatusNote = note
	f.candidates[id] = c
	return nil
}

type fakeNotification struct {
	sent []string
}

func (f *fakeNotification) Send(_ context.Context, recipient, subject, _ string) {
	f.sent = append(f.sent, recipient+":"+subject)
}

type fakeStatusProducer struct {
	events []event.StatusEvent
}

func (f *fakeStatusProducer) Produce(_ context.Context, evt event.StatusEvent) error {
	f.events = append(f.events, evt)
	return nil
}

type fakeAuditProducer struct {
	events []event.AuditEvent
}

func (f *fakeAuditProducer) Produce(_ context.Context, evt event.AuditEvent) error {
	f.events = append(f.events, evt)
	return nil
}

func newTestService(cs *fakeCandidateSvc) (Service, *fakeNotification, *fakeStatusProducer, *fakeAuditProducer) {
	n := &fakeNotification{}
	sp := &fakeStatusProducer{}
	ap := &fakeAuditProducer{}
	return NewService(cs, n, sp, ap, Config{}), n, sp, ap
}

func TestService_CompleteStep1(t *testing.T) {
	testCases := []struct {
		name       string
		status     candidate.Status
		res        Step1Result
		wantStatus candidate.Status
		wantErr    error
	}{
		{
			name:       "通过",
			status:     candidate.StatusPending,
			res:        Step1Passed,
			wantStatus: candidate.StatusStep1Passed,
		},
		{
			name:       "人工复核",
			status:     candidate.StatusPending,
			res:        Step1ManualReview,
			wantStatus: candidate.StatusStep1ManualReview,
		},
		{
			name:       "未通过",
			status:     candidate.StatusPending,
			res:        Step1Failed,
			wantStatus: candidate.StatusStep1Rejected,
		},
		{
			name:       "重复触发是no-op",
			status:     candidate.StatusStep1Passed,
			res:        Step1Passed,
			wantStatus: candidate.StatusStep1Passed,
		},
		{
			name:       "终态不允许流转",
			status:     candidate.StatusHired,
			res:        Step1Failed,
			wantStatus: candidate.StatusHired,
			wantErr:    ErrTerminalStatus,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cs := newFakeCandidateSvc(candidate.Candidate{
				ID:     1,
				Email:  "c@example.com",
				Status: tc.status,
			})
			svc, _, _, _ := newTestService(cs)
			err := svc.CompleteStep1(context.Background(), 1, tc.res, 85.2)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.wantStatus, cs.candidates[1].Status)
		})
	}
}

func TestService_Transition_SideEffects(t *testing.T) {
	cs := newFakeCandidateSvc(candidate.Candidate{
		ID:     1,
		Email:  "c@example.com",
		Status: candidate.StatusPending,
	})
	svc, n, sp, ap := newTestService(cs)
	err := svc.CompleteStep1(context.Background(), 1, Step1Passed, 85.2)
	require.NoError(t, err)

	// 一次成功流转：一条状态事件 + 一条审计事件 + 一封通知
	require.Len(t, sp.events, 1)
	assert.Equal(t, "pending", sp.events[0].From)
	assert.Equal(t, "step1_passed", sp.events[0].To)
	assert.NotEmpty(t, sp.events[0].Key)
	require.Len(t, ap.events, 1)
	assert.Equal(t, "step1_completed", ap.events[0].Action)
	assert.Equal(t, "candidate", ap.events[0].Biz)
	require.Len(t, n.sent, 1)

	// 重放不产生新的副作用
	err = svc.CompleteStep1(context.Background(), 1, Step1Passed, 85.2)
	require.NoError(t, err)
	assert.Len(t, sp.events, 1)
	assert.Len(t, ap.events, 1)
	assert.Len(t, n.sent, 1)
}

func TestService_ResolveManualReview(t *testing.T) {
	actor := domain.Actor{ID: 9, Role: "admin"}
	testCases := []struct {
		name       string
		approved   bool
		wantStatus candidate.Status
	}{
		{
			name:       "放行",
			approved:   true,
			wantStatus: candidate.StatusStep1Passed,
		},
		{
			name:       "拒绝",
			approved:   false,
			wantStatus: candidate.StatusStep1Rejected,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cs := newFakeCandidateSvc(candidate.Candidate{
				ID:     1,
				Status: candidate.StatusStep1ManualReview,
			})
			svc, _, _, ap := newTestService(cs)
			err := svc.ResolveManualReview(context.Background(), 1, tc.approved, actor, "边界分数复核")
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, cs.candidates[1].Status)
			require.Len(t, ap.events, 1)
			assert.Equal(t, int64(9), ap.events[0].ActorID)
		})
	}
}

func TestService_AdvanceToStep3(t *testing.T) {
	testCases := []struct {
		name       string
		meanScore  float64
		wantStatus candidate.Status
		wantErr    error
	}{
		{
			name:       "达标进终面",
			meanScore:  7.0,
			wantStatus: candidate.StatusStep3Pending,
		},
		{
			name:       "不达标",
			meanScore:  6.99,
			wantStatus: candidate.StatusStep2Evaluated,
			wantErr:    ErrNotEligibleForStep3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cs := newFakeCandidateSvc(candidate.Candidate{
				ID:     1,
				Status: candidate.StatusStep2Evaluated,
			})
			svc, _, _, _ := newTestService(cs)
			err := svc.AdvanceToStep3(context.Background(), 1, tc.meanScore, domain.SystemActor)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.wantStatus, cs.candidates[1].Status)
		})
	}
}

func TestService_CompleteStep3(t *testing.T) {
	testCases := []struct {
		name       string
		outcome    domain.Step3Outcome
		wantStatus candidate.Status
	}{
		{
			name:       "录用",
			outcome:    domain.OutcomeHire,
			wantStatus: candidate.StatusHired,
		},
		{
			name:       "淘汰",
			outcome:    domain.OutcomeReject,
			wantStatus: candidate.StatusRejected,
		},
		{
			name:       "人工复核停在终面",
			outcome:    domain.OutcomeManualReview,
			wantStatus: candidate.StatusStep3Pending,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cs := newFakeCandidateSvc(candidate.Candidate{
				ID:     1,
				Status: candidate.StatusStep3Pending,
			})
			svc, _, _, ap := newTestService(cs)
			err := svc.CompleteStep3(context.Background(), 1, tc.outcome, 7.5)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, cs.candidates[1].Status)
			// 人工复核虽然不改状态，也要有审计
			assert.Len(t, ap.events, 1)
		})
	}
}

func TestService_Override(t *testing.T) {
	cs := newFakeCandidateSvc(candidate.Candidate{
		ID:     1,
		Email:  "c@example.com",
		Status: candidate.StatusRejected,
	})
	svc, _, _, ap := newTestService(cs)
	actor := domain.Actor{ID: 7, Role: "admin"}

	// 终态也能覆盖
	err := svc.Override(context.Background(), 1, candidate.StatusStep3Pending, actor, "申诉复活")
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusStep3Pending, cs.candidates[1].Status)
	require.Len(t, ap.events, 1)
	assert.Equal(t, "status_override", ap.events[0].Action)

	// 非法状态
	err = svc.Override(context.Background(), 1, candidate.Status("weird"), actor, "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
