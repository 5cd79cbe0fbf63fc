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
	"github.com/mekongtech/recruitment/internal/executive/internal/domain"
	"github.com/mekongtech/recruitment/internal/executive/internal/event"
	"github.com/mekongtech/recruitment/internal/executive/internal/repository"
	"github.com/mekongtech/recruitment/internal/pipeline"
)

type fakeRepo struct {
	decisions map[int64]domain.Decision
	nextID    int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{decisions: map[int64]domain.Decision{}, nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, d domain.Decision) (int64, error) {
	if _, ok := f.decisions[d.CandidateID]; ok {
		return 0, repository.ErrDuplicatedDecision
	}
	d.ID = f.nextID
	f.nextID++
	d.Version = 1
	f.decisions[d.CandidateID] = d
	return d.ID, nil
}

func (f *fakeRepo) FindByCandidate(_ context.Context, candidateID int64) (domain.Decision, error) {
	d, ok := f.decisions[candidateID]
	if !ok {
		return domain.Decision{}, repository.ErrRecordNotFound
	}
	return d, nil
}

func (f *fakeRepo) List(_ context.Context, _ domain.Status, _, _ int) ([]domain.Decision, error) {
	return nil, nil
}

func (f *fakeRepo) Update(_ context.Context, d domain.Decision) error {
	cur := f.decisions[d.CandidateID]
	if cur.Version != d.Version {
		return repository.ErrVersionMismatch
	}
	d.Version++
	f.decisions[d.CandidateID] = d
	return nil
}

type fakePipelineSvc struct {
	outcomes []pipeline.Step3Outcome
	scores   []float64
}

func (f *fakePipelineSvc) CompleteStep1(_ context.Context, _ int64, _ pipeline.Step1Result, _ float64) error {
	return nil
}

func (f *fakePipelineSvc) ResolveManualReview(_ context.Context, _ int64, _ bool, _ pipeline.Actor, _ string) error {
	return nil
}

func (f *fakePipelineSvc) MarkStep2Evaluated(_ context.Context, _ int64, _ float64) error {
	return nil
}

func (f *fakePipelineSvc) AdvanceToStep3(_ context.Context, _ int64, _ float64, _ pipeline.Actor) error {
	return nil
}

func (f *fakePipelineSvc) CompleteStep3(_ context.Context, _ int64, outcome pipeline.Step3Outcome, finalScore float64) error {
	f.outcomes = append(f.outcomes, outcome)
	f.scores = append(f.scores, finalScore)
	return nil
}

func (f *fakePipelineSvc) Override(_ context.Context, _ int64, _ candidate.Status, _ pipeline.Actor, _ string) error {
	return nil
}

type fakeAuditProducer struct {
	events []event.AuditEvent
}

func (f *fakeAuditProducer) Produce(_ context.Context, evt event.AuditEvent) error {
	f.events = append(f.events, evt)
	return nil
}

func newTestService() (Service, *fakeRepo, *fakePipelineSvc, *fakeAuditProducer) {
	repo := newFakeRepo()
	p := &fakePipelineSvc{}
	ap := &fakeAuditProducer{}
	return NewService(repo, p, ap), repo, p, ap
}

// 两侧子分都打同一个数，加权分就等于这个数，方便直接对场景
func flatSubmission(role domain.Role, evaluatorID int64, score float64, rec domain.Recommendation) Submission {
	return Submission{
		EvaluatorID:     evaluatorID,
		Role:            role,
		TechnicalScore:  score,
		CulturalScore:   score,
		LeadershipScore: score,
		Recommendation:  rec,
	}
}

func TestRole_WeightedScore(t *testing.T) {
	// CTO 技术0.6/文化0.4，CEO 反过来
	assert.InDelta(t, 8.2, domain.RoleCTO.WeightedScore(9, 7), 1e-9)
	assert.InDelta(t, 7.8, domain.RoleCEO.WeightedScore(9, 7), 1e-9)
}

func TestService_Submit_SingleSide(t *testing.T) {
	svc, repo, p, ap := newTestService()
	d, err := svc.Submit(context.Background(), 1, flatSubmission(domain.RoleCTO, 11, 8, domain.RecommendHire))
	require.NoError(t, err)

	// 单侧提交不定稿
	assert.Equal(t, domain.StatusPending, d.Status)
	assert.Empty(t, d.FinalDecision)
	assert.True(t, d.CTO.Submitted())
	assert.False(t, d.CEO.Submitted())
	assert.Empty(t, p.outcomes)
	require.Len(t, ap.events, 1)
	assert.Equal(t, "decision_submitted", ap.events[0].Action)
	assert.Equal(t, domain.StatusPending, repo.decisions[1].Status)
}

func TestService_Submit_Consensus(t *testing.T) {
	testCases := []struct {
		name        string
		ctoScore    float64
		ctoRec      domain.Recommendation
		ceoScore    float64
		ceoRec      domain.Recommendation
		wantFinal   float64
		wantResult  domain.FinalDecision
		wantOutcome pipeline.Step3Outcome
	}{
		{
			name:     "双hire且均分达7录用",
			ctoScore: 8, ctoRec: domain.RecommendHire,
			ceoScore: 6, ceoRec: domain.RecommendHire,
			wantFinal:   7.0,
			wantResult:  domain.FinalHire,
			wantOutcome: pipeline.OutcomeHire,
		},
		{
			name:     "一侧reject落入人工复核",
			ctoScore: 8, ctoRec: domain.RecommendHire,
			ceoScore: 4, ceoRec: domain.RecommendReject,
			wantFinal:   6.0,
			wantResult:  domain.FinalManualReview,
			wantOutcome: pipeline.OutcomeManualReview,
		},
		{
			name:     "分高但建议不一致不录用",
			ctoScore: 9, ctoRec: domain.RecommendHire,
			ceoScore: 9, ceoRec: domain.RecommendReview,
			wantFinal:   9.0,
			wantResult:  domain.FinalManualReview,
			wantOutcome: pipeline.OutcomeManualReview,
		},
		{
			name:     "均分不足5淘汰",
			ctoScore: 4, ctoRec: domain.RecommendReject,
			ceoScore: 4, ceoRec: domain.RecommendReject,
			wantFinal:   4.0,
			wantResult:  domain.FinalReject,
			wantOutcome: pipeline.OutcomeReject,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// 两种提交顺序结果必须一致
			orders := []struct {
				name  string
				first domain.Role
			}{
				{name: "CTO先", first: domain.RoleCTO},
				{name: "CEO先", first: domain.RoleCEO},
			}
			for _, order := range orders {
				t.Run(order.name, func(t *testing.T) {
					svc, _, p, _ := newTestService()
					cto := flatSubmission(domain.RoleCTO, 11, tc.ctoScore, tc.ctoRec)
					ceo := flatSubmission(domain.RoleCEO, 12, tc.ceoScore, tc.ceoRec)
					subs := []Submission{cto, ceo}
					if order.first == domain.RoleCEO {
						subs = []Submission{ceo, cto}
					}
					var d domain.Decision
					var err error
					for _, sub := range subs {
						d, err = svc.Submit(context.Background(), 1, sub)
						require.NoError(t, err)
					}
					assert.Equal(t, domain.StatusCompleted, d.Status)
					assert.InDelta(t, tc.wantFinal, d.FinalScore, 1e-9)
					assert.Equal(t, tc.wantResult, d.FinalDecision)
					// 恰好一次定稿事件
					require.Len(t, p.outcomes, 1)
					assert.Equal(t, tc.wantOutcome, p.outcomes[0])
					assert.InDelta(t, tc.wantFinal, p.scores[0], 1e-9)
				})
			}
		})
	}
}

func TestService_Submit_Revision(t *testing.T) {
	svc, _, p, ap := newTestService()
	_, err := svc.Submit(context.Background(), 1, flatSubmission(domain.RoleCTO, 11, 8, domain.RecommendHire))
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), 1, flatSubmission(domain.RoleCEO, 12, 4, domain.RecommendReject))
	require.NoError(t, err)
	require.Len(t, p.outcomes, 1)
	assert.Equal(t, pipeline.OutcomeManualReview, p.outcomes[0])

	// CEO修订打分，重算共识，审计动作是 decision_revised
	d, err := svc.Submit(context.Background(), 1, flatSubmission(domain.RoleCEO, 12, 6, domain.RecommendHire))
	require.NoError(t, err)
	assert.Equal(t, domain.FinalHire, d.FinalDecision)
	require.Len(t, p.outcomes, 2)
	assert.Equal(t, pipeline.OutcomeHire, p.outcomes[1])
	assert.Equal(t, "decision_revised", ap.events[len(ap.events)-1].Action)
}

func TestService_Submit_Validation(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.Submit(context.Background(), 1, flatSubmission("hr", 11, 8, domain.RecommendHire))
	assert.ErrorIs(t, err, ErrNotExecutive)

	_, err = svc.Submit(context.Background(), 1, flatSubmission(domain.RoleCTO, 11, 11, domain.RecommendHire))
	assert.ErrorIs(t, err, ErrInvalidScore)

	_, err = svc.Submit(context.Background(), 1, flatSubmission(domain.RoleCTO, 11, 8, "maybe"))
	assert.ErrorIs(t, err, ErrInvalidRecommend)
}

func TestService_ApproveCompensation(t *testing.T) {
	svc, _, _, ap := newTestService()
	_, err := svc.ApproveCompensation(context.Background(), 1, 11, domain.RoleCTO, "")
	assert.ErrorIs(t, err, ErrDecisionNotFound)

	_, err = svc.Submit(context.Background(), 1, flatSubmission(domain.RoleCTO, 11, 8, domain.RecommendHire))
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), 1, flatSubmission(domain.RoleCEO, 12, 8, domain.RecommendHire))
	require.NoError(t, err)

	// 单侧审批不生效
	d, err := svc.ApproveCompensation(context.Background(), 1, 11, domain.RoleCTO, "按P6定薪")
	require.NoError(t, err)
	assert.Equal(t, domain.CompensationPending, d.CompensationStatus)

	// 双侧齐了才approved
	d, err = svc.ApproveCompensation(context.Background(), 1, 12, domain.RoleCEO, "同意")
	require.NoError(t, err)
	assert.Equal(t, domain.CompensationApproved, d.CompensationStatus)
	assert.NotZero(t, d.CompensationApprovedAt)
	assert.Equal(t, "compensation_approved", ap.events[len(ap.events)-1].Action)
}
