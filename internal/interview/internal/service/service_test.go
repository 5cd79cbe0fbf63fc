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
	"github.com/mekongtech/recruitment/internal/interview/internal/domain"
	"github.com/mekongtech/recruitment/internal/pipeline"
	"github.com/mekongtech/recruitment/internal/user"
)

type fakeRepo struct {
	evaluations map[int64]domain.Evaluation
	nextID      int64
}

func newFakeRepo(es ...domain.Evaluation) *fakeRepo {
	f := &fakeRepo{evaluations: map[int64]domain.Evaluation{}, nextID: 1}
	for _, e := range es {
		f.evaluations[e.ID] = e
		if e.ID >= f.nextID {
			f.nextID = e.ID + 1
		}
	}
	return f
}

func (f *fakeRepo) Create(_ context.Context, e domain.Evaluation) (int64, error) {
	e.ID = f.nextID
	f.nextID++
	e.Status = domain.StatusScheduled
	f.evaluations[e.ID] = e
	return e.ID, nil
}

func (f *fakeRepo) FindById(_ context.Context, id int64) (domain.Evaluation, error) {
	return f.evaluations[id], nil
}

func (f *fakeRepo) ListByCandidate(_ context.Context, candidateID int64) ([]domain.Evaluation, error) {
	var res []domain.Evaluation
	for _, e := range f.evaluations {
		if e.CandidateID == candidateID {
			res = append(res, e)
		}
	}
	return res, nil
}

func (f *fakeRepo) ListByInterviewer(_ context.Context, interviewerID int64) ([]domain.Evaluation, error) {
	var res []domain.Evaluation
	for _, e := range f.evaluations {
		if e.InterviewerID == interviewerID {
			res = append(res, e)
		}
	}
	return res, nil
}

func (f *fakeRepo) Finalize(_ context.Context, e domain.Evaluation) error {
	cur := f.evaluations[e.ID]
	if cur.Status == domain.StatusCompleted {
		return ErrEvaluationCompleted
	}
	f.evaluations[e.ID] = e
	return nil
}

func (f *fakeRepo) MeanCompletedScore(_ context.Context, candidateID int64) (float64, int64, error) {
	var sum float64
	var count int64
	for _, e := range f.evaluations {
		if e.CandidateID == candidateID && e.Status == domain.StatusCompleted {
			sum += e.OverallScore
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return sum / float64(count), count, nil
}

type fakeUserSvc struct{}

func (f *fakeUserSvc) Login(_ context.Context, _, _ string) (user.User, error) {
	return user.User{}, nil
}

func (f *fakeUserSvc) Create(_ context.Context, u user.User) (int64, error) {
	return u.Id, nil
}

func (f *fakeUserSvc) Profile(_ context.Context, id int64) (user.User, error) {
	return user.User{Id: id, Email: "interviewer@mekongtech.com", Role: user.RoleInterviewer}, nil
}

func (f *fakeUserSvc) List(_ context.Context, _, _ int) ([]user.User, int64, error) {
	return nil, 0, nil
}

type fakeNotification struct {
	sent []string
}

func (f *fakeNotification) Send(_ context.Context, recipient, subject, _ string) {
	f.sent = append(f.sent, recipient+":"+subject)
}

type fakePipelineSvc struct {
	step2Means   []float64
	advanceMeans []float64
	advanceErr   error
}

func (f *fakePipelineSvc) CompleteStep1(_ context.Context, _ int64, _ pipeline.Step1Result, _ float64) error {
	return nil
}

func (f *fakePipelineSvc) ResolveManualReview(_ context.Context, _ int64, _ bool, _ pipeline.Actor, _ string) error {
	return nil
}

func (f *fakePipelineSvc) MarkStep2Evaluated(_ context.Context, _ int64, meanScore float64) error {
	f.step2Means = append(f.step2Means, meanScore)
	return nil
}

func (f *fakePipelineSvc) AdvanceToStep3(_ context.Context, _ int64, meanScore float64, _ pipeline.Actor) error {
	f.advanceMeans = append(f.advanceMeans, meanScore)
	return f.advanceErr
}

func (f *fakePipelineSvc) CompleteStep3(_ context.Context, _ int64, _ pipeline.Step3Outcome, _ float64) error {
	return nil
}

func (f *fakePipelineSvc) Override(_ context.Context, _ int64, _ candidate.Status, _ pipeline.Actor, _ string) error {
	return nil
}

func newTestService(repo *fakeRepo) (Service, *fakeNotification, *fakePipelineSvc) {
	n := &fakeNotification{}
	p := &fakePipelineSvc{}
	return NewService(repo, &fakeUserSvc{}, n, p), n, p
}

func TestService_Schedule(t *testing.T) {
	repo := newFakeRepo()
	svc, n, _ := newTestService(repo)
	id, err := svc.Schedule(context.Background(), domain.Evaluation{
		CandidateID:   1,
		InterviewerID: 7,
		ScheduledAt:   1735689600000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	// 排期默认60分钟，通知面试官
	assert.Equal(t, 60, repo.evaluations[1].Duration)
	assert.Equal(t, domain.StatusScheduled, repo.evaluations[1].Status)
	require.Len(t, n.sent, 1)
	assert.Contains(t, n.sent[0], "interviewer@mekongtech.com")
}

func TestService_Finalize(t *testing.T) {
	scheduled := domain.Evaluation{
		ID:            1,
		CandidateID:   1,
		InterviewerID: 7,
		Status:        domain.StatusScheduled,
	}
	testCases := []struct {
		name          string
		interviewerID int64
		scores        []domain.QuestionScore
		wantOverall   float64
		wantRec       domain.Recommendation
		wantErr       error
	}{
		{
			name:          "定稿推导approve",
			interviewerID: 7,
			scores: []domain.QuestionScore{
				{QuestionID: 1, Score: 8},
				{QuestionID: 2, Score: 7},
			},
			wantOverall: 7.5,
			wantRec:     domain.RecommendApprove,
		},
		{
			name:          "边界分进review",
			interviewerID: 7,
			scores: []domain.QuestionScore{
				{QuestionID: 1, Score: 5},
			},
			wantOverall: 5,
			wantRec:     domain.RecommendReview,
		},
		{
			name:          "低分reject",
			interviewerID: 7,
			scores: []domain.QuestionScore{
				{QuestionID: 1, Score: 3},
			},
			wantOverall: 3,
			wantRec:     domain.RecommendReject,
		},
		{
			name:          "不是指定面试官",
			interviewerID: 8,
			scores: []domain.QuestionScore{
				{QuestionID: 1, Score: 8},
			},
			wantErr: ErrNotAssignedInterviewer,
		},
		{
			name:          "分数越界",
			interviewerID: 7,
			scores: []domain.QuestionScore{
				{QuestionID: 1, Score: 11},
			},
			wantErr: ErrInvalidScore,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo(scheduled)
			svc, _, p := newTestService(repo)
			e, err := svc.Finalize(context.Background(), 1, tc.interviewerID, tc.scores, "笔记")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.wantOverall, e.OverallScore, 1e-9)
			assert.Equal(t, tc.wantRec, e.Recommendation)
			assert.Equal(t, domain.StatusCompleted, e.Status)
			// 定稿触发一次二面完成流转，带的是已定稿平均分
			require.Len(t, p.step2Means, 1)
			assert.InDelta(t, tc.wantOverall, p.step2Means[0], 1e-9)
		})
	}
}

func TestService_Finalize_Once(t *testing.T) {
	repo := newFakeRepo(domain.Evaluation{
		ID:            1,
		CandidateID:   1,
		InterviewerID: 7,
		Status:        domain.StatusCompleted,
		OverallScore:  8,
	})
	svc, _, p := newTestService(repo)
	_, err := svc.Finalize(context.Background(), 1, 7,
		[]domain.QuestionScore{{QuestionID: 1, Score: 2}}, "")
	assert.ErrorIs(t, err, ErrEvaluationCompleted)
	assert.Empty(t, p.step2Means)
	// 原有结果不被覆盖
	assert.InDelta(t, 8.0, repo.evaluations[1].OverallScore, 1e-9)
}

func TestService_AdvanceToFinal(t *testing.T) {
	completed := func(id int64, score float64) domain.Evaluation {
		return domain.Evaluation{
			ID:            id,
			CandidateID:   1,
			InterviewerID: 7,
			Status:        domain.StatusCompleted,
			OverallScore:  score,
		}
	}
	t.Run("多场评估按平均分推进", func(t *testing.T) {
		repo := newFakeRepo(completed(1, 8), completed(2, 7))
		svc, _, p := newTestService(repo)
		err := svc.AdvanceToFinal(context.Background(), 1, pipeline.SystemActor)
		require.NoError(t, err)
		require.Len(t, p.advanceMeans, 1)
		assert.InDelta(t, 7.5, p.advanceMeans[0], 1e-9)
	})
	t.Run("没有已定稿评估", func(t *testing.T) {
		repo := newFakeRepo(domain.Evaluation{
			ID: 1, CandidateID: 1, InterviewerID: 7, Status: domain.StatusScheduled,
		})
		svc, _, p := newTestService(repo)
		err := svc.AdvanceToFinal(context.Background(), 1, pipeline.SystemActor)
		assert.ErrorIs(t, err, ErrNoCompletedEvaluation)
		assert.Empty(t, p.advanceMeans)
	})
	t.Run("门槛判定透传", func(t *testing.T) {
		repo := newFakeRepo(completed(1, 6))
		svc, _, p := newTestService(repo)
		p.advanceErr = pipeline.ErrNotEligibleForStep3
		err := svc.AdvanceToFinal(context.Background(), 1, pipeline.SystemActor)
		assert.ErrorIs(t, err, pipeline.ErrNotEligibleForStep3)
	})
}

func TestDeriveRecommendation(t *testing.T) {
	assert.Equal(t, domain.RecommendApprove, domain.DeriveRecommendation(7))
	assert.Equal(t, domain.RecommendReview, domain.DeriveRecommendation(6.99))
	assert.Equal(t, domain.RecommendReview, domain.DeriveRecommendation(5))
	assert.Equal(t, domain.RecommendReject, domain.DeriveRecommendation(4.99))
}
