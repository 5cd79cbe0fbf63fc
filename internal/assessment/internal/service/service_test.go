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

	"github.com/mekongtech/recruitment/internal/assessment/internal/domain"
	"github.com/mekongtech/recruitment/internal/assessment/internal/repository"
	"github.com/mekongtech/recruitment/internal/assessment/internal/repository/dao"
	"github.com/mekongtech/recruitment/internal/candidate"
	"github.com/mekongtech/recruitment/internal/pipeline"
	"github.com/mekongtech/recruitment/internal/position"
)

type fakeRepo struct {
	sets     map[int64]domain.QuestionSet
	results  map[int64]domain.Result
	sessions map[int64]domain.Session
}

func newFakeRepo(sets ...domain.QuestionSet) *fakeRepo {
	f := &fakeRepo{
		sets:     map[int64]domain.QuestionSet{},
		results:  map[int64]domain.Result{},
		sessions: map[int64]domain.Session{},
	}
	for _, s := range sets {
		f.sets[s.ID] = s
	}
	return f
}

func (f *fakeRepo) SaveQuestionSet(_ context.Context, set domain.QuestionSet) (int64, error) {
	if set.ID == 0 {
		set.ID = int64(len(f.sets) + 1)
	}
	f.sets[set.ID] = set
	return set.ID, nil
}

func (f *fakeRepo) QuestionSetById(_ context.Context, id int64) (domain.QuestionSet, error) {
	set, ok := f.sets[id]
	if !ok {
		return domain.QuestionSet{}, dao.ErrRecordNotFound
	}
	return set, nil
}

func (f *fakeRepo) ListQuestionSets(_ context.Context, _ int64, _, _ int) ([]domain.QuestionSet, error) {
	return nil, nil
}

func (f *fakeRepo) SaveResult(_ context.Context, r domain.Result) (int64, error) {
	if _, ok := f.results[r.CandidateID]; ok {
		return 0, dao.ErrDuplicatedResult
	}
	r.ID = int64(len(f.results) + 1)
	f.results[r.CandidateID] = r
	return r.ID, nil
}

func (f *fakeRepo) ResultByCandidate(_ context.Context, candidateID int64) (domain.Result, error) {
	r, ok := f.results[candidateID]
	if !ok {
		return domain.Result{}, dao.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRepo) Statistics(_ context.Context) (domain.Statistics, error) {
	return domain.Statistics{Total: int64(len(f.results))}, nil
}

func (f *fakeRepo) SaveSession(_ context.Context, sess domain.Session) error {
	f.sessions[sess.CandidateID] = sess
	return nil
}

func (f *fakeRepo) SessionByCandidate(_ context.Context, candidateID int64) (domain.Session, error) {
	sess, ok := f.sessions[candidateID]
	if !ok {
		return domain.Session{}, repository.ErrSessionNotFound
	}
	return sess, nil
}

func (f *fakeRepo) DelSession(_ context.Context, candidateID int64) error {
	delete(f.sessions, candidateID)
	return nil
}

type fakeCandidateSvc struct {
	c candidate.Candidate
}

func (f *fakeCandidateSvc) Create(_ context.Context, c candidate.Candidate) (int64, error) {
	return c.ID, nil
}

func (f *fakeCandidateSvc) Detail(_ context.Context, _ int64) (candidate.Candidate, error) {
	return f.c, nil
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

type fakePositionSvc struct {
	p position.Position
}

func (f *fakePositionSvc) Save(_ context.Context, p position.Position) (int64, error) {
	return p.ID, nil
}

func (f *fakePositionSvc) Detail(_ context.Context, _ int64) (position.Position, error) {
	return f.p, nil
}

func (f *fakePositionSvc) List(_ context.Context, _, _ int) ([]position.Position, int64, error) {
	return nil, 0, nil
}

type fakePipelineSvc struct {
	completed []pipeline.Step1Result
}

func (f *fakePipelineSvc) CompleteStep1(_ context.Context, _ int64, res pipeline.Step1Result, _ float64) error {
	f.completed = append(f.completed, res)
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

func (f *fakePipelineSvc) CompleteStep3(_ context.Context, _ int64, _ pipeline.Step3Outcome, _ float64) error {
	return nil
}

func (f *fakePipelineSvc) Override(_ context.Context, _ int64, _ candidate.Status, _ pipeline.Actor, _ string) error {
	return nil
}

func testQuestionSet() domain.QuestionSet {
	return domain.QuestionSet{
		ID:         1,
		PositionID: 10,
		Name:       "后端工程师笔试",
		Questions: []domain.Question{
			{ID: 1, Type: domain.TypeChoice, Category: domain.CategoryIQ, CorrectAnswer: "A", Points: 100},
			{ID: 2, Type: domain.TypeChoice, Category: domain.CategoryTech, CorrectAnswer: "B", Points: 100},
		},
	}
}

func newTestService(t *testing.T, repo *fakeRepo, p position.Position) (Service, *fakePipelineSvc) {
	t.Helper()
	pipe := &fakePipelineSvc{}
	svc, err := NewService(repo,
		&fakeCandidateSvc{c: candidate.Candidate{ID: 1, PositionID: 10, Status: candidate.StatusPending}},
		&fakePositionSvc{p: p},
		pipe,
		defaultConfig())
	require.NoError(t, err)
	return svc, pipe
}

func TestService_Submit(t *testing.T) {
	testCases := []struct {
		name     string
		answers  []domain.Answer
		wantPct  float64
		wantRes  pipeline.Step1Result
		wantType domain.Classification
	}{
		{
			name: "全对自动通过",
			answers: []domain.Answer{
				{QuestionID: 1, Content: "A"},
				{QuestionID: 2, Content: "B"},
			},
			wantPct:  100,
			wantRes:  pipeline.Step1Passed,
			wantType: domain.ClassificationPassed,
		},
		{
			name: "只对技术题进人工复核",
			answers: []domain.Answer{
				{QuestionID: 2, Content: "B"},
			},
			// 0.4*0 + 0.6*100 = 60
			wantPct:  60,
			wantRes:  pipeline.Step1ManualReview,
			wantType: domain.ClassificationManualReview,
		},
		{
			name:     "空白卷淘汰",
			answers:  nil,
			wantPct:  0,
			wantRes:  pipeline.Step1Failed,
			wantType: domain.ClassificationFailed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, pipe := newTestService(t, newFakeRepo(testQuestionSet()), position.Position{ID: 10})
			res, err := svc.Submit(context.Background(), 1, 1, tc.answers)
			require.NoError(t, err)
			assert.InDelta(t, tc.wantPct, res.Overall, 1e-9)
			assert.Equal(t, tc.wantType, res.Classification)
			require.Len(t, pipe.completed, 1)
			assert.Equal(t, tc.wantRes, pipe.completed[0])
		})
	}
}

func TestService_Submit_Duplicate(t *testing.T) {
	svc, pipe := newTestService(t, newFakeRepo(testQuestionSet()), position.Position{ID: 10})
	answers := []domain.Answer{{QuestionID: 1, Content: "A"}}
	_, err := svc.Submit(context.Background(), 1, 1, answers)
	require.NoError(t, err)

	// 重复交卷落库失败，不重复触发流水线
	_, err = svc.Submit(context.Background(), 1, 1, answers)
	assert.ErrorIs(t, err, ErrDuplicateSubmission)
	assert.Len(t, pipe.completed, 1)
}

func TestService_Submit_SetNotFound(t *testing.T) {
	svc, _ := newTestService(t, newFakeRepo(), position.Position{ID: 10})
	_, err := svc.Submit(context.Background(), 1, 99, nil)
	assert.ErrorIs(t, err, ErrQuestionSetNotFound)
}

func TestService_Submit_PositionOverride(t *testing.T) {
	// 岗位把通过阈值提到80，权重反转成 0.6/0.4
	p := position.Position{
		ID: 10,
		Scoring: position.ScoringOverride{
			AutoApproveThreshold: 80,
			ManualReviewMin:      60,
			IQWeight:             0.6,
			TechWeight:           0.4,
		},
	}
	svc, _ := newTestService(t, newFakeRepo(testQuestionSet()), p)
	// 只对IQ题：0.6*100 = 60，在岗位阈值下是人工复核
	res, err := svc.Submit(context.Background(), 1, 1, []domain.Answer{
		{QuestionID: 1, Content: "A"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 60, res.Overall, 1e-9)
	assert.Equal(t, domain.ClassificationManualReview, res.Classification)
}

func TestService_Session(t *testing.T) {
	start := time.UnixMilli(1700000000000)
	repo := newFakeRepo(testQuestionSet())
	svc, _ := newTestService(t, repo, position.Position{ID: 10})
	svc.(*service).nowFunc = func() time.Time { return start }
	ctx := context.Background()

	_, sess, err := svc.StartPaper(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, start.UnixMilli(), sess.StartedAt)
	assert.ElementsMatch(t, []int64{1, 2}, sess.Remaining)

	// 中途保存一题
	sess, err = svc.SaveProgress(ctx, 1, []domain.Answer{{QuestionID: 1, Content: "A"}})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, sess.Remaining)

	// 刷新考卷不重置计时，进度还在
	svc.(*service).nowFunc = func() time.Time { return start.Add(10 * time.Minute) }
	_, sess, err = svc.StartPaper(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, start.UnixMilli(), sess.StartedAt)
	assert.Len(t, sess.Answers, 1)

	// 交卷只带第二题，第一题从会话里合并进来
	res, err := svc.Submit(ctx, 1, 1, []domain.Answer{{QuestionID: 2, Content: "B"}})
	require.NoError(t, err)
	assert.InDelta(t, 100, res.Overall, 1e-9)
	assert.Empty(t, repo.sessions)
}

func TestService_SaveProgress_NoSession(t *testing.T) {
	svc, _ := newTestService(t, newFakeRepo(testQuestionSet()), position.Position{ID: 10})
	_, err := svc.SaveProgress(context.Background(), 1, []domain.Answer{{QuestionID: 1, Content: "A"}})
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestService_Submit_AfterDeadline(t *testing.T) {
	start := time.UnixMilli(1700000000000)
	set := testQuestionSet()
	set.TimeLimitMinutes = 30
	repo := newFakeRepo(set)
	svc, pipe := newTestService(t, repo, position.Position{ID: 10})
	svc.(*service).nowFunc = func() time.Time { return start }
	ctx := context.Background()

	_, sess, err := svc.StartPaper(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, sess.TimedOut(start.Add(31*time.Minute)))

	sess, err = svc.SaveProgress(ctx, 1, []domain.Answer{{QuestionID: 1, Content: "A"}})
	require.NoError(t, err)

	// 超时后的强制交卷照常评分，没答的题按零分
	svc.(*service).nowFunc = func() time.Time { return start.Add(31 * time.Minute) }
	res, err := svc.Submit(ctx, 1, 1, nil)
	require.NoError(t, err)
	assert.InDelta(t, 40, res.Overall, 1e-9)
	assert.Len(t, pipe.completed, 1)
}
