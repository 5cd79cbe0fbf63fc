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

package repository

import (
	"context"
	"encoding/json"

	"github.com/mekongtech/recruitment/internal/interview/internal/domain"
	"github.com/mekongtech/recruitment/internal/interview/internal/repository/dao"
)

var ErrAlreadyCompleted = dao.ErrAlreadyCompleted

type EvaluationRepository interface {
	Create(ctx context.Context, e domain.Evaluation) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Evaluation, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Evaluation, error)
	ListByInterviewer(ctx context.Context, interviewerID int64) ([]domain.Evaluation, error)
	Finalize(ctx context.Context, e domain.Evaluation) error
	MeanCompletedScore(ctx context.Context, candidateID int64) (float64, int64, error)
}

type evaluationRepository struct {
	dao dao.EvaluationDAO
}

func NewEvaluationRepository(d dao.EvaluationDAO) EvaluationRepository {
	return &evaluationRepository{dao: d}
}

func (r *evaluationRepository) Create(ctx context.Context, e domain.Evaluation) (int64, error) {
	questionIds, err := json.Marshal(e.QuestionIDs)
	if err != nil {
		return 0, err
	}
	return r.dao.Insert(ctx, dao.Evaluation{
		CandidateId:   e.CandidateID,
		InterviewerId: e.InterviewerID,
		ScheduledAt:   e.ScheduledAt,
		Duration:      e.Duration,
		QuestionIds:   string(questionIds),
		Status:        domain.StatusScheduled.String(),
	})
}

func (r *evaluationRepository) FindById(ctx context.Context, id int64) (domain.Evaluation, error) {
	e, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Evaluation{}, err
	}
	return r.toDomain(e)
}

func (r *evaluationRepository) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Evaluation, error) {
	entities, err := r.dao.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return r.toDomains(entities)
}

func (r *evaluationRepository) ListByInterviewer(ctx context.Context, interviewerID int64) ([]domain.Evaluation, error) {
	entities, err := r.dao.ListByInterviewer(ctx, interviewerID)
	if err != nil {
		return nil, err
	}
	return r.toDomains(entities)
}

func (r *evaluationRepository) Finalize(ctx context.Context, e domain.Evaluation) error {
	scores, err := json.Marshal(e.Scores)
	if err != nil {
		return err
	}
	return r.dao.Finalize(ctx, e.ID, string(scores), e.Notes,
		e.OverallScore, e.Recommendation.String())
}

func (r *evaluationRepository) MeanCompletedScore(ctx context.Context, candidateID int64) (float64, int64, error) {
	return r.dao.MeanCompletedScore(ctx, candidateID)
}

func (r *evaluationRepository) toDomains(entities []dao.Evaluation) ([]domain.Evaluation, error) {
	res := make([]domain.Evaluation, 0, len(entities))
	for _, e := range entities {
		d, err := r.toDomain(e)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}

func (r *evaluationRepository) toDomain(e dao.Evaluation) (domain.Evaluation, error) {
	var questionIds []int64
	if e.QuestionIds != "" {
		if err := json.Unmarshal([]byte(e.QuestionIds), &questionIds); err != nil {
			return domain.Evaluation{}, err
		}
	}
	var scores []domain.QuestionScore
	if e.Scores != "" {
		if err := json.Unmarshal([]byte(e.Scores), &scores); err != nil {
			return domain.Evaluation{}, err
		}
	}
	return domain.Evaluation{
		ID:             e.Id,
		CandidateID:    e.CandidateId,
		InterviewerID:  e.InterviewerId,
		ScheduledAt:    e.ScheduledAt,
		Duration:       e.Duration,
		QuestionIDs:    questionIds,
		Scores:         scores,
		Notes:          e.Notes,
		OverallScore:   e.OverallScore,
		Recommendation: domain.Recommendation(e.Recommendation),
		Status:         domain.Status(e.Status),
		CompletedAt:    e.CompletedAt,
		Ctime:          e.Ctime,
		Utime:          e.Utime,
	}, nil
}
