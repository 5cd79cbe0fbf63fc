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

	"github.com/ecodeclub/ekit/slice"

	"github.com/mekongtech/recruitment/internal/executive/internal/domain"
	"github.com/mekongtech/recruitment/internal/executive/internal/repository/dao"
)

var (
	ErrRecordNotFound     = dao.ErrRecordNotFound
	ErrDuplicatedDecision = dao.ErrDuplicatedDecision
	ErrVersionMismatch    = dao.ErrVersionMismatch
)

type DecisionRepository interface {
	Create(ctx context.Context, d domain.Decision) (int64, error)
	FindByCandidate(ctx context.Context, candidateID int64) (domain.Decision, error)
	List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Decision, error)
	Update(ctx context.Context, d domain.Decision) error
}

type decisionRepository struct {
	dao dao.DecisionDAO
}

func NewDecisionRepository(d dao.DecisionDAO) DecisionRepository {
	return &decisionRepository{dao: d}
}

func (r *decisionRepository) Create(ctx context.Context, d domain.Decision) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(d))
}

func (r *decisionRepository) FindByCandidate(ctx context.Context, candidateID int64) (domain.Decision, error) {
	entity, err := r.dao.FindByCandidate(ctx, candidateID)
	if err != nil {
		return domain.Decision{}, err
	}
	return r.toDomain(entity), nil
}

func (r *decisionRepository) List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Decision, error) {
	entities, err := r.dao.List(ctx, string(status), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, e dao.Decision) domain.Decision {
		return r.toDomain(e)
	}), nil
}

func (r *decisionRepository) Update(ctx context.Context, d domain.Decision) error {
	return r.dao.Update(ctx, r.toEntity(d))
}

func (r *decisionRepository) toEntity(d domain.Decision) dao.Decision {
	return dao.Decision{
		Id:          d.ID,
		CandidateId: d.CandidateID,

		CtoId:              d.CTO.EvaluatorID,
		CtoTechnicalScore:  d.CTO.TechnicalScore,
		CtoCulturalScore:   d.CTO.CulturalScore,
		CtoLeadershipScore: d.CTO.LeadershipScore,
		CtoScore:           d.CTO.WeightedScore,
		CtoRecommendation:  string(d.CTO.Recommendation),
		CtoNotes:           d.CTO.Notes,
		CtoEvaluatedAt:     d.CTO.EvaluatedAt,

		CeoId:              d.CEO.EvaluatorID,
		CeoTechnicalScore:  d.CEO.TechnicalScore,
		CeoCulturalScore:   d.CEO.CulturalScore,
		CeoLeadershipScore: d.CEO.LeadershipScore,
		CeoScore:           d.CEO.WeightedScore,
		CeoRecommendation:  string(d.CEO.Recommendation),
		CeoNotes:           d.CEO.Notes,
		CeoEvaluatedAt:     d.CEO.EvaluatedAt,

		Status:        string(d.Status),
		FinalScore:    d.FinalScore,
		FinalDecision: string(d.FinalDecision),
		CompletedAt:   d.CompletedAt,

		CtoCompensationApproved: d.CTO.CompensationApproved,
		CtoCompensationNotes:    d.CTO.CompensationNotes,
		CeoCompensationApproved: d.CEO.CompensationApproved,
		CeoCompensationNotes:    d.CEO.CompensationNotes,
		CompensationStatus:      string(d.CompensationStatus),
		CompensationApprovedAt:  d.CompensationApprovedAt,

		Version: d.Version,
	}
}

func (r *decisionRepository) toDomain(e dao.Decision) domain.Decision {
	return domain.Decision{
		ID:          e.Id,
		CandidateID: e.CandidateId,
		CTO: domain.Slot{
			EvaluatorID:          e.CtoId,
			TechnicalScore:       e.CtoTechnicalScore,
			CulturalScore:        e.CtoCulturalScore,
			LeadershipScore:      e.CtoLeadershipScore,
			WeightedScore:        e.CtoScore,
			Recommendation:       domain.Recommendation(e.CtoRecommendation),
			Notes:                e.CtoNotes,
			EvaluatedAt:          e.CtoEvaluatedAt,
			CompensationApproved: e.CtoCompensationApproved,
			CompensationNotes:    e.CtoCompensationNotes,
		},
		CEO: domain.Slot{
			EvaluatorID:          e.CeoId,
			TechnicalScore:       e.CeoTechnicalScore,
			CulturalScore:        e.CeoCulturalScore,
			LeadershipScore:      e.CeoLeadershipScore,
			WeightedScore:        e.CeoScore,
			Recommendation:       domain.Recommendation(e.CeoRecommendation),
			Notes:                e.CeoNotes,
			EvaluatedAt:          e.CeoEvaluatedAt,
			CompensationApproved: e.CeoCompensationApproved,
			CompensationNotes:    e.CeoCompensationNotes,
		},
		Status:                 domain.Status(e.Status),
		FinalScore:             e.FinalScore,
		FinalDecision:          domain.FinalDecision(e.FinalDecision),
		CompletedAt:            e.CompletedAt,
		CompensationStatus:     domain.CompensationStatus(e.CompensationStatus),
		CompensationApprovedAt: e.CompensationApprovedAt,
		Version:                e.Version,
		Ctime:                  e.Ctime,
		Utime:                  e.Utime,
	}
}
