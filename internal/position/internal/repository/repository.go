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

	"github.com/mekongtech/recruitment/internal/position/internal/domain"
	"github.com/mekongtech/recruitment/internal/position/internal/repository/dao"
)

type PositionRepository interface {
	Save(ctx context.Context, p domain.Position) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Position, error)
	List(ctx context.Context, offset, limit int) ([]domain.Position, int64, error)
}

func NewPositionRepository(d dao.PositionDAO) PositionRepository {
	return &positionRepository{dao: d}
}

type positionRepository struct {
	dao dao.PositionDAO
}

func (p *positionRepository) Save(ctx context.Context, pos domain.Position) (int64, error) {
	return p.dao.Save(ctx, p.toEntity(pos))
}

func (p *positionRepository) FindById(ctx context.Context, id int64) (domain.Position, error) {
	res, err := p.dao.FindById(ctx, id)
	if err != nil {
		return domain.Position{}, err
	}
	return p.toDomain(res), nil
}

func (p *positionRepository) List(ctx context.Context, offset, limit int) ([]domain.Position, int64, error) {
	positions, err := p.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := p.dao.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(positions, func(idx int, src dao.Position) domain.Position {
		return p.toDomain(src)
	}), total, nil
}

func (p *positionRepository) toEntity(pos domain.Position) dao.Position {
	return dao.Position{
		Id:                   pos.ID,
		Title:                pos.Title,
		Department:           pos.Department,
		Level:                pos.Level,
		Description:          pos.Description,
		Status:               pos.Status.String(),
		AutoApproveThreshold: pos.Scoring.AutoApproveThreshold,
		ManualReviewMin:      pos.Scoring.ManualReviewMin,
		IqWeight:             pos.Scoring.IQWeight,
		TechWeight:           pos.Scoring.TechWeight,
	}
}

func (p *positionRepository) toDomain(pos dao.Position) domain.Position {
	return domain.Position{
		ID:          pos.Id,
		Title:       pos.Title,
		Department:  pos.Department,
		Level:       pos.Level,
		Description: pos.Description,
		Status:      domain.PositionStatus(pos.Status),
		Scoring: domain.ScoringOverride{
			AutoApproveThreshold: pos.AutoApproveThreshold,
			ManualReviewMin:      pos.ManualReviewMin,
			IQWeight:             pos.IqWeight,
			TechWeight:           pos.TechWeight,
		},
	}
}
