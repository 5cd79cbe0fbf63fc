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

	"github.com/mekongtech/recruitment/internal/candidate/internal/domain"
	"github.com/mekongtech/recruitment/internal/candidate/internal/repository/dao"
)

var (
	ErrDuplicatedCandidate = dao.ErrDuplicatedCandidate
	ErrStatusMismatch      = dao.ErrStatusMismatch
)

type CandidateRepository interface {
	Create(ctx context.Context, c domain.Candidate) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Candidate, error)
	List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Candidate, int64, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.Status, note string) error
	OverrideStatus(ctx context.Context, id int64, to domain.Status, note string) error
}

func NewCandidateRepository(d dao.CandidateDAO) CandidateRepository {
	return &candidateRepository{dao: d}
}

type candidateRepository struct {
	dao dao.CandidateDAO
}

func (c *candidateRepository) Create(ctx context.Context, candidate domain.Candidate) (int64, error) {
	return c.dao.Insert(ctx, dao.Candidate{
		Name:       candidate.Name,
		Email:      candidate.Email,
		Phone:      candidate.Phone,
		PositionId: candidate.PositionID,
		Status:     candidate.Status.String(),
		StatusNote: candidate.StatusNote,
	})
}

func (c *candidateRepository) FindById(ctx context.Context, id int64) (domain.Candidate, error) {
	res, err := c.dao.FindById(ctx, id)
	if err != nil {
		return domain.Candidate{}, err
	}
	return c.toDomain(res), nil
}

func (c *candidateRepository) List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Candidate, int64, error) {
	candidates, err := c.dao.List(ctx, status.String(), offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := c.dao.Count(ctx, status.String())
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(candidates, func(idx int, src dao.Candidate) domain.Candidate {
		return c.toDomain(src)
	}), total, nil
}

func (c *candidateRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.Status, note string) error {
	return c.dao.UpdateStatus(ctx, id, from.String(), to.String(), note)
}

func (c *candidateRepository) OverrideStatus(ctx context.Context, id int64, to domain.Status, note string) error {
	return c.dao.OverrideStatus(ctx, id, to.String(), note)
}

func (c *candidateRepository) toDomain(candidate dao.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:         candidate.Id,
		Name:       candidate.Name,
		Email:      candidate.Email,
		Phone:      candidate.Phone,
		PositionID: candidate.PositionId,
		Status:     domain.Status(candidate.Status),
		StatusNote: candidate.StatusNote,
		Ctime:      candidate.Ctime,
		Utime:      candidate.Utime,
	}
}
