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

	"github.com/mekongtech/recruitment/internal/candidate/internal/domain"
	"github.com/mekongtech/recruitment/internal/candidate/internal/repository"
)

var (
	ErrDuplicatedCandidate = repository.ErrDuplicatedCandidate
	ErrStatusMismatch      = repository.ErrStatusMismatch
)

//go:generate mockgen -source=./service.go -package=candidatemocks -destination=../../mocks/candidate.mock.go -typed Service
type Service interface {
	Create(ctx context.Context, c domain.Candidate) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Candidate, error)
	List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Candidate, int64, error)
	// UpdateStatus 带前置状态校验的流转，只给 pipeline 模块用
	UpdateStatus(ctx context.Context, id int64, from, to domain.Status, note string) error
	// OverrideStatus 管理员覆盖，只给 pipeline 模块用
	OverrideStatus(ctx context.Context, id int64, to domain.Status, note string) error
}

type service struct {
	repo repository.CandidateRepository
}

func NewService(repo repository.CandidateRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, c domain.Candidate) (int64, error) {
	c.Status = domain.StatusPending
	return s.repo.Create(ctx, c)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Candidate, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Candidate, int64, error) {
	return s.repo.List(ctx, status, offset, limit)
}

func (s *service) UpdateStatus(ctx context.Context, id int64, from, to domain.Status, note string) error {
	return s.repo.UpdateStatus(ctx, id, from, to, note)
}

func (s *service) OverrideStatus(ctx context.Context, id int64, to domain.Status, note string) error {
	return s.repo.OverrideStatus(ctx, id, to, note)
}
