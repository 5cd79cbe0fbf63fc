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

	"github.com/mekongtech/recruitment/internal/audit/internal/domain"
	"github.com/mekongtech/recruitment/internal/audit/internal/repository"
)

var ErrDuplicatedRecord = repository.ErrDuplicatedRecord

//go:generate mockgen -source=./service.go -package=auditmocks -destination=../../mocks/audit.mock.go -typed Service
type Service interface {
	Record(ctx context.Context, r domain.Record) (int64, error)
	List(ctx context.Context, biz string, bizID int64, offset, limit int) ([]domain.Record, int64, error)
}

type service struct {
	repo repository.AuditRepository
}

func NewService(repo repository.AuditRepository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, r domain.Record) (int64, error) {
	return s.repo.Create(ctx, r)
}

func (s *service) List(ctx context.Context, biz string, bizID int64, offset, limit int) ([]domain.Record, int64, error) {
	records, err := s.repo.FindByBiz(ctx, biz, bizID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByBiz(ctx, biz, bizID)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
