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

	"github.com/mekongtech/recruitment/internal/position/internal/domain"
	"github.com/mekongtech/recruitment/internal/position/internal/repository"
)

//go:generate mockgen -source=./service.go -package=positionmocks -destination=../../mocks/position.mock.go -typed PositionService
type PositionService interface {
	Save(ctx context.Context, p domain.Position) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Position, error)
	List(ctx context.Context, offset, limit int) ([]domain.Position, int64, error)
}

type positionService struct {
	repo repository.PositionRepository
}

func NewPositionService(repo repository.PositionRepository) PositionService {
	return &positionService{repo: repo}
}

func (s *positionService) Save(ctx context.Context, p domain.Position) (int64, error) {
	if p.Status == "" {
		p.Status = domain.StatusOpen
	}
	return s.repo.Save(ctx, p)
}

func (s *positionService) Detail(ctx context.Context, id int64) (domain.Position, error) {
	return s.repo.FindById(ctx, id)
}

func (s *positionService) List(ctx context.Context, offset, limit int) ([]domain.Position, int64, error) {
	return s.repo.List(ctx, offset, limit)
}
