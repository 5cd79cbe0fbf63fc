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

	"github.com/mekongtech/recruitment/internal/user/internal/domain"
	"github.com/mekongtech/recruitment/internal/user/internal/repository/dao"
)

var ErrDuplicatedEmail = dao.ErrDuplicatedEmail

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
}

func NewUserRepository(d dao.UserDAO) UserRepository {
	return &userRepository{dao: d}
}

type userRepository struct {
	dao dao.UserDAO
}

func (u *userRepository) Create(ctx context.Context, user domain.User) (int64, error) {
	return u.dao.Insert(ctx, u.toEntity(user))
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	res, err := u.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	return u.toDomain(res), nil
}

func (u *userRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	res, err := u.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return u.toDomain(res), nil
}

func (u *userRepository) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	users, err := u.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := u.dao.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(users, func(idx int, src dao.User) domain.User {
		return u.toDomain(src)
	}), total, nil
}

func (u *userRepository) toEntity(user domain.User) dao.User {
	return dao.User{
		Id:       user.Id,
		Email:    user.Email,
		Name:     user.Name,
		Password: user.Password,
		Role:     user.Role.String(),
	}
}

func (u *userRepository) toDomain(user dao.User) domain.User {
	return domain.User{
		Id:       user.Id,
		Email:    user.Email,
		Name:     user.Name,
		Password: user.Password,
		Role:     domain.Role(user.Role),
	}
}
