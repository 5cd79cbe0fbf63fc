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
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mekongtech/recruitment/internal/user/internal/domain"
	"github.com/mekongtech/recruitment/internal/user/internal/repository"
)

var (
	ErrDuplicatedEmail    = repository.ErrDuplicatedEmail
	ErrInvalidCredentials = errors.New("邮箱或密码不正确")
	ErrInvalidRole        = errors.New("非法角色")
)

//go:generate mockgen -source=./service.go -package=usermocks -destination=../../mocks/user.mock.go -typed UserService
type UserService interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (int64, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// 不暴露邮箱是否存在
		return domain.User{}, fmt.Errorf("%w", ErrInvalidCredentials)
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, fmt.Errorf("%w", ErrInvalidCredentials)
	}
	return u, nil
}

func (s *userService) Create(ctx context.Context, u domain.User) (int64, error) {
	if !u.Role.IsValid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidRole, u.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	u.Password = string(hash)
	return s.repo.Create(ctx, u)
}

func (s *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return s.repo.FindById(ctx, id)
}

func (s *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	return s.repo.List(ctx, offset, limit)
}
