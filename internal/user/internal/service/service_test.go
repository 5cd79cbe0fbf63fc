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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mekongtech/recruitment/internal/user/internal/domain"
)

type fakeUserRepo struct {
	users  map[string]domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, u domain.User) (int64, error) {
	if _, ok := f.users[u.Email]; ok {
		return 0, ErrDuplicatedEmail
	}
	u.Id = f.nextID
	f.nextID++
	f.users[u.Email] = u
	return u.Id, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return domain.User{}, errors.New("record not found")
	}
	return u, nil
}

func (f *fakeUserRepo) FindById(_ context.Context, id int64) (domain.User, error) {
	for _, u := range f.users {
		if u.Id == id {
			return u, nil
		}
	}
	return domain.User{}, errors.New("record not found")
}

func (f *fakeUserRepo) List(_ context.Context, offset, limit int) ([]domain.User, int64, error) {
	res := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		res = append(res, u)
	}
	return res, int64(len(res)), nil
}

func TestUserService_Login(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), domain.User{
		Email:    "hr@mekongtech.com",
		Name:     "招聘HR",
		Password: string(hash),
		Role:     domain.RoleHR,
	})
	require.NoError(t, err)
	svc := NewUserService(repo)

	testCases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "登录成功",
			email:    "hr@mekongtech.com",
			password: "correct-password",
		},
		{
			name:     "密码错误",
			email:    "hr@mekongtech.com",
			password: "wrong-password",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "邮箱不存在",
			email:    "nobody@mekongtech.com",
			password: "correct-password",
			wantErr:  ErrInvalidCredentials,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := svc.Login(context.Background(), tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.RoleHR, u.Role)
		})
	}
}

func TestUserService_Create(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	id, err := svc.Create(context.Background(), domain.User{
		Email:    "cto@mekongtech.com",
		Name:     "CTO",
		Password: "init-password",
		Role:     domain.RoleCTO,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	// 密码不落明文
	u, err := svc.Login(context.Background(), "cto@mekongtech.com", "init-password")
	require.NoError(t, err)
	assert.NotEqual(t, "init-password", u.Password)

	_, err = svc.Create(context.Background(), domain.User{
		Email:    "x@mekongtech.com",
		Password: "pwd",
		Role:     domain.Role("candidate"),
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}
