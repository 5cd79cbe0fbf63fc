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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

var ErrDuplicatedEmail = errors.New("邮箱已被占用")

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	List(ctx context.Context, offset, limit int) ([]User, error)
	Count(ctx context.Context) (int64, error)
}

type userGORMDAO struct {
	db *egorm.Component
}

func NewUserGORMDAO(db *egorm.Component) UserDAO {
	return &userGORMDAO{db: db}
}

func (g *userGORMDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime, u.Utime = now, now
	err := g.db.WithContext(ctx).Create(&u).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicatedEmail
			}
		}
		return 0, err
	}
	return u.Id, nil
}

func (g *userGORMDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := g.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (g *userGORMDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := g.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (g *userGORMDAO) List(ctx context.Context, offset, limit int) ([]User, error) {
	var res []User
	err := g.db.WithContext(ctx).Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *userGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&User{}).Count(&res).Error
	return res, err
}

type User struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:账号自增ID"`
	Email    string `gorm:"type:varchar(128);not null;uniqueIndex:unq_email;comment:登录邮箱"`
	Name     string `gorm:"type:varchar(128);not null;comment:姓名"`
	Password string `gorm:"type:varchar(128);not null;comment:bcrypt哈希"`
	Role     string `gorm:"type:varchar(32);not null;comment:角色 admin/hr/interviewer/cto/ceo"`
	Ctime    int64
	Utime    int64
}
