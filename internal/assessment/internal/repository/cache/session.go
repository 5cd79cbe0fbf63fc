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

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"

	"github.com/mekongtech/recruitment/internal/assessment/internal/domain"
)

// 远超任何合理的答题时限，兜底清理没交卷的会话
const sessionExpiration = 24 * time.Hour

var ErrSessionNotFound = errors.New("答题会话缓存未命中")

// SessionCache 进行中的答题会话只活在缓存里，
// 一个候选人同时最多一场。
type SessionCache interface {
	Set(ctx context.Context, sess domain.Session) error
	Get(ctx context.Context, candidateID int64) (domain.Session, error)
	Del(ctx context.Context, candidateID int64) error
}

type sessionECache struct {
	ec ecache.Cache
}

func NewSessionECache(ec ecache.Cache) SessionCache {
	return &sessionECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "assessment:session:",
		},
	}
}

func (c *sessionECache) Set(ctx context.Context, sess domain.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return c.ec.Set(ctx, c.key(sess.CandidateID), string(data), sessionExpiration)
}

func (c *sessionECache) Get(ctx context.Context, candidateID int64) (domain.Session, error) {
	val := c.ec.Get(ctx, c.key(candidateID))
	if val.KeyNotFound() {
		return domain.Session{}, ErrSessionNotFound
	}
	if val.Err != nil {
		return domain.Session{}, val.Err
	}
	var sess domain.Session
	err := json.Unmarshal([]byte(val.Val.(string)), &sess)
	if err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

func (c *sessionECache) Del(ctx context.Context, candidateID int64) error {
	_, err := c.ec.Delete(ctx, c.key(candidateID))
	return err
}

func (c *sessionECache) key(candidateID int64) string {
	return fmt.Sprintf("candidate:%d", candidateID)
}
