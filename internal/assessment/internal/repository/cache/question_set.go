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

const expiration = 24 * time.Hour

var ErrQuestionSetNotFound = errors.New("卷子缓存未命中")

// QuestionSetCache 卷子读多写少，整卷缓存。
// 写入走 SaveQuestionSet 时删除旧值。
type QuestionSetCache interface {
	Set(ctx context.Context, set domain.QuestionSet) error
	Get(ctx context.Context, id int64) (domain.QuestionSet, error)
	Del(ctx context.Context, id int64) error
}

type questionSetECache struct {
	ec ecache.Cache
}

func NewQuestionSetECache(ec ecache.Cache) QuestionSetCache {
	return &questionSetECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "assessment:qset:",
		},
	}
}

func (c *questionSetECache) Set(ctx context.Context, set domain.QuestionSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return c.ec.Set(ctx, c.key(set.ID), string(data), expiration)
}

func (c *questionSetECache) Get(ctx context.Context, id int64) (domain.QuestionSet, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.QuestionSet{}, ErrQuestionSetNotFound
	}
	if val.Err != nil {
		return domain.QuestionSet{}, val.Err
	}
	var set domain.QuestionSet
	err := json.Unmarshal([]byte(val.Val.(string)), &set)
	if err != nil {
		return domain.QuestionSet{}, err
	}
	return set, nil
}

func (c *questionSetECache) Del(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *questionSetECache) key(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
