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

package domain

import "time"

// Stage 凭证对应的环节，1 是笔试，2 是技术面试
type Stage uint8

const (
	StageAssessment Stage = 1
	StageInterview  Stage = 2
)

func (s Stage) IsValid() bool {
	return s == StageAssessment || s == StageInterview
}

// Status 凭证状态。inactive 是被新凭证顶掉或被管理员吊销，
// expired 是清理任务标出来的过期态。
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusExpired  Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// Credential 候选人的访问凭证。明文密钥只在签发那一刻返回一次，
// 库里只有 bcrypt 哈希。一个候选人一个环节至多一条 active 记录。
type Credential struct {
	ID          int64
	CandidateID int64
	// LinkID 对外暴露的链接标识，短uuid，不泄露自增主键
	LinkID     string
	SecretHash string
	Stage      Stage
	IssuedAt   int64
	ExpiresAt  int64
	Status     Status
	// FailedAttempts 只有密钥猜错才累加，过期和锁定的尝试不算
	FailedAttempts int
	// AutoExtended 周末顺延标记，保证扫描任务重跑不会二次顺延
	AutoExtended   bool
	ExtensionCount int
	// Reminder24hSent / Reminder3hSent 每档提醒至多发一次
	Reminder24hSent bool
	Reminder3hSent  bool
	LastUsedAt      int64
	LastUsedIP      string
	Ctime           int64
	Utime           int64
}

func (c Credential) Expired(now time.Time) bool {
	return c.Status == StatusExpired || now.UnixMilli() > c.ExpiresAt
}

func (c Credential) Locked(maxAttempts int) bool {
	return c.FailedAttempts >= maxAttempts
}

// ExpiresOnWeekend 到期时间落在周五、周六或周日
func (c Credential) ExpiresOnWeekend() bool {
	switch time.UnixMilli(c.ExpiresAt).Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}
