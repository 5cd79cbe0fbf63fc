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

// Session 候选人一次进行中的答题。开始时间、剩余题目、
// 已作答内容都收在这一个值对象里，交卷后即销毁。
type Session struct {
	CandidateID int64 `json:"candidateId"`
	SetID       int64 `json:"setId"`
	StartedAt   int64 `json:"startedAt"`
	// TimeLimit 秒数，0表示不限时
	TimeLimit int64    `json:"timeLimit"`
	Remaining []int64  `json:"remaining"`
	Answers   []Answer `json:"answers"`
}

func NewSession(candidateID int64, set QuestionSet, now time.Time) Session {
	remaining := make([]int64, 0, len(set.Questions))
	for _, q := range set.Questions {
		remaining = append(remaining, q.ID)
	}
	return Session{
		CandidateID: candidateID,
		SetID:       set.ID,
		StartedAt:   now.UnixMilli(),
		TimeLimit:   int64(set.TimeLimitMinutes) * 60,
		Remaining:   remaining,
	}
}

// SaveAnswers 合并作答，同一题后答的覆盖先答的
func (s *Session) SaveAnswers(answers []Answer) {
	for _, a := range answers {
		replaced := false
		for i := range s.Answers {
			if s.Answers[i].QuestionID == a.QuestionID {
				s.Answers[i] = a
				replaced = true
				break
			}
		}
		if !replaced {
			s.Answers = append(s.Answers, a)
		}
		for i, id := range s.Remaining {
			if id == a.QuestionID {
				s.Remaining = append(s.Remaining[:i], s.Remaining[i+1:]...)
				break
			}
		}
	}
}

// Deadline 不限时返回零值
func (s Session) Deadline() time.Time {
	if s.TimeLimit <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(s.StartedAt).Add(time.Duration(s.TimeLimit) * time.Second)
}

func (s Session) TimedOut(now time.Time) bool {
	ddl := s.Deadline()
	return !ddl.IsZero() && now.After(ddl)
}
