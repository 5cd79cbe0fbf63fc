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

// Status 面试评估记录状态
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// Recommendation 面试官定稿后给出的建议，定稿前为空
type Recommendation string

const (
	RecommendApprove Recommendation = "approve"
	RecommendReview  Recommendation = "review"
	RecommendReject  Recommendation = "reject"
)

func (r Recommendation) String() string {
	return string(r)
}

// DeriveRecommendation 按总分推导建议：7分放行，5分进人工，再低淘汰
func DeriveRecommendation(overall float64) Recommendation {
	switch {
	case overall >= 7:
		return RecommendApprove
	case overall >= 5:
		return RecommendReview
	default:
		return RecommendReject
	}
}

// QuestionScore 面试官对单题的打分，0-10分
type QuestionScore struct {
	QuestionID int64   `json:"questionId"`
	Score      float64 `json:"score"`
}

// Evaluation 一场二面。排期时创建，由指定面试官定稿一次，
// 定稿后 OverallScore 和 Recommendation 不再变化。
type Evaluation struct {
	ID            int64
	CandidateID   int64
	InterviewerID int64
	// ScheduledAt 面试时间，Unix毫秒
	ScheduledAt int64
	// Duration 时长，分钟
	Duration     int
	QuestionIDs  []int64
	Scores       []QuestionScore
	Notes        string
	OverallScore float64
	// Recommendation 定稿前为空串
	Recommendation Recommendation
	Status         Status
	CompletedAt    int64
	Ctime          int64
	Utime          int64
}

// MeanScore 题目打分的算术平均，没有打分按0分算
func MeanScore(scores []QuestionScore) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s.Score
	}
	return sum / float64(len(scores))
}
