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

// Classification 笔试加权总分的路由结果
type Classification string

const (
	ClassificationPassed       Classification = "passed"
	ClassificationManualReview Classification = "manual_review"
	ClassificationFailed       Classification = "failed"
)

func (c Classification) String() string {
	return string(c)
}

// QuestionScore 单题得分明细
type QuestionScore struct {
	QuestionID int64    `json:"questionId"`
	Category   Category `json:"category"`
	Awarded    float64  `json:"awarded"`
	Possible   float64  `json:"possible"`
}

// CategoryScore 类别得分。Percentage 是 0-100 的百分比。
type CategoryScore struct {
	Category   Category `json:"category"`
	Awarded    float64  `json:"awarded"`
	Possible   float64  `json:"possible"`
	Percentage float64  `json:"percentage"`
}

// Result 一次笔试的完整评分结果
type Result struct {
	ID             int64
	CandidateID    int64
	SetID          int64
	Overall        float64
	Classification Classification
	Categories     []CategoryScore
	Questions      []QuestionScore
	Ctime          int64
}

// Statistics 笔试整体统计
type Statistics struct {
	Total        int64
	Passed       int64
	ManualReview int64
	Failed       int64
	AvgOverall   float64
}
