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

// QuestionType 题目类型
type QuestionType string

const (
	TypeChoice QuestionType = "choice"
	TypeText   QuestionType = "text"
)

// Category 题目所属评分类别
type Category string

const (
	CategoryIQ   Category = "iq"
	CategoryTech Category = "technical"
)

func (c Category) String() string {
	return string(c)
}

// Question 笔试题目。Keywords 只对 text 题生效，
// CorrectAnswer 只对 choice 题生效。
type Question struct {
	ID            int64
	SetID         int64
	Type          QuestionType
	Category      Category
	Text          string
	Options       []string
	CorrectAnswer string
	Keywords      []string
	Points        float64
}

// QuestionSet 一套笔试卷子，按岗位组卷
type QuestionSet struct {
	ID         int64
	PositionID int64
	Name       string
	// TimeLimitMinutes 答题时限，0表示不限时。
	// 超时由会话层强制交卷，评分本身不看时间。
	TimeLimitMinutes int
	Questions        []Question
}

// Answer 候选人的单题作答
type Answer struct {
	QuestionID int64
	Content    string
}
