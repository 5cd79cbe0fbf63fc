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

// Status 候选人在招聘流水线上的状态，使用自定义类型以获得类型安全。
type Status string

const (
	// StatusPending 初始状态，等待笔试
	StatusPending Status = "pending"
	// StatusStep1Passed 笔试通过，等待技术面试
	StatusStep1Passed Status = "step1_passed"
	// StatusStep1ManualReview 笔试分数落在人工复核区间
	StatusStep1ManualReview Status = "step1_manual_review"
	// StatusStep1Rejected 笔试未通过，终态
	StatusStep1Rejected Status = "step1_rejected"
	// StatusStep2Evaluated 技术面试评估完成
	StatusStep2Evaluated Status = "step2_evaluated"
	// StatusStep3Pending 进入终面，等待双高管决策
	StatusStep3Pending Status = "step3_pending"
	// StatusHired 录用，终态
	StatusHired Status = "hired"
	// StatusRejected 淘汰，终态
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusStep1Passed, StatusStep1ManualReview,
		StatusStep1Rejected, StatusStep2Evaluated, StatusStep3Pending,
		StatusHired, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal 终态不允许常规流转，只有 admin 覆盖能动
func (s Status) IsTerminal() bool {
	switch s {
	case StatusStep1Rejected, StatusHired, StatusRejected:
		return true
	default:
		return false
	}
}

// transitions 合法的常规流转。覆盖操作不走这张表。
var transitions = map[Status][]Status{
	StatusPending:           {StatusStep1Passed, StatusStep1ManualReview, StatusStep1Rejected},
	StatusStep1ManualReview: {StatusStep1Passed, StatusStep1Rejected},
	StatusStep1Passed:       {StatusStep2Evaluated},
	StatusStep2Evaluated:    {StatusStep3Pending, StatusRejected},
	StatusStep3Pending:      {StatusHired, StatusRejected},
}

// CanTransitionTo 判断 s -> target 是不是一次合法的常规流转
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Candidate 候选人档案。Status 由 pipeline 模块统一流转，
// 这里只负责存取。
type Candidate struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	PositionID int64
	Status     Status
	StatusNote string
	Ctime      int64
	Utime      int64
}
