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

// Actor 触发流转的人。系统自动流转用 SystemActor。
type Actor struct {
	ID   int64
	Role string
}

// SystemActor 自动评分、定时任务这类系统触发
var SystemActor = Actor{ID: 0, Role: "system"}

// Step3Outcome 终面共识结果
type Step3Outcome string

const (
	OutcomeHire         Step3Outcome = "hire"
	OutcomeManualReview Step3Outcome = "manual_review"
	OutcomeReject       Step3Outcome = "reject"
)

func (o Step3Outcome) String() string {
	return string(o)
}
