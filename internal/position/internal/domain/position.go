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

// PositionStatus 岗位状态
type PositionStatus string

const (
	StatusOpen   PositionStatus = "open"
	StatusClosed PositionStatus = "closed"
)

func (s PositionStatus) String() string {
	return string(s)
}

// Position 在招岗位。Scoring 里的阈值和权重是岗位级覆盖，
// 0 值表示沿用全局配置。
type Position struct {
	ID          int64
	Title       string
	Department  string
	Level       string
	Description string
	Status      PositionStatus
	Scoring     ScoringOverride
}

// ScoringOverride 笔试评分的岗位级覆盖项
type ScoringOverride struct {
	AutoApproveThreshold float64
	ManualReviewMin      float64
	IQWeight             float64
	TechWeight           float64
}
