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

// Role 参与终面决策的高管角色
type Role string

const (
	RoleCTO Role = "cto"
	RoleCEO Role = "ceo"
)

func (r Role) IsValid() bool {
	return r == RoleCTO || r == RoleCEO
}

// WeightedScore 按角色权重合成单侧得分。
// CTO 技术0.6/文化0.4，CEO 技术0.4/文化0.6，领导力只记录不参与加权。
func (r Role) WeightedScore(technical, cultural float64) float64 {
	if r == RoleCTO {
		return technical*0.6 + cultural*0.4
	}
	return technical*0.4 + cultural*0.6
}

// Recommendation 单侧高管的建议
type Recommendation string

const (
	RecommendHire   Recommendation = "hire"
	RecommendReject Recommendation = "reject"
	RecommendReview Recommendation = "review"
)

func (r Recommendation) IsValid() bool {
	return r == RecommendHire || r == RecommendReject || r == RecommendReview
}

// FinalDecision 双方齐了之后的共识结果
type FinalDecision string

const (
	FinalHire         FinalDecision = "hire"
	FinalManualReview FinalDecision = "manual_review"
	FinalReject       FinalDecision = "reject"
)

func (f FinalDecision) String() string {
	return string(f)
}

// Status 决策记录状态
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// CompensationStatus 薪酬包审批状态，双高管都批了才是 approved
type CompensationStatus string

const (
	CompensationPending  CompensationStatus = "pending"
	CompensationApproved CompensationStatus = "approved"
)

// Slot 单侧高管的提交。EvaluatorID 为 0 表示还没提交。
type Slot struct {
	EvaluatorID     int64
	TechnicalScore  float64
	CulturalScore   float64
	LeadershipScore float64
	// WeightedScore 按角色权重合成，0-10
	WeightedScore  float64
	Recommendation Recommendation
	Notes          string
	EvaluatedAt    int64
	// CompensationApproved 薪酬包单侧审批
	CompensationApproved bool
	CompensationNotes    string
}

func (s Slot) Submitted() bool {
	return s.EvaluatorID != 0
}

// Decision 一个候选人唯一一条终面决策记录
type Decision struct {
	ID          int64
	CandidateID int64
	CTO         Slot
	CEO         Slot
	Status      Status
	// FinalScore 双方齐了之后才有值，是两侧加权分的算术平均
	FinalScore             float64
	FinalDecision          FinalDecision
	CompletedAt            int64
	CompensationStatus     CompensationStatus
	CompensationApprovedAt int64
	// Version 乐观锁，双方并发提交靠它裁决
	Version int64
	Ctime   int64
	Utime   int64
}

func (d *Decision) Slot(role Role) *Slot {
	if role == RoleCTO {
		return &d.CTO
	}
	return &d.CEO
}

func (d *Decision) BothSubmitted() bool {
	return d.CTO.Submitted() && d.CEO.Submitted()
}

// Finalize 双方齐了就出共识：均分达7且双方都建议录用才录用，
// 达5进人工复核，否则淘汰。提交顺序不影响结果。
func (d *Decision) Finalize(now int64) {
	d.FinalScore = (d.CTO.WeightedScore + d.CEO.WeightedScore) / 2
	switch {
	case d.FinalScore >= 7 &&
		d.CTO.Recommendation == RecommendHire &&
		d.CEO.Recommendation == RecommendHire:
		d.FinalDecision = FinalHire
	case d.FinalScore >= 5:
		d.FinalDecision = FinalManualReview
	default:
		d.FinalDecision = FinalReject
	}
	d.Status = StatusCompleted
	d.CompletedAt = now
}
