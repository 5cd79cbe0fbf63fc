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

// Role 定义了账号的有效角色，使用自定义类型以获得类型安全。
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleHR          Role = "hr"
	RoleInterviewer Role = "interviewer"
	RoleCTO         Role = "cto"
	RoleCEO         Role = "ceo"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleInterviewer, RoleCTO, RoleCEO:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// IsExecutive CTO 和 CEO 才能提交终面评估和审批薪酬包
func (r Role) IsExecutive() bool {
	return r == RoleCTO || r == RoleCEO
}

// Capability 角色能力。闭合枚举，路由和服务层的权限判断都以这张表为准。
type Capability string

const (
	CapabilityManageUsers         Capability = "manage_users"
	CapabilityManagePositions     Capability = "manage_positions"
	CapabilityManageCandidates    Capability = "manage_candidates"
	CapabilityIssueCredentials    Capability = "issue_credentials"
	CapabilityConductInterviews   Capability = "conduct_interviews"
	CapabilityExecutiveDecision   Capability = "executive_decision"
	CapabilityResolveManualReview Capability = "resolve_manual_review"
	CapabilityViewAudit           Capability = "view_audit"
)

var roleCapabilities = map[Role][]Capability{
	RoleAdmin: {
		CapabilityManageUsers,
		CapabilityManagePositions,
		CapabilityManageCandidates,
		CapabilityIssueCredentials,
		CapabilityResolveManualReview,
		CapabilityViewAudit,
	},
	RoleHR: {
		CapabilityManagePositions,
		CapabilityManageCandidates,
		CapabilityIssueCredentials,
	},
	RoleInterviewer: {
		CapabilityConductInterviews,
	},
	RoleCTO: {
		CapabilityConductInterviews,
		CapabilityExecutiveDecision,
	},
	RoleCEO: {
		CapabilityExecutiveDecision,
	},
}

func (r Role) HasCapability(c Capability) bool {
	for _, capability := range roleCapabilities[r] {
		if capability == c {
			return true
		}
	}
	return false
}
