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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_HasCapability(t *testing.T) {
	testCases := []struct {
		name       string
		role       Role
		capability Capability
		want       bool
	}{
		{
			name:       "admin可以管理账号",
			role:       RoleAdmin,
			capability: CapabilityManageUsers,
			want:       true,
		},
		{
			name:       "admin不能做终面决策",
			role:       RoleAdmin,
			capability: CapabilityExecutiveDecision,
			want:       false,
		},
		{
			name:       "hr可以发放凭证",
			role:       RoleHR,
			capability: CapabilityIssueCredentials,
			want:       true,
		},
		{
			name:       "hr不能面试",
			role:       RoleHR,
			capability: CapabilityConductInterviews,
			want:       false,
		},
		{
			name:       "cto既能面试也能做终面决策",
			role:       RoleCTO,
			capability: CapabilityExecutiveDecision,
			want:       true,
		},
		{
			name:       "ceo不参与二面",
			role:       RoleCEO,
			capability: CapabilityConductInterviews,
			want:       false,
		},
		{
			name:       "未知角色没有任何能力",
			role:       Role("intern"),
			capability: CapabilityViewAudit,
			want:       false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.role.HasCapability(tc.capability))
		})
	}
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleHR.IsValid())
	assert.True(t, RoleCTO.IsValid())
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("candidate").IsValid())
}
