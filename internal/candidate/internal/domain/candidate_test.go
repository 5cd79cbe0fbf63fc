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

func TestStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name   string
		from   Status
		to     Status
		want   bool
	}{
		{
			name: "笔试通过",
			from: StatusPending,
			to:   StatusStep1Passed,
			want: true,
		},
		{
			name: "笔试进入人工复核",
			from: StatusPending,
			to:   StatusStep1ManualReview,
			want: true,
		},
		{
			name: "人工复核放行",
			from: StatusStep1ManualReview,
			to:   StatusStep1Passed,
			want: true,
		},
		{
			name: "不能跳过二面直接进终面",
			from: StatusStep1Passed,
			to:   StatusStep3Pending,
			want: false,
		},
		{
			name: "二面达标进终面",
			from: StatusStep2Evaluated,
			to:   StatusStep3Pending,
			want: true,
		},
		{
			name: "终面录用",
			from: StatusStep3Pending,
			to:   StatusHired,
			want: true,
		},
		{
			name: "终态不再流转",
			from: StatusHired,
			to:   StatusRejected,
			want: false,
		},
		{
			name: "笔试拒绝是终态",
			from: StatusStep1Rejected,
			to:   StatusStep1Passed,
			want: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusHired.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusStep1Rejected.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusStep3Pending.IsTerminal())
}
