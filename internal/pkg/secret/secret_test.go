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

package secret

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	testCases := []struct {
		name    string
		length  int
		wantLen int
	}{
		{
			name:    "默认长度",
			length:  0,
			wantLen: DefaultLength,
		},
		{
			name:    "指定长度",
			length:  20,
			wantLen: 20,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Generate(tc.length)
			require.NoError(t, err)
			assert.Len(t, res, tc.wantLen)
			// 不含易混淆字符
			for _, c := range "0O1lIo" {
				assert.NotContains(t, res, string(c))
			}
		})
	}
}

func TestGenerate_Random(t *testing.T) {
	// 连续生成不应该相同
	first, err := Generate(DefaultLength)
	require.NoError(t, err)
	second, err := Generate(DefaultLength)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	for _, c := range first {
		assert.True(t, strings.ContainsRune(alphabet, c))
	}
}
