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
	"crypto/rand"
	"math/big"
)

// alphabet 去掉了容易混淆的字符 0 O o 1 l I
const alphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// DefaultLength 访问凭证默认长度
const DefaultLength = 12

// Generate 生成一个长度为 length 的随机凭证，凭证会通过邮件发给候选人，
// 所以字符表排除了肉眼难以分辨的字符。
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	res := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range res {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		res[i] = alphabet[n.Int64()]
	}
	return string(res), nil
}
