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

package event

const auditEvents = "audit_events"

// AuditEvent 各业务模块在状态流转和特权操作成功后发出，本模块消费后落库。
// Key 是发送方生成的去重键，重复投递靠它挡掉。
type AuditEvent struct {
	Key       string `json:"key"`
	ActorID   int64  `json:"actor_id"`
	ActorRole string `json:"actor_role"`
	Action    string `json:"action"`
	Biz       string `json:"biz"`
	BizID     int64  `json:"biz_id"`
	Detail    string `json:"detail"`
}
