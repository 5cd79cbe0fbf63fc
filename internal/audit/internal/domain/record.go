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

// Record 审计记录。招聘流程里所有成功的状态流转和特权操作都会落一条，
// 事后追溯"谁在什么时候把候选人推到了哪一步"全靠它。
type Record struct {
	ID        int64
	Key       string
	ActorID   int64
	ActorRole string
	Action    string
	Biz       string
	BizID     int64
	Detail    string
	Ctime     int64
}
