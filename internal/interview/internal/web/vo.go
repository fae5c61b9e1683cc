// Copyright 2023 ecodeclub
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

package web

import (
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
)

// StartReq 浏览器 start 帧携带的内容
type StartReq struct {
	PronunciationHint string `json:"pronunciationHint"`
}

type StateVO struct {
	State string `json:"state"`
}

type TurnVO struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

func newTurnVO(t domain.Turn) TurnVO {
	return TurnVO{
		Speaker: string(t.Speaker),
		Text:    t.Text,
	}
}

type ErrorVO struct {
	Code int    `json:"code"`
	Kind string `json:"kind"`
	// Retryable 用户重新开始是否可能成功
	Retryable bool   `json:"retryable"`
	Redirect  string `json:"redirect,omitempty"`
}

type EndedVO struct {
	Warnings []string `json:"warnings"`
	// Saved 面试记录是否保存成功
	Saved bool `json:"saved"`
}
