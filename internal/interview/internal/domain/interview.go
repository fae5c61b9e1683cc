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

package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// State 会话生命周期 idle -> connecting -> active -> ended
type State string

const (
	StateIdle       State = "idle"
	StateConnecting State = "connecting"
	StateActive     State = "active"
	StateEnded      State = "ended"
)

type Speaker string

const (
	SpeakerHuman     Speaker = "human"
	SpeakerAssistant Speaker = "assistant"
)

type Turn struct {
	Speaker Speaker
	Text    string
}

// Line 写入面试记录的一行
func (t Turn) Line() string {
	if t.Speaker == SpeakerHuman {
		return "Human: " + t.Text
	}
	return "AI: " + t.Text
}

// Context 开始面试时发给 agent 的上下文，只有这一种组装方式
type Context struct {
	JobTitle           string
	JobDescription     string
	Requirements       []string
	CandidateFirstName string
	// PronunciationHint 候选人名字的读音提示
	PronunciationHint string
	KeyAttributes     []string
}

// Rendered 渲染之后的 prompt 和开场白
type Rendered struct {
	Prompt       string
	FirstMessage string
}

func (c Context) Render() (Rendered, error) {
	doc := contextDocument{
		Job: jobDocument{
			Title:        c.JobTitle,
			Description:  c.JobDescription,
			Requirements: nonNil(c.Requirements),
		},
		Candidate: candidateDocument{
			FirstName:         c.CandidateFirstName,
			PronunciationHint: c.PronunciationHint,
			KeyAttributes:     nonNil(c.KeyAttributes),
		},
	}
	val, err := json.Marshal(doc)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{
		Prompt:       string(val),
		FirstMessage: c.firstMessage(),
	}, nil
}

func (c Context) firstMessage() string {
	name := strings.TrimSpace(c.CandidateFirstName)
	if name == "" {
		return fmt.Sprintf("Hello, thank you for applying for the %s position. Shall we get started?", c.JobTitle)
	}
	hint := strings.TrimSpace(c.PronunciationHint)
	if hint != "" {
		name = fmt.Sprintf("%s (%s)", name, hint)
	}
	return fmt.Sprintf("Hello %s, thank you for applying for the %s position. Shall we get started?", name, c.JobTitle)
}

type contextDocument struct {
	Job       jobDocument       `json:"job"`
	Candidate candidateDocument `json:"candidate"`
}

type jobDocument struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

type candidateDocument struct {
	FirstName         string   `json:"firstName"`
	PronunciationHint string   `json:"pronunciationHint,omitempty"`
	KeyAttributes     []string `json:"keyAttributes"`
}

func nonNil(src []string) []string {
	if src == nil {
		return []string{}
	}
	return src
}

type EventType string

const (
	EventState EventType = "state"
	EventTurn  EventType = "turn"
	EventAudio EventType = "audio"
	EventError EventType = "error"
	EventEnded EventType = "ended"
)

// Event 会话推给订阅方的事件
type Event struct {
	Type  EventType
	State State
	Turn  Turn
	Audio []byte
	Err   error
	// Warnings 只有 ended 事件有
	Warnings []string
}
