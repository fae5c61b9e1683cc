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

package agent

import (
	"context"
	"errors"
	"fmt"
)

type Source string

const (
	SourceHuman     Source = "human"
	SourceAssistant Source = "assistant"
)

type EventType string

const (
	EventTranscript EventType = "transcript"
	EventAudio      EventType = "audio"
)

// Event agent 推送的消息，按照到达顺序
type Event struct {
	Type   EventType
	Source Source
	Text   string
	Audio  []byte
}

// Start 开始会话时发送的内容，agent id 和语音配置由客户端自己补齐
type Start struct {
	Prompt       string
	FirstMessage string
	Variables    map[string]string
}

type Dialer interface {
	Dial(ctx context.Context, start Start) (Conn, error)
}

// Conn 一次会话的连接
type Conn interface {
	// Events 连接断开之后会被关闭
	Events() <-chan Event
	SendAudio(chunk []byte) error
	// Err 连接断开的原因，正常断开或者本地关闭的时候是 nil
	Err() error
	Close() error
}

// ConfigurationError 缺少或者错误的凭证，需要运维修改配置，重试没有意义
type ConfigurationError struct {
	Cause error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("agent: 配置错误 %v", e.Cause)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// TransientError 网络、超时、服务端错误，用户可以重新开始
type TransientError struct {
	Cause error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("agent: 连接失败 %v", e.Cause)
}

func (e *TransientError) Unwrap() error {
	return e.Cause
}

var (
	ErrMissingCredentials = errors.New("agent: 没有配置 agent id 或者 api key")
	ErrUnauthorized       = errors.New("agent: 凭证无效")
)

func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

func IsTransientError(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
