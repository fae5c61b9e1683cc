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

package config

import "time"

// RealtimeConfig 实时面试 agent 的配置，启动的时候读取一次
type RealtimeConfig struct {
	// Endpoint 为空的时候使用默认地址
	Endpoint string    `yaml:"endpoint"`
	AgentID  string    `yaml:"agentId"`
	APIKey   string    `yaml:"apiKey"`
	VoiceID  string    `yaml:"voiceId"`
	STT      STTConfig `yaml:"stt"`
	// HandshakeTimeout 建立连接的超时时间
	HandshakeTimeout time.Duration `yaml:"handshakeTimeout"`
	// LeaseTTL 同一个申请只能有一个会话，租约的过期时间
	LeaseTTL time.Duration `yaml:"leaseTTL"`
}

type STTConfig struct {
	Language string `yaml:"language"`
	// AudioFormat 上行音频格式，和麦克风参数保持一致
	AudioFormat string `yaml:"audioFormat"`
}

// Valid agent id 和 api key 缺一不可
func (c RealtimeConfig) Valid() bool {
	return c.AgentID != "" && c.APIKey != ""
}
