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

package ioc

import (
	"github.com/ecodeclub/hireflow/config"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

// InitRealtimeConfig 启动的时候读取一次，之后注入到 agent 客户端
func InitRealtimeConfig() config.RealtimeConfig {
	var cfg config.RealtimeConfig
	err := econf.UnmarshalKey("realtime", &cfg)
	if err != nil {
		panic(err)
	}
	if !cfg.Valid() {
		// 不阻止启动，开始面试的时候会返回配置错误
		elog.DefaultLogger.Error("没有配置实时面试的 agent id 或者 api key")
	}
	return cfg
}
