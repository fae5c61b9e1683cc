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

package ai

import (
	"fmt"

	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler/record"
	"github.com/gotomicro/ego/core/econf"
)

// InitPlatform llm.platform 决定真正的出口，默认是智谱
func InitPlatform() handler.Handler {
	switch platform := econf.GetString("llm.platform"); platform {
	case "", "zhipu":
		return InitZhipu()
	case "openai":
		return InitOpenAI()
	default:
		panic(fmt.Errorf("未知的 LLM 平台 %s", platform))
	}
}

func InitZhipu() *zhipu.Handler {
	type Config struct {
		APIKey string `yaml:"apikey"`
	}
	var cfg Config
	err := econf.UnmarshalKey("zhipu", &cfg)
	if err != nil {
		panic(err)
	}
	h, err := zhipu.NewHandler(cfg.APIKey)
	if err != nil {
		panic(err)
	}
	return h
}

func InitOpenAI() *openai.Handler {
	type Config struct {
		BaseURL string `yaml:"baseURL"`
		APIKey  string `yaml:"apikey"`
	}
	var cfg Config
	err := econf.UnmarshalKey("openai", &cfg)
	if err != nil {
		panic(err)
	}
	return openai.NewHandler(cfg.BaseURL, cfg.APIKey)
}

// InitCommonHandlers log -> config -> record -> platform
func InitCommonHandlers(log *log.HandlerBuilder,
	cfg *config.HandlerBuilder,
	record *record.HandlerBuilder) []handler.Builder {
	return []handler.Builder{log, cfg, record}
}

func InitRootHandler(common []handler.Builder, platform handler.Handler) handler.Handler {
	return handler.Chain(platform, common...)
}
