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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLLMRequest_Prompt(t *testing.T) {
	req := LLMRequest{
		Input:  []string{"岗位", "对话"},
		Config: BizConfig{PromptTemplate: "岗位信息：%s\n面试记录：%s"},
	}
	assert.Equal(t, "岗位信息：岗位\n面试记录：对话", req.Prompt())
	assert.Equal(t, 4, req.InputLen())
	// 生成之后不会再变
	req.Config.PromptTemplate = "%s"
	assert.Equal(t, "岗位信息：岗位\n面试记录：对话", req.Prompt())
}

func TestDefaultConfigs(t *testing.T) {
	placeholders := map[string]int{
		BizResumeAnalysis:    1,
		BizInterviewAnalysis: 2,
		BizJobDocument:       1,
	}
	for biz, n := range placeholders {
		cfg, ok := DefaultConfigs[biz]
		assert.True(t, ok, biz)
		assert.Equal(t, biz, cfg.Biz)
		in := make([]string, n)
		req := LLMRequest{Input: in, Config: cfg}
		assert.NotContains(t, req.Prompt(), "%!", biz)
	}
}
