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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
)

type LLMRequest struct {
	Biz string
	// 发起调用的主体，招聘流程里面一般是申请 ID
	Uid int64
	// 请求id
	Tid string
	// 用户的输入
	Input []string
	// 业务相关的配置
	Config BizConfig

	prompt string
}

// Prompt 将 Input 代入 PromptTemplate
func (req *LLMRequest) Prompt() string {
	if req.prompt == "" {
		args := slice.Map(req.Input, func(idx int, src string) any {
			return src
		})
		req.prompt = fmt.Sprintf(req.Config.PromptTemplate, args...)
	}
	return req.prompt
}

// InputLen 所有输入的字符数
func (req *LLMRequest) InputLen() int {
	total := 0
	for _, in := range req.Input {
		total += len([]rune(in))
	}
	return total
}

type LLMResponse struct {
	// 花费的token
	Tokens int64
	// 花费的金额，分为单位
	Amount int64
	Answer string
}

type BizConfig struct {
	Id    int64
	Biz   string
	Model string
	// 多少分钱/1000 token
	Price int64

	Temperature float64
	TopP        float64

	SystemPrompt string
	// 允许的最长输入，按字符数计算
	MaxInput int
	// 使用 %s 占位，按顺序代入 Input
	PromptTemplate string
	Utime          int64
}

type LLMRecord struct {
	Id             int64
	Tid            string
	Uid            int64
	Biz            string
	Tokens         int64
	Amount         int64
	Input          []string
	Status         RecordStatus
	PromptTemplate string
	Answer         string
	Ctime          int64
	Utime          int64
}

type RecordStatus uint8

func (g RecordStatus) ToUint8() uint8 {
	return uint8(g)
}

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)
