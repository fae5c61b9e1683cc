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

const (
	BizResumeAnalysis    = "resume_analysis"
	BizInterviewAnalysis = "interview_analysis"
	BizJobDocument       = "job_document"
)

const defaultModel = "glm-4-flash"

// DefaultConfigs 数据库里没有配置的时候使用
var DefaultConfigs = map[string]BizConfig{
	BizResumeAnalysis: {
		Biz:          BizResumeAnalysis,
		Model:        defaultModel,
		Temperature:  0.2,
		MaxInput:     30000,
		SystemPrompt: "你是一名资深招聘顾问，只输出 JSON，不要输出其它内容。",
		PromptTemplate: `请分析下面这份简历。
输出 JSON：{"analysis": "对候选人的整体评价", "keyAttributes": ["候选人的关键特质"]}
简历内容：
%s`,
	},
	BizInterviewAnalysis: {
		Biz:          BizInterviewAnalysis,
		Model:        defaultModel,
		Temperature:  0.2,
		MaxInput:     60000,
		SystemPrompt: "你是一名严格的面试官，只输出 JSON，不要输出其它内容。",
		PromptTemplate: `下面是岗位信息和一次面试的完整对话记录。
输出 JSON：{"score": 0 到 100 之间的整数, "feedback": "面试评价"}
岗位信息：
%s
面试记录：
%s`,
	},
	BizJobDocument: {
		Biz:          BizJobDocument,
		Model:        defaultModel,
		Temperature:  0.1,
		MaxInput:     30000,
		SystemPrompt: "你负责把岗位文档整理成结构化数据，只输出 JSON，不要输出其它内容。",
		PromptTemplate: `请整理下面的岗位文档。
输出 JSON：{"description": "岗位描述", "essentialAttributes": ["必备条件"], "goodCandidateAttributes": "优秀候选人的特点", "badCandidateAttributes": "不合适候选人的特点"}
岗位文档：
%s`,
	},
}
