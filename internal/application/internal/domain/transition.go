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

// 状态只能往前走，每个目标状态只允许从这些状态写入
// 重新上传简历或者视频的时候路径会被替换，但是状态不会倒退
var predecessors = map[Status][]Status{
	StatusResumeUploaded: {
		StatusInProgress, StatusResumeUploaded, StatusResumeAnalyzed,
	},
	StatusResumeAnalyzed: {
		StatusResumeUploaded,
	},
	StatusVideoUploaded: {
		StatusInProgress, StatusResumeUploaded, StatusResumeAnalyzed,
		StatusVideoUploaded, StatusVideoAnalyzed,
	},
	StatusVideoAnalyzed: {
		StatusVideoUploaded,
	},
	StatusInterviewStarted: {
		StatusInProgress, StatusResumeUploaded, StatusResumeAnalyzed,
		StatusVideoUploaded, StatusVideoAnalyzed, StatusInterviewStarted,
	},
	StatusInterviewCompleted: {
		StatusInProgress, StatusResumeUploaded, StatusResumeAnalyzed,
		StatusVideoUploaded, StatusVideoAnalyzed, StatusInterviewStarted,
		StatusInterviewCompleted,
	},
}

// Predecessors 允许写入 to 的前置状态
func Predecessors(to Status) []Status {
	return predecessors[to]
}

func CanTransit(from, to Status) bool {
	for _, s := range predecessors[to] {
		if s == from {
			return true
		}
	}
	return false
}
