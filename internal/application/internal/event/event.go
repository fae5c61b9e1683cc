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

package event

const ResumeAnalysisEventName = "resume_analysis_events"

// ResumeAnalysisEvent 简历上传成功之后发出，异步分析
type ResumeAnalysisEvent struct {
	ApplicationId int64  `json:"applicationId"`
	ResumePath    string `json:"resumePath"`
}

// MessageKey 同一个申请的事件落到同一个分区
func (e ResumeAnalysisEvent) MessageKey() int64 {
	return e.ApplicationId
}
