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
	"strings"
)

type Status string

const (
	StatusInProgress         Status = "in_progress"
	StatusResumeUploaded     Status = "resume_uploaded"
	StatusResumeAnalyzed     Status = "resume_analyzed"
	StatusVideoUploaded      Status = "video_uploaded"
	StatusVideoAnalyzed      Status = "video_analyzed"
	StatusInterviewStarted   Status = "interview_started"
	StatusInterviewCompleted Status = "interview_completed"
)

func (s Status) String() string {
	return string(s)
}

type Stage string

const (
	StageResume    Stage = "resume"
	StageVideo     Stage = "video"
	StageInterview Stage = "interview"
)

// 这些状态说明视频已经交过了
var videoDoneStatuses = []Status{
	StatusVideoUploaded,
	StatusVideoAnalyzed,
	StatusInterviewStarted,
	StatusInterviewCompleted,
}

type Application struct {
	Id          int64
	JobId       int64
	CandidateId int64
	Status      Status
	ResumePath  string
	VideoPath   string
	// 简历分析结果
	AIAnalysis             string
	KeyAttributes          []string
	ConversationTranscript string
	// nil 表示还没有评分
	AssessmentScore   *int
	InterviewFeedback string
	Ctime             int64
	Utime             int64
}

func (a Application) HasResume() bool {
	return a.ResumePath != ""
}

// ResolveInitialStage 页面加载的时候决定候选人从哪一步开始
func ResolveInitialStage(app *Application) Stage {
	if app == nil || !app.HasResume() {
		return StageResume
	}
	if app.VideoPath != "" {
		return StageInterview
	}
	for _, s := range videoDoneStatuses {
		if app.Status == s {
			return StageInterview
		}
	}
	return StageVideo
}

// File 候选人提交的文件
type File struct {
	Name string
	// 客户端声明的类型，只作为参考
	ContentType string
	Data        []byte
}

func (f File) Empty() bool {
	return len(f.Data) == 0
}

// BaseContentType 去掉参数部分，例如 video/webm;codecs=vp8 -> video/webm
func BaseContentType(ct string) string {
	if idx := strings.IndexByte(ct, ';'); idx >= 0 {
		ct = ct[:idx]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

// Transcript 面试记录，一行一轮发言
func Transcript(lines []string) string {
	return strings.Join(lines, "\n")
}
