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

type ArtifactKind string

const (
	ArtifactResume    ArtifactKind = "resume"
	ArtifactVideo     ArtifactKind = "video"
	ArtifactInterview ArtifactKind = "interview"
)

// Artifact 每个阶段的产出，只有和 Kind 对应的字段有值
type Artifact struct {
	Kind      ArtifactKind
	Resume    *ResumeArtifact
	Video     *VideoArtifact
	Interview *InterviewArtifact
}

type ResumeArtifact struct {
	URL           string
	Analysis      string
	KeyAttributes []string
}

type VideoArtifact struct {
	URL string
}

type InterviewArtifact struct {
	Transcript string
	Score      *int
	Feedback   string
}

// SubmitResult 阶段提交的结果，Warnings 里面的问题不影响流程继续
type SubmitResult struct {
	Application Application
	Stage       Stage
	Warnings    []string
}

type AnalysisKind string

const (
	AnalysisResume    AnalysisKind = "resume"
	AnalysisInterview AnalysisKind = "interview"
)

// Report 给招聘方下载的评估报告
type Report struct {
	Name string
	Data []byte
}
