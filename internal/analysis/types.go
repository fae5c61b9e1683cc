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

package analysis

import (
	"github.com/ecodeclub/hireflow/internal/analysis/internal/domain"
	"github.com/ecodeclub/hireflow/internal/analysis/internal/extract"
	"github.com/ecodeclub/hireflow/internal/analysis/internal/service"
	"github.com/ecodeclub/hireflow/internal/analysis/internal/web"
)

type Gateway = service.Gateway
type Handler = web.Handler

type ResumeAnalysis = domain.ResumeAnalysis
type InterviewAssessment = domain.InterviewAssessment
type JobDocument = domain.JobDocument

const (
	MimePDF  = extract.MimePDF
	MimeDOC  = extract.MimeDOC
	MimeDOCX = extract.MimeDOCX
	MimeText = extract.MimeText
)

var (
	ErrEmptyTranscript = service.ErrEmptyTranscript
	ErrInvalidAnswer   = service.ErrInvalidAnswer
)

// DetectContentType 根据文件内容判断类型
func DetectContentType(data []byte) string {
	return extract.Detect(data)
}
