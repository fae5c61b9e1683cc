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

package service

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lukasjarosch/go-docx"
)

//go:embed templates/report.docx
var reportTemplate []byte

const notAvailable = "暂无"

func (s *pipelineService) Report(ctx context.Context, id int64) (domain.Report, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Report{}, err
	}
	jobTitle := notAvailable
	jb, err := s.jobs.FindByID(ctx, app.JobId)
	if err != nil {
		// 岗位信息缺失不影响报告
		s.logger.Warn("查询岗位失败", elog.Int64("jobId", app.JobId), elog.FieldErr(err))
	} else {
		jobTitle = jb.Title
	}
	data, err := renderReport(reportPlaceholders(app, jobTitle))
	if err != nil {
		return domain.Report{}, err
	}
	return domain.Report{
		Name: fmt.Sprintf("application_%d_report.docx", app.Id),
		Data: data,
	}, nil
}

func reportPlaceholders(app domain.Application, jobTitle string) docx.PlaceholderMap {
	score := notAvailable
	if app.AssessmentScore != nil {
		score = strconv.Itoa(*app.AssessmentScore)
	}
	return docx.PlaceholderMap{
		"jobTitle":      jobTitle,
		"applicationId": strconv.FormatInt(app.Id, 10),
		"candidateId":   strconv.FormatInt(app.CandidateId, 10),
		"status":        app.Status.String(),
		"analysis":      orNotAvailable(app.AIAnalysis),
		"keyAttributes": orNotAvailable(strings.Join(app.KeyAttributes, "、")),
		"score":         score,
		"feedback":      orNotAvailable(app.InterviewFeedback),
		// word 的一个段落里面换行不生效
		"transcript": orNotAvailable(strings.ReplaceAll(app.ConversationTranscript, "\n", "    ")),
	}
}

func orNotAvailable(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

func renderReport(replaceMap docx.PlaceholderMap) ([]byte, error) {
	doc, err := docx.OpenBytes(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("打开报告模版失败: %w", err)
	}
	defer doc.Close()
	if err = doc.ReplaceAll(replaceMap); err != nil {
		return nil, fmt.Errorf("填充报告失败: %w", err)
	}
	var buf bytes.Buffer
	if err = doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("生成报告失败: %w", err)
	}
	return buf.Bytes(), nil
}
