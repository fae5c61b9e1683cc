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
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/hireflow/internal/ai"
	"github.com/ecodeclub/hireflow/internal/analysis/internal/domain"
	"github.com/ecodeclub/hireflow/internal/analysis/internal/extract"
	"github.com/ecodeclub/hireflow/internal/job"
	"github.com/ecodeclub/hireflow/internal/storage"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var ErrEmptyTranscript = errors.New("面试记录为空")

// 提取出来的文字最多交给 LLM 这么多字符，剩下的交给配置里的 MaxInput 兜底
const maxDocumentRunes = 20000

//go:generate mockgen -source=./gateway.go -destination=../../mocks/gateway.mock.go -package=analysismocks Gateway
type Gateway interface {
	// AnalyzeResume 重复调用会得到新的结果，调用方负责覆盖
	AnalyzeResume(ctx context.Context, resumePath string, applicationId int64) (domain.ResumeAnalysis, error)
	AnalyzeInterview(ctx context.Context, applicationId, jobId int64, transcript string) (domain.InterviewAssessment, error)
	ProcessJobDocument(ctx context.Context, filePath string) (domain.JobDocument, error)
}

type llmGateway struct {
	llm     ai.LLMService
	storage storage.Service
	jobs    job.Service
	logger  *elog.Component
}

func NewLLMGateway(llm ai.LLMService, st storage.Service, jobs job.Service) Gateway {
	return &llmGateway{
		llm:     llm,
		storage: st,
		jobs:    jobs,
		logger:  elog.DefaultLogger.With(elog.FieldComponentName("analysis.Gateway")),
	}
}

func (g *llmGateway) AnalyzeResume(ctx context.Context, resumePath string, applicationId int64) (domain.ResumeAnalysis, error) {
	text, err := g.documentText(ctx, resumePath)
	if err != nil {
		return domain.ResumeAnalysis{}, err
	}
	resp, err := g.llm.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizResumeAnalysis,
		Uid:   applicationId,
		Tid:   shortuuid.New(),
		Input: []string{text},
	})
	if err != nil {
		return domain.ResumeAnalysis{}, err
	}
	var answer struct {
		Analysis      string          `json:"analysis"`
		KeyAttributes flexibleStrings `json:"keyAttributes"`
	}
	if err = parseAnswer(resp.Answer, &answer); err != nil {
		return domain.ResumeAnalysis{}, err
	}
	analysis := strings.TrimSpace(answer.Analysis)
	if analysis == "" {
		return domain.ResumeAnalysis{}, fmt.Errorf("%w: 缺少 analysis", ErrInvalidAnswer)
	}
	return domain.ResumeAnalysis{
		Success:       true,
		Analysis:      analysis,
		KeyAttributes: answer.KeyAttributes,
	}, nil
}

func (g *llmGateway) AnalyzeInterview(ctx context.Context, applicationId, jobId int64, transcript string) (domain.InterviewAssessment, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return domain.InterviewAssessment{}, ErrEmptyTranscript
	}
	j, err := g.jobs.FindByID(ctx, jobId)
	if err != nil {
		return domain.InterviewAssessment{}, fmt.Errorf("查询岗位失败 %d: %w", jobId, err)
	}
	resp, err := g.llm.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizInterviewAnalysis,
		Uid:   applicationId,
		Tid:   shortuuid.New(),
		Input: []string{j.Summary(), transcript},
	})
	if err != nil {
		return domain.InterviewAssessment{}, err
	}
	var answer struct {
		Score    *flexibleNumber `json:"score"`
		Feedback string          `json:"feedback"`
	}
	if err = parseAnswer(resp.Answer, &answer); err != nil {
		return domain.InterviewAssessment{}, err
	}
	if answer.Score == nil {
		return domain.InterviewAssessment{}, fmt.Errorf("%w: 缺少 score", ErrInvalidAnswer)
	}
	score := domain.ClampScore(float64(*answer.Score))
	if float64(score) != float64(*answer.Score) {
		g.logger.Warn("面试评分不是 0-100 之间的整数",
			elog.Int64("applicationId", applicationId),
			elog.Any("score", float64(*answer.Score)))
	}
	return domain.InterviewAssessment{
		Score:    score,
		Feedback: strings.TrimSpace(answer.Feedback),
	}, nil
}

func (g *llmGateway) ProcessJobDocument(ctx context.Context, filePath string) (domain.JobDocument, error) {
	text, err := g.documentText(ctx, filePath)
	if err != nil {
		return domain.JobDocument{}, err
	}
	resp, err := g.llm.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizJobDocument,
		Tid:   shortuuid.New(),
		Input: []string{text},
	})
	if err != nil {
		return domain.JobDocument{}, err
	}
	var answer struct {
		Description             string          `json:"description"`
		EssentialAttributes     flexibleStrings `json:"essentialAttributes"`
		GoodCandidateAttributes string          `json:"goodCandidateAttributes"`
		BadCandidateAttributes  string          `json:"badCandidateAttributes"`
	}
	if err = parseAnswer(resp.Answer, &answer); err != nil {
		return domain.JobDocument{}, err
	}
	return domain.JobDocument{
		Description:             strings.TrimSpace(answer.Description),
		EssentialAttributes:     answer.EssentialAttributes,
		GoodCandidateAttributes: strings.TrimSpace(answer.GoodCandidateAttributes),
		BadCandidateAttributes:  strings.TrimSpace(answer.BadCandidateAttributes),
	}, nil
}

func (g *llmGateway) documentText(ctx context.Context, path string) (string, error) {
	data, err := g.storage.Download(ctx, path)
	if err != nil {
		return "", fmt.Errorf("下载文档失败 %s: %w", path, err)
	}
	text, err := extract.Text(data, maxDocumentRunes)
	if err != nil {
		return "", fmt.Errorf("提取文档文字失败 %s: %w", path, err)
	}
	return text, nil
}
