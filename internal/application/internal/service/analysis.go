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
	"time"

	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/event"
	"github.com/gotomicro/ego/core/elog"
)

var errResumeNotAnalyzed = errors.New("简历分析没有成功")

func (s *pipelineService) ApplyResumeAnalysis(ctx context.Context, id int64, resumePath string) error {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if app.ResumePath != resumePath {
		s.logger.Info("简历已经被替换，忽略旧的分析任务",
			elog.Int64("applicationId", id),
			elog.String("path", resumePath))
		return nil
	}
	res, err := s.gateway.AnalyzeResume(ctx, resumePath, id)
	if err == nil && !res.Success {
		err = errResumeNotAnalyzed
	}
	if err != nil {
		s.metrics.analysis(string(domain.AnalysisResume), resultFailed)
		return err
	}
	if err = s.repo.SaveResumeAnalysis(ctx, id, res.Analysis, res.KeyAttributes); err != nil {
		s.metrics.analysis(string(domain.AnalysisResume), resultFailed)
		return err
	}
	s.metrics.analysis(string(domain.AnalysisResume), resultSuccess)
	return s.repo.MarkAnalyzed(ctx, id, domain.ArtifactResume)
}

func (s *pipelineService) ReassessInterview(ctx context.Context, app domain.Application) error {
	if app.ConversationTranscript == "" {
		return nil
	}
	return s.assess(ctx, app.Id, app.JobId, app.ConversationTranscript)
}

func (s *pipelineService) assess(ctx context.Context, id, jobId int64, transcript string) error {
	res, err := s.gateway.AnalyzeInterview(ctx, id, jobId, transcript)
	if err != nil {
		s.metrics.analysis(string(domain.AnalysisInterview), resultFailed)
		return err
	}
	err = s.repo.SaveAssessment(ctx, id, res.Score, res.Feedback)
	if err != nil {
		s.metrics.analysis(string(domain.AnalysisInterview), resultFailed)
		return err
	}
	s.metrics.analysis(string(domain.AnalysisInterview), resultSuccess)
	return nil
}

func (s *pipelineService) FindPendingAnalysis(ctx context.Context, kind domain.AnalysisKind,
	before time.Time, limit int) ([]domain.Application, error) {
	return s.repo.FindPendingAnalysis(ctx, kind, before, limit)
}

func (s *pipelineService) RepublishResumeAnalysis(ctx context.Context, app domain.Application) error {
	if !app.HasResume() {
		return nil
	}
	return s.producer.Produce(ctx, event.ResumeAnalysisEvent{
		ApplicationId: app.Id,
		ResumePath:    app.ResumePath,
	})
}
