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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"golang.org/x/sync/errgroup"
)

var _ ecron.NamedJob = (*RedriveAnalysisJob)(nil)

// RedriveAnalysisJob 补偿丢失的简历分析和面试评估
// 每次只处理一批，失败的记录留给下一次
type RedriveAnalysisJob struct {
	svc         service.Service
	delay       time.Duration
	limit       int
	concurrency int
	logger      *elog.Component
}

func NewRedriveAnalysisJob(svc service.Service, delay time.Duration, limit int) *RedriveAnalysisJob {
	return &RedriveAnalysisJob{
		svc:         svc,
		delay:       delay,
		limit:       limit,
		concurrency: 4,
		logger:      elog.DefaultLogger.With(elog.FieldComponentName("application.RedriveAnalysisJob")),
	}
}

func (j *RedriveAnalysisJob) Name() string {
	return "RedriveAnalysisJob"
}

func (j *RedriveAnalysisJob) Run(ctx context.Context) error {
	before := time.Now().Add(-j.delay)
	if err := j.redriveResume(ctx, before); err != nil {
		return err
	}
	return j.redriveInterview(ctx, before)
}

func (j *RedriveAnalysisJob) redriveResume(ctx context.Context, before time.Time) error {
	apps, err := j.svc.FindPendingAnalysis(ctx, domain.AnalysisResume, before, j.limit)
	if err != nil {
		return fmt.Errorf("查询待分析的简历失败: %w", err)
	}
	for _, app := range apps {
		if err = j.svc.RepublishResumeAnalysis(ctx, app); err != nil {
			j.logger.Error("补发简历分析事件失败", elog.Int64("applicationId", app.Id), elog.FieldErr(err))
		}
	}
	return nil
}

func (j *RedriveAnalysisJob) redriveInterview(ctx context.Context, before time.Time) error {
	apps, err := j.svc.FindPendingAnalysis(ctx, domain.AnalysisInterview, before, j.limit)
	if err != nil {
		return fmt.Errorf("查询待评估的面试失败: %w", err)
	}
	var eg errgroup.Group
	eg.SetLimit(j.concurrency)
	for _, app := range apps {
		app := app
		eg.Go(func() error {
			if err := j.svc.ReassessInterview(ctx, app); err != nil {
				j.logger.Error("重新评估面试失败", elog.Int64("applicationId", app.Id), elog.FieldErr(err))
			}
			return nil
		})
	}
	return eg.Wait()
}
