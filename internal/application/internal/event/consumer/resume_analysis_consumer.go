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

package consumer

import (
	"context"
	"errors"

	"github.com/ecodeclub/hireflow/internal/application/internal/event"
	"github.com/ecodeclub/hireflow/internal/application/internal/service"
	"github.com/ecodeclub/hireflow/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type ResumeAnalysisEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewResumeAnalysisEventConsumer(svc service.Service, q mq.MQ) (*ResumeAnalysisEventConsumer, error) {
	const groupID = "application-resume-analysis"
	consumer, err := q.Consumer(event.ResumeAnalysisEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &ResumeAnalysisEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponentName("application.ResumeAnalysisEventConsumer")),
	}, nil
}

// Start ctx 结束之后退出
func (c *ResumeAnalysisEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费简历分析事件失败", elog.FieldErr(err))
			}
		}
	}()
}

// Consume 分析失败只记录日志，定时任务会重新发送事件
func (c *ResumeAnalysisEventConsumer) Consume(ctx context.Context) error {
	return mqx.Consume[event.ResumeAnalysisEvent](ctx, c.consumer,
		func(ctx context.Context, evt event.ResumeAnalysisEvent) error {
			err := c.svc.ApplyResumeAnalysis(ctx, evt.ApplicationId, evt.ResumePath)
			if err != nil && !errors.Is(err, service.ErrApplicationNotFound) {
				c.logger.Error("简历分析失败",
					elog.Int64("applicationId", evt.ApplicationId),
					elog.String("path", evt.ResumePath),
					elog.FieldErr(err))
			}
			return nil
		})
}

func (c *ResumeAnalysisEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
