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

package log

import (
	"context"
	"time"

	"github.com/ecodeclub/hireflow/internal/ai/internal/domain"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// HandlerBuilder 在调用链最外层，每次调用一条日志加一个 span
type HandlerBuilder struct {
	logger *elog.Component
	tracer trace.Tracer
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandler() *HandlerBuilder {
	return &HandlerBuilder{
		logger: elog.DefaultLogger.With(elog.FieldComponentName("ai.llm")),
		tracer: otel.GetTracerProvider().Tracer("github.com/ecodeclub/hireflow/internal/ai"),
	}
}

func (h *HandlerBuilder) Name() string {
	return "log"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		ctx, span := h.tracer.Start(ctx, "llm.invoke", trace.WithAttributes(
			attribute.String("llm.biz", req.Biz),
			attribute.String("llm.tid", req.Tid),
			attribute.Int64("llm.uid", req.Uid),
			attribute.Int("llm.input_len", req.InputLen()),
		))
		defer span.End()
		logger := h.logger.With(elog.String("tid", req.Tid),
			elog.Int64("uid", req.Uid),
			elog.String("biz", req.Biz))
		start := time.Now()
		resp, err := next.Handle(ctx, req)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Error("调用 LLM 失败", elog.FieldErr(err), elog.FieldCost(time.Since(start)))
			return resp, err
		}
		span.SetAttributes(attribute.Int64("llm.tokens", resp.Tokens), attribute.Int64("llm.amount", resp.Amount))
		logger.Debug("调用 LLM 成功",
			elog.Int64("tokens", resp.Tokens),
			elog.Int64("amount", resp.Amount),
			elog.FieldCost(time.Since(start)))
		return resp, nil
	})
}
