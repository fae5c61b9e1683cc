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

package mqx

import (
	"context"
	"testing"

	"github.com/ecodeclub/mq-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestTracePropagation(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	defer func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	}()

	ctx, parent := tp.Tracer("test").Start(context.Background(), "submit")
	msg := &mq.Message{Topic: "resume_analysis_events", Value: []byte(`{}`)}
	injectHeader(ctx, msg)
	parent.End()
	require.NotEmpty(t, msg.Header["traceparent"])

	consumeCtx, span := startConsume(context.Background(), msg)
	span.End()
	assert.Equal(t, parent.SpanContext().TraceID(), trace.SpanContextFromContext(consumeCtx).TraceID())

	// 没有链路信息的消息开启新的链路
	_, orphan := startConsume(context.Background(), &mq.Message{Topic: "resume_analysis_events"})
	orphan.End()
	assert.NotEqual(t, parent.SpanContext().TraceID(), orphan.SpanContext().TraceID())
	assert.Len(t, exporter.GetSpans(), 3)
}
