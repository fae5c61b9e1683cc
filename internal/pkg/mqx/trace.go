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

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/hireflow/internal/pkg/mqx"

// TraceMq 发送的时候把链路信息写进消息头，消费的时候由 Consume 恢复
type TraceMq struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMq(q mq.MQ) *TraceMq {
	return &TraceMq{MQ: q, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t *TraceMq) Producer(topic string) (mq.Producer, error) {
	pro, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &TraceProducer{Producer: pro, tracer: t.tracer}, nil
}

type TraceProducer struct {
	mq.Producer
	tracer trace.Tracer
}

func (t *TraceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.startProduce(ctx, m)
	defer span.End()
	res, err := t.Producer.Produce(ctx, m)
	return res, endSpan(span, err)
}

func (t *TraceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.startProduce(ctx, m)
	span.SetAttributes(attribute.Int("messaging.destination.partition.id", partition))
	defer span.End()
	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	return res, endSpan(span, err)
}

func (t *TraceProducer) startProduce(ctx context.Context, m *mq.Message) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, "mq.produce", trace.WithSpanKind(trace.SpanKindProducer))
	span.SetAttributes(messageAttributes("produce", m)...)
	if m != nil {
		injectHeader(ctx, m)
	}
	return ctx, span
}

func injectHeader(ctx context.Context, m *mq.Message) {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	if len(carrier) == 0 {
		return
	}
	if m.Header == nil {
		m.Header = map[string]string{}
	}
	for k, v := range carrier {
		m.Header[k] = v
	}
}

// startConsume 从消息头里面恢复发送方的链路，没有的时候开启新的链路
func startConsume(ctx context.Context, m *mq.Message) (context.Context, trace.Span) {
	if len(m.Header) > 0 {
		carrier := propagation.MapCarrier{}
		for k, v := range m.Header {
			carrier[k] = v
		}
		ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)
	}
	tracer := otel.GetTracerProvider().Tracer(instrumentationName)
	ctx, span := tracer.Start(ctx, "mq.consume", trace.WithSpanKind(trace.SpanKindConsumer))
	span.SetAttributes(messageAttributes("consume", m)...)
	return ctx, span
}

func endSpan(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

func messageAttributes(op string, m *mq.Message) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "kafka"),
		attribute.String("messaging.operation", op),
	}
	if m == nil {
		return attrs
	}
	attrs = append(attrs,
		attribute.String("messaging.destination.name", m.Topic),
		attribute.Int("messaging.message.body.size", len(m.Value)))
	if len(m.Key) > 0 {
		attrs = append(attrs, attribute.String("messaging.kafka.message.key", string(m.Key)))
	}
	return attrs
}
