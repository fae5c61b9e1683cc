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
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ecodeclub/mq-api"
)

type Producer[T any] interface {
	Produce(ctx context.Context, evt T) error
}

// Keyed 实现了这个接口的消息会带上 key，同一个 key 落在同一个分区
type Keyed interface {
	MessageKey() int64
}

type GeneralProducer[T any] struct {
	producer mq.Producer
	topic    string
}

func NewGeneralProducer[T any](q mq.MQ, topic string) (*GeneralProducer[T], error) {
	p, err := q.Producer(topic)
	return &GeneralProducer[T]{
		producer: p,
		topic:    topic,
	}, err
}

func (p *GeneralProducer[T]) Produce(ctx context.Context, evt T) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	msg := &mq.Message{Value: data, Topic: p.topic}
	if k, ok := any(evt).(Keyed); ok {
		msg.Key = []byte(strconv.FormatInt(k.MessageKey(), 10))
	}
	_, err = p.producer.Produce(ctx, msg)
	if err != nil {
		return fmt.Errorf("向topic=%s发送event=%#v失败: %w", p.topic, evt, err)
	}
	return nil
}

// Consume 读取一条消息并反序列化，交给 fn 处理
func Consume[T any](ctx context.Context, consumer mq.Consumer, fn func(ctx context.Context, evt T) error) error {
	msg, err := consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	ctx, span := startConsume(ctx, msg)
	defer span.End()
	var evt T
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return endSpan(span, fmt.Errorf("解析消息失败: %w", err))
	}
	return endSpan(span, fn(ctx, evt))
}
