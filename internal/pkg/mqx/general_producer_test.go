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
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	ApplicationID int64  `json:"applicationId"`
	Path          string `json:"path"`
}

func (e testEvent) MessageKey() int64 {
	return e.ApplicationID
}

func TestGeneralProducer(t *testing.T) {
	const topic = "mqx_test_events"
	q := memory.NewMQ()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	require.NoError(t, q.CreateTopic(ctx, topic, 1))
	consumer, err := q.Consumer(topic, "mqx_test")
	require.NoError(t, err)

	producer, err := NewGeneralProducer[testEvent](NewTraceMq(q), topic)
	require.NoError(t, err)
	want := testEvent{ApplicationID: 12, Path: "12/resume/1700000000000_cv.pdf"}
	require.NoError(t, producer.Produce(ctx, want))

	err = Consume[testEvent](ctx, consumer, func(ctx context.Context, evt testEvent) error {
		assert.Equal(t, want, evt)
		return nil
	})
	require.NoError(t, err)
}
