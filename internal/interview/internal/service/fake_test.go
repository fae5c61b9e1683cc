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
	"sync"
	"sync/atomic"

	"github.com/ecodeclub/hireflow/internal/interview/internal/agent"
	"github.com/ecodeclub/hireflow/internal/pkg/media"
)

type fakeTrack struct {
	chunks chan []byte
	stops  atomic.Int32
	once   sync.Once
}

func (f *fakeTrack) ID() string { return "mic" }

func (f *fakeTrack) Kind() media.Kind { return media.KindAudio }

func (f *fakeTrack) Chunks() <-chan []byte { return f.chunks }

func (f *fakeTrack) Stop() error {
	f.stops.Add(1)
	f.once.Do(func() { close(f.chunks) })
	return nil
}

type fakeDevice struct {
	mu     sync.Mutex
	tracks []*fakeTrack
	err    error
}

func (f *fakeDevice) Acquire(ctx context.Context, c media.Constraints) (*media.Stream, error) {
	if f.err != nil {
		return nil, f.err
	}
	t := &fakeTrack{chunks: make(chan []byte, 16)}
	f.mu.Lock()
	f.tracks = append(f.tracks, t)
	f.mu.Unlock()
	return media.NewStream(t), nil
}

func (f *fakeDevice) track(i int) *fakeTrack {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tracks[i]
}

type fakeConn struct {
	events chan agent.Event
	sent   chan []byte
	err    error
	closes atomic.Int32
	once   sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		events: make(chan agent.Event, 16),
		sent:   make(chan []byte, 16),
	}
}

func (c *fakeConn) Events() <-chan agent.Event { return c.events }

func (c *fakeConn) SendAudio(chunk []byte) error {
	c.sent <- chunk
	return nil
}

func (c *fakeConn) Err() error { return c.err }

func (c *fakeConn) Close() error {
	c.closes.Add(1)
	c.disconnect(nil)
	return nil
}

// disconnect 模拟对方断开
func (c *fakeConn) disconnect(err error) {
	c.once.Do(func() {
		c.err = err
		close(c.events)
	})
}

type fakeDialer struct {
	conn   *fakeConn
	err    error
	starts []agent.Start
}

func (f *fakeDialer) Dial(ctx context.Context, start agent.Start) (agent.Conn, error) {
	f.starts = append(f.starts, start)
	if f.err != nil {
		return nil, f.err
	}
	return f.conn, nil
}

type fakePipeline struct {
	mu        sync.Mutex
	started   int
	completes [][]string
	warnings  []string
}

func (f *fakePipeline) MarkInterviewStarted(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started++
	return nil
}

func (f *fakePipeline) CompleteInterview(ctx context.Context, id int64, lines []string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completes = append(f.completes, lines)
	return f.warnings, nil
}

func (f *fakePipeline) completeCalls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.completes
}
