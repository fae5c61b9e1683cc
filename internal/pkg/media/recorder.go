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

package media

import (
	"bytes"
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const DefaultMaxDuration = 60 * time.Second

type StopReason uint8

const (
	StopReasonUnknown StopReason = iota
	// StopReasonManual 用户主动停止
	StopReasonManual
	// StopReasonMaxDuration 到达最长录制时间
	StopReasonMaxDuration
	// StopReasonEnded track 被对端结束
	StopReasonEnded
	StopReasonCanceled
)

func (r StopReason) String() string {
	switch r {
	case StopReasonManual:
		return "manual"
	case StopReasonMaxDuration:
		return "max_duration"
	case StopReasonEnded:
		return "ended"
	case StopReasonCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

type Blob struct {
	Data     []byte
	MimeType string
	Duration time.Duration
	Reason   StopReason
}

func (b Blob) Empty() bool {
	return len(b.Data) == 0
}

type RecorderOption func(r *Recorder)

func WithMaxDuration(d time.Duration) RecorderOption {
	return func(r *Recorder) {
		r.maxDuration = d
	}
}

// Recorder 把一个 track 的数据收集成一个内存中的 Blob，stream 里面其余的 track 读出来直接丢弃
// 定时器和手动停止谁先到谁生效
type Recorder struct {
	track       Track
	others      []Track
	mimeType    string
	maxDuration time.Duration

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
	timer    *time.Timer
	start    time.Time

	mu     sync.Mutex
	reason StopReason
	stopAt time.Time
	buf    bytes.Buffer
	blob   Blob
}

// NewRecorder 优先录制视频 track，没有的话录制第一个 track
func NewRecorder(stream *Stream, mimeType string, opts ...RecorderOption) (*Recorder, error) {
	tracks := stream.TracksOf(KindVideo)
	if len(tracks) == 0 {
		tracks = stream.Tracks()
	}
	if len(tracks) == 0 {
		return nil, ErrNoTrack
	}
	r := &Recorder{
		track:       tracks[0],
		others:      otherTracks(stream.Tracks(), tracks[0]),
		mimeType:    mimeType,
		maxDuration: DefaultMaxDuration,
		stopCh:      make(chan struct{}),
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Recorder) Start(ctx context.Context) error {
	if !r.started.CompareAndSwap(false, true) {
		return ErrRecorderStarted
	}
	r.start = time.Now()
	r.mu.Lock()
	r.timer = time.AfterFunc(r.maxDuration, func() {
		r.finish(StopReasonMaxDuration)
	})
	r.mu.Unlock()
	context.AfterFunc(ctx, func() {
		r.finish(StopReasonCanceled)
	})
	go r.collect()
	for _, t := range r.others {
		go r.discard(t)
	}
	return nil
}

// Stop 手动停止并等待数据收集完毕
func (r *Recorder) Stop() Blob {
	r.finish(StopReasonManual)
	if !r.started.Load() {
		return Blob{MimeType: r.mimeType, Reason: r.reason}
	}
	<-r.done
	return r.blob
}

func (r *Recorder) Done() <-chan struct{} {
	return r.done
}

func (r *Recorder) Blob() (Blob, error) {
	select {
	case <-r.done:
		return r.blob, nil
	default:
		return Blob{}, ErrRecorderNotDone
	}
}

func (r *Recorder) MimeType() string {
	return r.mimeType
}

func (r *Recorder) finish(reason StopReason) {
	r.stopOnce.Do(func() {
		r.mu.Lock()
		r.reason = reason
		r.stopAt = time.Now()
		if r.timer != nil {
			r.timer.Stop()
		}
		r.mu.Unlock()
		close(r.stopCh)
	})
}

func (r *Recorder) collect() {
	defer close(r.done)
	chunks := r.track.Chunks()
	for {
		select {
		case <-r.stopCh:
			// 停止之前已经到达的数据也要保留
			r.drain(chunks)
			r.seal()
			return
		case chunk, ok := <-chunks:
			if !ok {
				r.finish(StopReasonEnded)
				r.seal()
				return
			}
			r.mu.Lock()
			r.buf.Write(chunk)
			r.mu.Unlock()
		}
	}
}

// discard 浏览器录制的视频已经混好了音频，不读的话上行连接会被堵住
func (r *Recorder) discard(t Track) {
	chunks := t.Chunks()
	for {
		select {
		case <-r.stopCh:
			return
		case _, ok := <-chunks:
			if !ok {
				return
			}
		}
	}
}

func otherTracks(all []Track, recorded Track) []Track {
	res := make([]Track, 0, len(all))
	for _, t := range all {
		if t != recorded {
			res = append(res, t)
		}
	}
	return res
}

func (r *Recorder) drain(chunks <-chan []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		select {
		case chunk, ok := <-chunks:
			if !ok {
				return
			}
			r.buf.Write(chunk)
		default:
			return
		}
	}
}

func (r *Recorder) seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	data := make([]byte, r.buf.Len())
	copy(data, r.buf.Bytes())
	r.blob = Blob{
		Data:     data,
		MimeType: r.mimeType,
		Duration: r.stopAt.Sub(r.start),
		Reason:   r.reason,
	}
}
