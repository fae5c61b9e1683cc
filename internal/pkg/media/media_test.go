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
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrack struct {
	id     string
	kind   Kind
	chunks chan []byte
	stops  atomic.Int32
	once   sync.Once
	err    error
}

func newFakeTrack(id string, kind Kind) *fakeTrack {
	return &fakeTrack{id: id, kind: kind, chunks: make(chan []byte, 16)}
}

func (f *fakeTrack) ID() string { return f.id }

func (f *fakeTrack) Kind() Kind { return f.kind }

func (f *fakeTrack) Chunks() <-chan []byte { return f.chunks }

func (f *fakeTrack) end() { f.once.Do(func() { close(f.chunks) }) }

func (f *fakeTrack) Stop() error {
	if f.stops.Add(1) > 1 {
		return errors.New("track 已经停止")
	}
	return f.err
}

type fakeDevice struct {
	acquired []*Stream
	err      error
}

func (f *fakeDevice) Acquire(ctx context.Context, c Constraints) (*Stream, error) {
	if f.err != nil {
		return nil, f.err
	}
	tracks := []Track{newFakeTrack("audio", KindAudio)}
	if c.Video != nil {
		tracks = append(tracks, newFakeTrack("video", KindVideo))
	}
	s := NewStream(tracks...)
	f.acquired = append(f.acquired, s)
	return s, nil
}

func TestStream_Release(t *testing.T) {
	audio, video := newFakeTrack("a", KindAudio), newFakeTrack("v", KindVideo)
	s := NewStream(audio, video)
	require.NoError(t, s.Release())
	require.NoError(t, s.Release())
	assert.Equal(t, int32(1), audio.stops.Load())
	assert.Equal(t, int32(1), video.stops.Load())
	assert.Equal(t, []Track{video}, s.TracksOf(KindVideo))
}

func TestNegotiateMimeType(t *testing.T) {
	testCases := []struct {
		name     string
		caps     Capabilities
		expected string
	}{
		{
			name:     "第一个支持的胜出",
			caps:     SupportedTypes{"video/mp4", "video/webm;codecs=vp8,opus"},
			expected: "video/webm;codecs=vp8,opus",
		},
		{
			name:     "忽略大小写和空格",
			caps:     SupportedTypes{"VIDEO/WEBM; codecs=vp9,opus"},
			expected: "video/webm;codecs=vp9,opus",
		},
		{
			name:     "都不支持",
			caps:     SupportedTypes{"video/x-matroska"},
			expected: FallbackVideoMimeType,
		},
		{
			name:     "没有上报能力",
			expected: FallbackVideoMimeType,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var caps Capabilities
			if tc.caps != nil {
				caps = tc.caps
			}
			for i := 0; i < 3; i++ {
				assert.Equal(t, tc.expected, NegotiateMimeType(caps, VideoMimeTypes, FallbackVideoMimeType))
			}
		})
	}
}

func TestClassifyDeviceError(t *testing.T) {
	assert.ErrorIs(t, ClassifyDeviceError("NotAllowedError", "denied"), ErrPermissionDenied)
	assert.ErrorIs(t, ClassifyDeviceError("NotFoundError", "no camera"), ErrDeviceUnavailable)
	err := ClassifyDeviceError("TypeError", "bad constraints")
	assert.False(t, IsPermissionError(err))
	assert.True(t, IsPermissionError(ClassifyDeviceError("SecurityError", "")))
}

func TestBroker_Acquire(t *testing.T) {
	dev := &fakeDevice{}
	b := NewBroker(dev)
	first, err := b.Acquire(context.Background(), "recorder", AudioVideo())
	require.NoError(t, err)
	assert.Equal(t, "recorder", b.Owner())

	second, err := b.Acquire(context.Background(), "interview", AudioOnly())
	require.NoError(t, err)
	assert.Equal(t, "interview", b.Owner())
	// 旧的 stream 在新的获取之前被释放
	for _, tr := range first.Tracks() {
		assert.Equal(t, int32(1), tr.(*fakeTrack).stops.Load())
	}
	require.NoError(t, b.Release(second))
	require.NoError(t, b.Release(second))
	assert.Equal(t, "", b.Owner())
	assert.Equal(t, int32(1), second.Tracks()[0].(*fakeTrack).stops.Load())

	dev.err = ClassifyDeviceError("NotAllowedError", "")
	_, err = b.Acquire(context.Background(), "interview", AudioOnly())
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestRecorder(t *testing.T) {
	testCases := []struct {
		name       string
		maxDur     time.Duration
		action     func(t *testing.T, r *Recorder, track *fakeTrack) Blob
		wantReason StopReason
		wantData   string
	}{
		{
			name:   "手动停止",
			maxDur: time.Minute,
			action: func(t *testing.T, r *Recorder, track *fakeTrack) Blob {
				track.chunks <- []byte("ab")
				track.chunks <- []byte("cd")
				require.Eventually(t, func() bool {
					return len(track.chunks) == 0
				}, time.Second, time.Millisecond*5)
				time.Sleep(time.Millisecond * 10)
				return r.Stop()
			},
			wantReason: StopReasonManual,
			wantData:   "abcd",
		},
		{
			name:   "到达最长时间自动停止",
			maxDur: time.Millisecond * 50,
			action: func(t *testing.T, r *Recorder, track *fakeTrack) Blob {
				track.chunks <- []byte("ab")
				<-r.Done()
				// 自动停止之后再手动停止不会改变结果
				return r.Stop()
			},
			wantReason: StopReasonMaxDuration,
			wantData:   "ab",
		},
		{
			name:   "track 被结束",
			maxDur: time.Minute,
			action: func(t *testing.T, r *Recorder, track *fakeTrack) Blob {
				track.chunks <- []byte("xyz")
				track.end()
				<-r.Done()
				blob, err := r.Blob()
				require.NoError(t, err)
				return blob
			},
			wantReason: StopReasonEnded,
			wantData:   "xyz",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			track := newFakeTrack("v", KindVideo)
			r, err := NewRecorder(NewStream(newFakeTrack("a", KindAudio), track),
				FallbackVideoMimeType, WithMaxDuration(tc.maxDur))
			require.NoError(t, err)
			require.NoError(t, r.Start(context.Background()))
			assert.ErrorIs(t, r.Start(context.Background()), ErrRecorderStarted)
			blob := tc.action(t, r, track)
			assert.Equal(t, tc.wantReason, blob.Reason)
			assert.Equal(t, tc.wantData, string(blob.Data))
			assert.Equal(t, FallbackVideoMimeType, blob.MimeType)
		})
	}
}

func TestRecorder_NoTrack(t *testing.T) {
	_, err := NewRecorder(NewStream(), FallbackVideoMimeType)
	assert.ErrorIs(t, err, ErrNoTrack)
}

func TestRecorder_DrainOtherTracks(t *testing.T) {
	audio, video := newFakeTrack("a", KindAudio), newFakeTrack("v", KindVideo)
	r, err := NewRecorder(NewStream(audio, video), FallbackVideoMimeType)
	require.NoError(t, err)
	require.NoError(t, r.Start(context.Background()))

	// 音频的数量远超缓冲区，没人读的话这里会阻塞
	sent := make(chan struct{})
	go func() {
		defer close(sent)
		for i := 0; i < 100; i++ {
			audio.chunks <- []byte("pcm")
			if i == 50 {
				video.chunks <- []byte("webm")
			}
		}
	}()
	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("音频数据没有被读走")
	}
	require.Eventually(t, func() bool {
		return len(video.chunks) == 0
	}, time.Second, time.Millisecond*5)
	time.Sleep(time.Millisecond * 10)
	blob := r.Stop()
	assert.Equal(t, StopReasonManual, blob.Reason)
	assert.Equal(t, "webm", string(blob.Data))
}
