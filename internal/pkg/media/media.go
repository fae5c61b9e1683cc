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

	"github.com/ecodeclub/ekit/slice"
	"github.com/lithammer/shortuuid/v4"
)

type Kind string

const (
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
)

// AudioConstraints 面试用的麦克风参数是固定的
type AudioConstraints struct {
	SampleRate       int  `json:"sampleRate"`
	ChannelCount     int  `json:"channelCount"`
	EchoCancellation bool `json:"echoCancellation"`
	NoiseSuppression bool `json:"noiseSuppression"`
}

type VideoConstraints struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	FrameRate int `json:"frameRate"`
}

type Constraints struct {
	Audio *AudioConstraints `json:"audio,omitempty"`
	Video *VideoConstraints `json:"video,omitempty"`
}

var (
	InterviewAudio = AudioConstraints{
		SampleRate:       16000,
		ChannelCount:     1,
		EchoCancellation: true,
		NoiseSuppression: true,
	}
	RecordingVideo = VideoConstraints{
		Width:     1280,
		Height:    720,
		FrameRate: 30,
	}
)

// AudioOnly 面试阶段只需要麦克风
func AudioOnly() Constraints {
	a := InterviewAudio
	return Constraints{Audio: &a}
}

// AudioVideo 录制视频阶段
func AudioVideo() Constraints {
	a, v := InterviewAudio, RecordingVideo
	return Constraints{Audio: &a, Video: &v}
}

type Track interface {
	ID() string
	Kind() Kind
	// Chunks 媒体数据，track 结束之后会被关闭
	Chunks() <-chan []byte
	Stop() error
}

// Device 摄像头、麦克风的抽象
type Device interface {
	Acquire(ctx context.Context, c Constraints) (*Stream, error)
}

// Stream 一次 Acquire 得到的所有 track
type Stream struct {
	id     string
	tracks []Track
	once   sync.Once
	err    error
}

func NewStream(tracks ...Track) *Stream {
	return &Stream{
		id:     shortuuid.New(),
		tracks: tracks,
	}
}

func (s *Stream) ID() string {
	return s.id
}

func (s *Stream) Tracks() []Track {
	return s.tracks
}

func (s *Stream) TracksOf(kind Kind) []Track {
	return slice.FindAll(s.tracks, func(src Track) bool {
		return src.Kind() == kind
	})
}

// Release 停止所有 track，重复调用只有第一次生效
func (s *Stream) Release() error {
	s.once.Do(func() {
		errs := make([]error, 0, len(s.tracks))
		for _, t := range s.tracks {
			if err := t.Stop(); err != nil {
				errs = append(errs, err)
			}
		}
		s.err = errors.Join(errs...)
	})
	return s.err
}
