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

package wsdevice

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ecodeclub/hireflow/internal/pkg/media"
	"github.com/gorilla/websocket"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

// 浏览器和服务端之间的帧类型
const (
	FrameHello    = "hello"
	FrameAcquire  = "acquire"
	FrameAcquired = "acquired"
	FrameDenied   = "denied"
	FrameChunk    = "chunk"
	FrameStop     = "stop"
	FrameEnded    = "ended"
)

type TrackInfo struct {
	ID   string     `json:"id"`
	Kind media.Kind `json:"kind"`
}

// Frame 所有消息都是 JSON 文本帧
type Frame struct {
	Type        string             `json:"type"`
	ID          string             `json:"id,omitempty"`
	Data        string             `json:"data,omitempty"`
	Reason      string             `json:"reason,omitempty"`
	Message     string             `json:"message,omitempty"`
	Constraints *media.Constraints `json:"constraints,omitempty"`
	Tracks      []TrackInfo        `json:"tracks,omitempty"`
	MimeTypes   []string           `json:"mimeTypes,omitempty"`
	Payload     json.RawMessage    `json:"payload,omitempty"`
}

var _ media.Device = &Device{}

// Device 通过浏览器的 websocket 上行连接获取摄像头和麦克风
// 媒体相关的帧在这里消化掉，其余的帧通过 Control 交给业务方
type Device struct {
	conn *websocket.Conn

	wmu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan Frame
	tracks  map[string]*track

	control   chan Frame
	closed    chan struct{}
	closeOnce sync.Once
	logger    *elog.Component

	// 单个 track 的缓冲区满了之后最多等这么久，超时就丢掉这块数据
	chunkTimeout time.Duration
}

type Option func(d *Device)

func WithChunkTimeout(timeout time.Duration) Option {
	return func(d *Device) {
		d.chunkTimeout = timeout
	}
}

func New(conn *websocket.Conn, opts ...Option) *Device {
	d := &Device{
		conn:         conn,
		pending:      make(map[string]chan Frame),
		tracks:       make(map[string]*track),
		control:      make(chan Frame, 16),
		closed:       make(chan struct{}),
		logger:       elog.DefaultLogger.With(elog.FieldComponentName("wsdevice.Device")),
		chunkTimeout: time.Second * 2,
	}
	for _, opt := range opts {
		opt(d)
	}
	go d.readLoop()
	return d
}

// Control 非媒体帧，连接关闭之后 channel 会被关闭
func (d *Device) Control() <-chan Frame {
	return d.control
}

func (d *Device) Done() <-chan struct{} {
	return d.closed
}

func (d *Device) Send(f Frame) error {
	select {
	case <-d.closed:
		return media.ErrDeviceClosed
	default:
	}
	d.wmu.Lock()
	defer d.wmu.Unlock()
	return d.conn.WriteJSON(f)
}

// SendJSON 发送业务自定义的消息
func (d *Device) SendJSON(v any) error {
	select {
	case <-d.closed:
		return media.ErrDeviceClosed
	default:
	}
	d.wmu.Lock()
	defer d.wmu.Unlock()
	return d.conn.WriteJSON(v)
}

func (d *Device) Acquire(ctx context.Context, c media.Constraints) (*media.Stream, error) {
	reqID := shortuuid.New()
	ch := make(chan Frame, 1)
	d.mu.Lock()
	d.pending[reqID] = ch
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		delete(d.pending, reqID)
		d.mu.Unlock()
	}()

	if err := d.Send(Frame{Type: FrameAcquire, ID: reqID, Constraints: &c}); err != nil {
		return nil, err
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-d.closed:
		return nil, media.ErrDeviceClosed
	case reply := <-ch:
		if reply.Type == FrameDenied {
			return nil, media.ClassifyDeviceError(reply.Reason, reply.Message)
		}
		if len(reply.Tracks) == 0 {
			return nil, media.ErrNoTrack
		}
		tracks := make([]media.Track, 0, len(reply.Tracks))
		d.mu.Lock()
		for _, info := range reply.Tracks {
			t := newTrack(d, info)
			d.tracks[info.ID] = t
			tracks = append(tracks, t)
		}
		d.mu.Unlock()
		return media.NewStream(tracks...), nil
	}
}

func (d *Device) Close() error {
	d.shutdown()
	return d.conn.Close()
}

func (d *Device) shutdown() {
	d.closeOnce.Do(func() {
		close(d.closed)
		d.mu.Lock()
		tracks := d.tracks
		d.tracks = make(map[string]*track)
		d.mu.Unlock()
		for _, t := range tracks {
			t.end()
		}
	})
}

func (d *Device) readLoop() {
	defer close(d.control)
	defer d.shutdown()
	for {
		var f Frame
		err := d.conn.ReadJSON(&f)
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				d.logger.Debug("上行连接读取失败", elog.FieldErr(err))
			}
			return
		}
		switch f.Type {
		case FrameAcquired, FrameDenied:
			d.mu.Lock()
			ch, ok := d.pending[f.ID]
			d.mu.Unlock()
			if ok {
				ch <- f
			}
		case FrameChunk:
			d.dispatchChunk(f)
		case FrameEnded:
			d.mu.Lock()
			t, ok := d.tracks[f.ID]
			delete(d.tracks, f.ID)
			d.mu.Unlock()
			if ok {
				t.end()
			}
		default:
			select {
			case d.control <- f:
			case <-d.closed:
				return
			}
		}
	}
}

func (d *Device) dispatchChunk(f Frame) {
	d.mu.Lock()
	t, ok := d.tracks[f.ID]
	d.mu.Unlock()
	if !ok {
		return
	}
	data, err := base64.StdEncoding.DecodeString(f.Data)
	if err != nil {
		d.logger.Warn("媒体数据解码失败", elog.String("track", f.ID), elog.FieldErr(err))
		return
	}
	if !t.push(data, d.chunkTimeout) {
		d.logger.Warn("track 没有被消费，丢弃媒体数据", elog.String("track", f.ID), elog.Int("size", len(data)))
	}
}

func (d *Device) stopTrack(t *track) error {
	d.mu.Lock()
	delete(d.tracks, t.info.ID)
	d.mu.Unlock()
	err := d.Send(Frame{Type: FrameStop, ID: t.info.ID})
	if err == media.ErrDeviceClosed {
		return nil
	}
	if err != nil {
		return fmt.Errorf("通知浏览器停止 track 失败 %w", err)
	}
	return nil
}

type track struct {
	d    *Device
	info TrackInfo

	chunks chan []byte
	stopCh chan struct{}

	// 保护 chunks 的关闭
	mu       sync.RWMutex
	finished bool

	stopOnce sync.Once
	endOnce  sync.Once
	stopErr  error
}

func newTrack(d *Device, info TrackInfo) *track {
	return &track{
		d:      d,
		info:   info,
		chunks: make(chan []byte, 64),
		stopCh: make(chan struct{}),
	}
}

func (t *track) ID() string {
	return t.info.ID
}

func (t *track) Kind() media.Kind {
	return t.info.Kind
}

func (t *track) Chunks() <-chan []byte {
	return t.chunks
}

// Stop 只会通知浏览器一次
func (t *track) Stop() error {
	t.stopOnce.Do(func() {
		t.end()
		t.stopErr = t.d.stopTrack(t)
	})
	return t.stopErr
}

// push 不能一直阻塞，不然读协程卡住之后控制帧也收不到了
func (t *track) push(data []byte, timeout time.Duration) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.finished {
		return true
	}
	select {
	case t.chunks <- data:
		return true
	default:
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case t.chunks <- data:
		return true
	case <-t.stopCh:
		return true
	case <-timer.C:
		return false
	}
}

func (t *track) end() {
	t.endOnce.Do(func() {
		close(t.stopCh)
		t.mu.Lock()
		t.finished = true
		close(t.chunks)
		t.mu.Unlock()
	})
}
