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
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ecodeclub/hireflow/internal/interview/internal/agent"
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/ecodeclub/hireflow/internal/pkg/media"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

const (
	microphoneOwner = "interview-session"
	// 结束面试之后要等打分完成
	completeTimeout = 2 * time.Minute

	eventBuffer = 256
	// state=ended 和 ended
	terminalEvents = 2
)

var (
	ErrSessionStarted = errors.New("面试会话已经开始过")
	ErrSessionEnded   = errors.New("面试会话已经结束")
)

// Pipeline 面试开始和结束的时候通知申请流程
type Pipeline interface {
	MarkInterviewStarted(ctx context.Context, id int64) error
	CompleteInterview(ctx context.Context, id int64, lines []string) ([]string, error)
}

type EndResult struct {
	// Cause 会话为什么结束，本地结束或者对方正常断开时为 nil
	Cause    error
	Warnings []string
	Err      error
}

// Session 一次实时面试，生命周期 idle -> connecting -> active -> ended
// 无论因为什么结束，结束流程只执行一次
type Session struct {
	id            string
	applicationId int64
	broker        *media.Broker
	dialer        agent.Dialer
	pipeline      Pipeline
	onEnd         func(s *Session)

	mu         sync.Mutex
	state      domain.State
	stream     *media.Stream
	conn       agent.Conn
	transcript []string

	emu          sync.Mutex
	events       chan domain.Event
	eventsClosed bool

	endOnce sync.Once
	result  EndResult
	done    chan struct{}

	logger *elog.Component
}

func newSession(applicationId int64, broker *media.Broker, dialer agent.Dialer, pipeline Pipeline) *Session {
	id := shortuuid.New()
	return &Session{
		id:            id,
		applicationId: applicationId,
		broker:        broker,
		dialer:        dialer,
		pipeline:      pipeline,
		state:         domain.StateIdle,
		events:        make(chan domain.Event, eventBuffer+terminalEvents),
		done:          make(chan struct{}),
		logger: elog.DefaultLogger.With(elog.FieldComponentName("interview.Session"),
			elog.String("sessionId", id),
			elog.Int64("applicationId", applicationId)),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) ApplicationID() int64 {
	return s.applicationId
}

func (s *Session) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Events 结束之后会被关闭，最后一个事件一定是 ended
func (s *Session) Events() <-chan domain.Event {
	return s.events
}

func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) Transcript() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]string, len(s.transcript))
	copy(res, s.transcript)
	return res
}

// Start 获取麦克风并且连接 agent，失败的时候资源已经被释放
func (s *Session) Start(ctx context.Context, ic domain.Context) error {
	s.mu.Lock()
	if s.state != domain.StateIdle {
		s.mu.Unlock()
		return ErrSessionStarted
	}
	s.state = domain.StateConnecting
	s.mu.Unlock()
	s.emit(domain.Event{Type: domain.EventState, State: domain.StateConnecting})

	rendered, err := ic.Render()
	if err != nil {
		s.finish(ctx, err)
		return err
	}

	// 每次都重新获取，旧的 stream 会先被释放
	stream, err := s.broker.Acquire(ctx, microphoneOwner, media.AudioOnly())
	if err != nil {
		s.finish(ctx, err)
		return err
	}
	if !s.attach(func() { s.stream = stream }) {
		_ = s.broker.Release(stream)
		return ErrSessionEnded
	}

	conn, err := s.dialer.Dial(ctx, agent.Start{
		Prompt:       rendered.Prompt,
		FirstMessage: rendered.FirstMessage,
		Variables: map[string]string{
			"candidate_first_name": ic.CandidateFirstName,
			"job_title":            ic.JobTitle,
		},
	})
	if err != nil {
		s.finish(ctx, err)
		return err
	}
	if !s.attach(func() {
		s.conn = conn
		s.state = domain.StateActive
	}) {
		_ = conn.Close()
		return ErrSessionEnded
	}
	s.emit(domain.Event{Type: domain.EventState, State: domain.StateActive})

	if err = s.pipeline.MarkInterviewStarted(ctx, s.applicationId); err != nil {
		s.logger.Error("记录面试开始失败", elog.FieldErr(err))
	}
	for _, t := range stream.TracksOf(media.KindAudio) {
		go s.forwardAudio(t, conn)
	}
	go s.receive(conn)
	return nil
}

// attach 会话还没有结束的时候才修改状态
func (s *Session) attach(fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.StateEnded {
		return false
	}
	fn()
	return true
}

// End 可以重复调用，返回第一次结束的结果
func (s *Session) End(ctx context.Context) EndResult {
	return s.finish(ctx, nil)
}

func (s *Session) forwardAudio(t media.Track, conn agent.Conn) {
	for chunk := range t.Chunks() {
		if err := conn.SendAudio(chunk); err != nil {
			s.logger.Debug("发送音频失败", elog.FieldErr(err))
			return
		}
	}
}

func (s *Session) receive(conn agent.Conn) {
	for evt := range conn.Events() {
		switch evt.Type {
		case agent.EventTranscript:
			s.appendTurn(evt)
		case agent.EventAudio:
			s.emit(domain.Event{Type: domain.EventAudio, Audio: evt.Audio})
		default:
			s.logger.Debug("忽略未知的 agent 事件", elog.String("type", string(evt.Type)))
		}
	}
	s.finish(context.Background(), conn.Err())
}

func (s *Session) appendTurn(evt agent.Event) {
	text := strings.TrimSpace(evt.Text)
	if text == "" {
		return
	}
	var turn domain.Turn
	switch evt.Source {
	case agent.SourceHuman:
		turn = domain.Turn{Speaker: domain.SpeakerHuman, Text: text}
	case agent.SourceAssistant:
		turn = domain.Turn{Speaker: domain.SpeakerAssistant, Text: text}
	default:
		s.logger.Warn("忽略未知来源的对话", elog.String("source", string(evt.Source)))
		return
	}
	s.mu.Lock()
	if s.state != domain.StateActive {
		s.mu.Unlock()
		return
	}
	s.transcript = append(s.transcript, turn.Line())
	s.mu.Unlock()
	s.emit(domain.Event{Type: domain.EventTurn, Turn: turn})
}

// finish 所有的结束路径都走这里
func (s *Session) finish(ctx context.Context, cause error) EndResult {
	s.endOnce.Do(func() {
		s.mu.Lock()
		prev := s.state
		s.state = domain.StateEnded
		conn, stream := s.conn, s.stream
		lines := s.transcript
		s.transcript = nil
		s.mu.Unlock()

		if conn != nil {
			if err := conn.Close(); err != nil {
				s.logger.Debug("关闭 agent 连接失败", elog.FieldErr(err))
			}
		}
		if stream != nil {
			if err := s.broker.Release(stream); err != nil {
				s.logger.Warn("释放麦克风失败", elog.FieldErr(err))
			}
		}

		res := EndResult{Cause: cause}
		if cause != nil {
			s.logger.Warn("面试会话异常结束", elog.String("state", string(prev)), elog.FieldErr(cause))
			s.emit(domain.Event{Type: domain.EventError, Err: cause})
		}
		// 没有连上 agent 就没有面试
		if prev == domain.StateActive {
			cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), completeTimeout)
			res.Warnings, res.Err = s.pipeline.CompleteInterview(cctx, s.applicationId, lines)
			cancel()
			if res.Err != nil {
				s.logger.Error("保存面试记录失败", elog.FieldErr(res.Err))
			}
		}
		s.result = res
		s.emitTerminal(domain.Event{Type: domain.EventState, State: domain.StateEnded},
			domain.Event{Type: domain.EventEnded, Warnings: res.Warnings, Err: res.Err})
		if s.onEnd != nil {
			s.onEnd(s)
		}
		close(s.done)
	})
	<-s.done
	return s.result
}

// emit 缓冲区最后的 terminalEvents 个位置留给结束事件，普通事件满了直接丢弃
func (s *Session) emit(evt domain.Event) {
	s.emu.Lock()
	defer s.emu.Unlock()
	if s.eventsClosed {
		return
	}
	if len(s.events) >= eventBuffer {
		s.logger.Warn("订阅方处理太慢，丢弃事件", elog.String("type", string(evt.Type)))
		return
	}
	s.events <- evt
}

// emitTerminal 发送结束事件并且关闭 channel
func (s *Session) emitTerminal(evts ...domain.Event) {
	s.emu.Lock()
	defer s.emu.Unlock()
	if s.eventsClosed {
		return
	}
	for _, evt := range evts {
		s.events <- evt
	}
	s.eventsClosed = true
	close(s.events)
}
