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

package agent

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ecodeclub/hireflow/config"
	"github.com/gorilla/websocket"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultEndpoint         = "wss://api.elevenlabs.io/v1/convai/conversation"
	defaultHandshakeTimeout = 10 * time.Second
)

var _ Dialer = &ConvAIDialer{}

// ConvAIDialer 通过 websocket 连接对话式 agent
type ConvAIDialer struct {
	cfg    config.RealtimeConfig
	dialer *websocket.Dialer
	logger *elog.Component
}

func NewConvAIDialer(cfg config.RealtimeConfig) *ConvAIDialer {
	timeout := cfg.HandshakeTimeout
	if timeout <= 0 {
		timeout = defaultHandshakeTimeout
	}
	return &ConvAIDialer{
		cfg: cfg,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: timeout,
		},
		logger: elog.DefaultLogger.With(elog.FieldComponentName("agent.ConvAIDialer")),
	}
}

func (d *ConvAIDialer) Dial(ctx context.Context, start Start) (Conn, error) {
	if !d.cfg.Valid() {
		return nil, &ConfigurationError{Cause: ErrMissingCredentials}
	}
	endpoint := d.cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, &ConfigurationError{Cause: fmt.Errorf("非法的 endpoint %s %w", endpoint, err)}
	}
	q := u.Query()
	q.Set("agent_id", d.cfg.AgentID)
	u.RawQuery = q.Encode()
	header := http.Header{}
	header.Set("xi-api-key", d.cfg.APIKey)

	ws, resp, err := d.dialer.DialContext(ctx, u.String(), header)
	if err != nil {
		return nil, classifyHandshake(resp, err)
	}
	c := newConvAIConn(ws, d.logger)
	if err = c.writeJSON(d.initiation(start)); err != nil {
		_ = ws.Close()
		return nil, &TransientError{Cause: err}
	}
	go c.readLoop()
	return c, nil
}

func (d *ConvAIDialer) initiation(start Start) initiationMessage {
	return initiationMessage{
		Type: "conversation_initiation_client_data",
		Override: configOverride{
			Agent: agentOverride{
				Prompt:       promptOverride{Prompt: start.Prompt},
				FirstMessage: start.FirstMessage,
				Language:     d.cfg.STT.Language,
			},
			TTS: ttsOverride{VoiceID: d.cfg.VoiceID},
			ASR: asrOverride{UserInputAudioFormat: d.cfg.STT.AudioFormat},
		},
		DynamicVariables: start.Variables,
	}
}

func classifyHandshake(resp *http.Response, err error) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &ConfigurationError{Cause: fmt.Errorf("%w: HTTP %d", ErrUnauthorized, resp.StatusCode)}
		}
	}
	return &TransientError{Cause: err}
}

type convaiConn struct {
	ws     *websocket.Conn
	wmu    sync.Mutex
	events chan Event

	closed    chan struct{}
	closeOnce sync.Once

	mu  sync.Mutex
	err error

	logger *elog.Component
}

func newConvAIConn(ws *websocket.Conn, logger *elog.Component) *convaiConn {
	return &convaiConn{
		ws:     ws,
		events: make(chan Event, 32),
		closed: make(chan struct{}),
		logger: logger,
	}
}

func (c *convaiConn) Events() <-chan Event {
	return c.events
}

func (c *convaiConn) SendAudio(chunk []byte) error {
	return c.writeJSON(audioChunkMessage{UserAudioChunk: base64.StdEncoding.EncodeToString(chunk)})
}

func (c *convaiConn) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *convaiConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closed)
		c.wmu.Lock()
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		c.wmu.Unlock()
		err = c.ws.Close()
	})
	return err
}

func (c *convaiConn) writeJSON(v any) error {
	select {
	case <-c.closed:
		return net.ErrClosed
	default:
	}
	c.wmu.Lock()
	defer c.wmu.Unlock()
	return c.ws.WriteJSON(v)
}

func (c *convaiConn) readLoop() {
	defer close(c.events)
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			c.setErr(c.classifyReadErr(err))
			return
		}
		var msg inboundMessage
		if err = json.Unmarshal(data, &msg); err != nil {
			c.logger.Warn("忽略无法解析的消息", elog.FieldErr(err))
			continue
		}
		evt, ok := c.handle(msg)
		if !ok {
			continue
		}
		select {
		case c.events <- evt:
		case <-c.closed:
			return
		}
	}
}

func (c *convaiConn) handle(msg inboundMessage) (Event, bool) {
	switch msg.Type {
	case "user_transcript":
		if msg.UserTranscription == nil {
			break
		}
		return Event{Type: EventTranscript, Source: SourceHuman, Text: msg.UserTranscription.UserTranscript}, true
	case "agent_response":
		if msg.AgentResponse == nil {
			break
		}
		return Event{Type: EventTranscript, Source: SourceAssistant, Text: msg.AgentResponse.AgentResponse}, true
	case "audio":
		if msg.Audio == nil {
			break
		}
		data, err := base64.StdEncoding.DecodeString(msg.Audio.AudioBase64)
		if err != nil {
			c.logger.Warn("音频解码失败", elog.FieldErr(err))
			return Event{}, false
		}
		return Event{Type: EventAudio, Source: SourceAssistant, Audio: data}, true
	case "ping":
		if msg.Ping == nil {
			break
		}
		if err := c.writeJSON(pongMessage{Type: "pong", EventID: msg.Ping.EventID}); err != nil {
			c.logger.Debug("回复 pong 失败", elog.FieldErr(err))
		}
		return Event{}, false
	case "conversation_initiation_metadata", "interruption", "vad_score",
		"agent_response_correction", "internal_tentative_agent_response":
		return Event{}, false
	default:
		c.logger.Debug("忽略未知的消息", elog.String("type", msg.Type))
		return Event{}, false
	}
	c.logger.Warn("消息缺少内容", elog.String("type", msg.Type))
	return Event{}, false
}

func (c *convaiConn) classifyReadErr(err error) error {
	select {
	case <-c.closed:
		return nil
	default:
	}
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return nil
	}
	var ce *websocket.CloseError
	if errors.As(err, &ce) && ce.Code == websocket.ClosePolicyViolation {
		return &ConfigurationError{Cause: err}
	}
	return &TransientError{Cause: err}
}

func (c *convaiConn) setErr(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}

type initiationMessage struct {
	Type             string            `json:"type"`
	Override         configOverride    `json:"conversation_config_override"`
	DynamicVariables map[string]string `json:"dynamic_variables,omitempty"`
}

type configOverride struct {
	Agent agentOverride `json:"agent"`
	TTS   ttsOverride   `json:"tts"`
	ASR   asrOverride   `json:"asr"`
}

type agentOverride struct {
	Prompt       promptOverride `json:"prompt"`
	FirstMessage string         `json:"first_message"`
	Language     string         `json:"language,omitempty"`
}

type promptOverride struct {
	Prompt string `json:"prompt"`
}

type ttsOverride struct {
	VoiceID string `json:"voice_id,omitempty"`
}

type asrOverride struct {
	UserInputAudioFormat string `json:"user_input_audio_format,omitempty"`
}

type audioChunkMessage struct {
	UserAudioChunk string `json:"user_audio_chunk"`
}

type pongMessage struct {
	Type    string `json:"type"`
	EventID int64  `json:"event_id"`
}

type inboundMessage struct {
	Type              string `json:"type"`
	UserTranscription *struct {
		UserTranscript string `json:"user_transcript"`
	} `json:"user_transcription_event"`
	AgentResponse *struct {
		AgentResponse string `json:"agent_response"`
	} `json:"agent_response_event"`
	Audio *struct {
		AudioBase64 string `json:"audio_base_64"`
	} `json:"audio_event"`
	Ping *struct {
		EventID int64 `json:"event_id"`
	} `json:"ping_event"`
}
