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

package web

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/ecodeclub/hireflow/internal/interview/internal/service"
	"github.com/ecodeclub/hireflow/internal/pkg/media"
	"github.com/ecodeclub/hireflow/internal/pkg/media/wsdevice"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/gotomicro/ego/core/elog"
)

// 浏览器发送的控制帧
const (
	frameStart = "start"
	frameEnd   = "end"
)

// firstNameKey session 里面候选人的名字
const firstNameKey = "firstName"

type Handler struct {
	svc      service.Service
	upgrader websocket.Upgrader
	logger   *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: elog.DefaultLogger.With(elog.FieldComponentName("interview.Handler")),
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/interview")
	g.GET("/session", h.Session)
}

// Session 一个 websocket 连接既是麦克风的上行通道，也是面试的控制通道
func (h *Handler) Session(ctx *gin.Context) {
	gtx := &ginx.Context{Context: ctx}
	sess, err := session.Get(gtx)
	if err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	jobId, err := strconv.ParseInt(ctx.Query("jobId"), 10, 64)
	if err != nil || jobId <= 0 {
		res := classify(service.ErrJobNotFound)
		ctx.JSON(http.StatusOK, ginx.Result{Code: res.code.Code, Msg: res.code.Msg, Data: res.vo})
		return
	}
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.logger.Warn("升级 websocket 失败", elog.FieldErr(err))
		return
	}
	dev := wsdevice.New(conn)
	defer dev.Close()
	claims := sess.Claims()
	b := &bridge{
		svc:       h.svc,
		dev:       dev,
		broker:    media.NewBroker(dev),
		jobId:     jobId,
		uid:       claims.Uid,
		firstName: claims.Get(firstNameKey).StringOrDefault(""),
		logger:    h.logger.With(elog.Int64("jobId", jobId), elog.Int64("uid", claims.Uid)),
	}
	b.run(ctx.Request.Context())
}

// bridge 把会话的事件转成浏览器的帧
type bridge struct {
	svc       service.Service
	dev       *wsdevice.Device
	broker    *media.Broker
	jobId     int64
	uid       int64
	firstName string
	session   *service.Session
	logger    *elog.Component
}

func (b *bridge) run(ctx context.Context) {
	// 浏览器断开也要结束面试
	defer b.end(context.WithoutCancel(ctx))
	for {
		select {
		case <-ctx.Done():
			return
		case f, ok := <-b.dev.Control():
			if !ok {
				return
			}
			switch f.Type {
			case frameStart:
				b.start(ctx, f)
			case frameEnd:
				b.end(ctx)
			default:
				b.logger.Debug("忽略未知的控制帧", elog.String("type", f.Type))
			}
		case evt, ok := <-b.events():
			if !ok {
				b.session = nil
				continue
			}
			b.forward(evt)
		}
	}
}

func (b *bridge) start(ctx context.Context, f wsdevice.Frame) {
	var req StartReq
	if len(f.Payload) > 0 {
		if err := json.Unmarshal(f.Payload, &req); err != nil {
			b.logger.Warn("start 帧格式不对", elog.FieldErr(err))
		}
	}
	// 同一个连接上重新开始，先结束旧的
	b.end(ctx)
	s, err := b.svc.Open(ctx, service.OpenRequest{
		JobId:             b.jobId,
		CandidateId:       b.uid,
		FirstName:         b.firstName,
		PronunciationHint: req.PronunciationHint,
	}, b.broker)
	if err != nil {
		b.logger.Warn("开始面试失败", elog.FieldErr(err))
		b.sendError(err)
		return
	}
	b.session = s
}

func (b *bridge) end(ctx context.Context) {
	if b.session == nil {
		return
	}
	s := b.session
	b.session = nil
	s.End(ctx)
	for evt := range s.Events() {
		b.forward(evt)
	}
}

func (b *bridge) events() <-chan domain.Event {
	if b.session == nil {
		return nil
	}
	return b.session.Events()
}

func (b *bridge) forward(evt domain.Event) {
	switch evt.Type {
	case domain.EventState:
		b.sendPayload(string(evt.Type), StateVO{State: string(evt.State)})
	case domain.EventTurn:
		b.sendPayload(string(evt.Type), newTurnVO(evt.Turn))
	case domain.EventAudio:
		b.send(wsdevice.Frame{Type: string(evt.Type), Data: base64.StdEncoding.EncodeToString(evt.Audio)})
	case domain.EventError:
		b.sendError(evt.Err)
	case domain.EventEnded:
		warnings := evt.Warnings
		if warnings == nil {
			warnings = []string{}
		}
		b.sendPayload(string(evt.Type), EndedVO{Warnings: warnings, Saved: evt.Err == nil})
	}
}

func (b *bridge) sendError(err error) {
	res := classify(err)
	data, _ := json.Marshal(res.vo)
	b.send(wsdevice.Frame{
		Type:    string(domain.EventError),
		Reason:  res.vo.Kind,
		Message: res.code.Msg,
		Payload: data,
	})
}

func (b *bridge) sendPayload(typ string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error("序列化消息失败", elog.String("type", typ), elog.FieldErr(err))
		return
	}
	b.send(wsdevice.Frame{Type: typ, Payload: data})
}

func (b *bridge) send(f wsdevice.Frame) {
	if err := b.dev.Send(f); err != nil {
		b.logger.Debug("发送消息失败", elog.String("type", f.Type), elog.FieldErr(err))
	}
}
