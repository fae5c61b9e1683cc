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
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/errs"
	"github.com/ecodeclub/hireflow/internal/application/internal/service"
	"github.com/ecodeclub/hireflow/internal/pkg/media"
	"github.com/ecodeclub/hireflow/internal/pkg/media/wsdevice"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// 浏览器发送的控制帧
const (
	frameStart  = "start"
	frameStop   = "stop"
	frameSubmit = "submit"
	frameEnd    = "end"
)

// 服务端发送的帧
const (
	frameNegotiated = "negotiated"
	frameRecording  = "recording"
	frameRecorded   = "recorded"
	frameSubmitted  = "submitted"
	frameError      = "error"
)

const recorderOwner = "video-recorder"

type RecordedVO struct {
	MimeType string `json:"mimeType"`
	Size     int    `json:"size"`
	Duration int64  `json:"duration"`
	Reason   string `json:"reason"`
}

// RecordVideo 通过 websocket 录制视频
// hello 协商编码，start 开始录制，stop 停止，submit 提交，提交失败可以再次 submit
func (h *Handler) RecordVideo(ctx *gin.Context) {
	gtx := &ginx.Context{Context: ctx}
	sess, err := session.Get(gtx)
	if err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	jobId, ok := queryInt64(ctx, "jobId")
	if !ok {
		ctx.JSON(http.StatusOK, jobNotFoundResult)
		return
	}
	uid := sess.Claims().Uid
	app, err := h.svc.FindByJobAndCandidate(ctx, jobId, uid)
	if err != nil && !errors.Is(err, service.ErrApplicationNotFound) {
		h.logger.Error("查询申请失败", elog.Int64("jobId", jobId), elog.Int64("uid", uid), elog.FieldErr(err))
		ctx.JSON(http.StatusOK, systemErrorResult)
		return
	}
	if !app.HasResume() {
		ctx.JSON(http.StatusOK, resumeRequiredResult)
		return
	}
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.logger.Warn("升级 websocket 失败", elog.FieldErr(err))
		return
	}
	dev := wsdevice.New(conn)
	defer dev.Close()
	rs := &recordingSession{
		h:      h,
		dev:    dev,
		broker: media.NewBroker(dev),
		jobId:  jobId,
		uid:    uid,
		logger: h.logger.With(elog.Int64("applicationId", app.Id)),
	}
	rs.run(ctx.Request.Context())
}

type recordingSession struct {
	h      *Handler
	dev    *wsdevice.Device
	broker *media.Broker
	jobId  int64
	uid    int64

	mimeType string
	stream   *media.Stream
	recorder *media.Recorder
	// 提交成功之前一直保留
	blob   media.Blob
	logger *elog.Component
}

func (s *recordingSession) run(ctx context.Context) {
	defer s.release()
	for {
		select {
		case <-ctx.Done():
			return
		case f, ok := <-s.dev.Control():
			if !ok || f.Type == frameEnd {
				return
			}
			s.handle(ctx, f)
		case <-s.recorderDone():
			blob, err := s.recorder.Blob()
			if err != nil {
				s.logger.Error("获取录制结果失败", elog.FieldErr(err))
				s.sendError(errs.RecordingFailed)
				s.release()
				continue
			}
			s.finish(blob)
		}
	}
}

func (s *recordingSession) handle(ctx context.Context, f wsdevice.Frame) {
	switch f.Type {
	case wsdevice.FrameHello:
		s.mimeType = media.NegotiateMimeType(media.SupportedTypes(f.MimeTypes),
			media.VideoMimeTypes, media.FallbackVideoMimeType)
		s.send(wsdevice.Frame{Type: frameNegotiated, MimeTypes: []string{s.mimeType}})
	case frameStart:
		s.start(ctx)
	case frameStop:
		if s.recorder != nil {
			s.finish(s.recorder.Stop())
		}
	case frameSubmit:
		s.submit(ctx)
	default:
		s.logger.Debug("忽略未知的控制帧", elog.String("type", f.Type))
	}
}

func (s *recordingSession) start(ctx context.Context) {
	if s.recorder != nil {
		return
	}
	if s.mimeType == "" {
		s.mimeType = media.FallbackVideoMimeType
	}
	stream, err := s.broker.Acquire(ctx, recorderOwner, media.AudioVideo())
	if err != nil {
		s.logger.Warn("获取摄像头失败", elog.FieldErr(err))
		s.sendError(mediaErrorCode(err))
		return
	}
	recorder, err := media.NewRecorder(stream, s.mimeType, media.WithMaxDuration(s.h.maxRecording))
	if err == nil {
		err = recorder.Start(ctx)
	}
	if err != nil {
		_ = s.broker.Release(stream)
		s.logger.Error("开始录制失败", elog.FieldErr(err))
		s.sendError(errs.RecordingFailed)
		return
	}
	s.stream, s.recorder = stream, recorder
	// 重新录制会丢弃上一次的结果
	s.blob = media.Blob{}
	s.send(wsdevice.Frame{Type: frameRecording, MimeTypes: []string{s.mimeType}})
}

func (s *recordingSession) finish(blob media.Blob) {
	s.release()
	s.blob = blob
	s.sendPayload(frameRecorded, RecordedVO{
		MimeType: blob.MimeType,
		Size:     len(blob.Data),
		Duration: blob.Duration.Milliseconds(),
		Reason:   blob.Reason.String(),
	})
}

func (s *recordingSession) submit(ctx context.Context) {
	if s.recorder != nil || s.blob.Empty() {
		s.sendError(errs.InvalidVideo)
		return
	}
	res, err := s.h.svc.SubmitVideo(ctx, s.jobId, s.uid, domain.File{
		Name:        "recording" + extension(s.blob.MimeType),
		ContentType: s.blob.MimeType,
		Data:        s.blob.Data,
	})
	if err != nil {
		result, err := s.h.errorResult(err)
		if err != nil {
			s.logger.Error("提交视频失败", elog.FieldErr(err))
		}
		s.send(wsdevice.Frame{Type: frameError, Reason: codeString(result.Code), Message: result.Msg})
		return
	}
	s.blob = media.Blob{}
	s.sendPayload(frameSubmitted, newSubmitResult(res))
}

func (s *recordingSession) recorderDone() <-chan struct{} {
	if s.recorder == nil {
		return nil
	}
	return s.recorder.Done()
}

func (s *recordingSession) release() {
	if s.stream != nil {
		if err := s.broker.Release(s.stream); err != nil {
			s.logger.Warn("释放摄像头失败", elog.FieldErr(err))
		}
	}
	s.stream, s.recorder = nil, nil
}

func (s *recordingSession) sendError(code errs.ErrorCode) {
	s.send(wsdevice.Frame{Type: frameError, Reason: codeString(code.Code), Message: code.Msg})
}

func (s *recordingSession) sendPayload(typ string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("序列化消息失败", elog.String("type", typ), elog.FieldErr(err))
		return
	}
	s.send(wsdevice.Frame{Type: typ, Payload: data})
}

func (s *recordingSession) send(f wsdevice.Frame) {
	if err := s.dev.Send(f); err != nil {
		s.logger.Debug("发送消息失败", elog.String("type", f.Type), elog.FieldErr(err))
	}
}

func mediaErrorCode(err error) errs.ErrorCode {
	switch {
	case errors.Is(err, media.ErrPermissionDenied):
		return errs.MediaPermission
	case errors.Is(err, media.ErrDeviceUnavailable):
		return errs.MediaUnavailable
	default:
		return errs.RecordingFailed
	}
}

func codeString(code int) string {
	return strconv.Itoa(code)
}

func extension(mimeType string) string {
	if strings.HasPrefix(domain.BaseContentType(mimeType), "video/mp4") {
		return ".mp4"
	}
	return ".webm"
}
