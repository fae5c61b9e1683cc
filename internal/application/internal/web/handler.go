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
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/service"
	"github.com/ecodeclub/hireflow/internal/job"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/gotomicro/ego/core/elog"
)

const (
	MaxResumeSize = 10 << 20
	MaxVideoSize  = 200 << 20
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type Handler struct {
	svc      service.Service
	jobs     job.Service
	upgrader websocket.Upgrader
	// 录制视频的最长时间
	maxRecording time.Duration
	logger       *elog.Component
}

func NewHandler(svc service.Service, jobs job.Service, maxRecording time.Duration) *Handler {
	return &Handler{
		svc:  svc,
		jobs: jobs,
		upgrader: websocket.Upgrader{
			// 跨域由 session 校验兜底
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		maxRecording: maxRecording,
		logger:       elog.DefaultLogger.With(elog.FieldComponentName("application.Handler")),
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/application")
	g.GET("/stage", ginx.S(h.Stage))
	g.POST("/resume", ginx.S(h.SubmitResume))
	g.POST("/video", ginx.S(h.SubmitVideo))
	g.GET("/artifact", ginx.S(h.Artifact))
	g.POST("/upload-credentials", ginx.BS(h.UploadCredentials))
	g.POST("/upload-confirm", ginx.BS(h.ConfirmUpload))
	g.GET("/video/record", h.RecordVideo)
}

// RecruiterRoutes 只有招聘方可以访问
func (h *Handler) RecruiterRoutes(server gin.IRoutes) {
	server.GET("/application/report", h.Report)
}

// Stage 页面加载的时候调用一次
func (h *Handler) Stage(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	jobId, ok := queryInt64(ctx.Context, "jobId")
	if !ok {
		return jobNotFoundResult, nil
	}
	if res, err := h.checkJob(ctx, jobId); err != nil || res.Code != 0 {
		return res, err
	}
	stage, err := h.svc.Stage(ctx, jobId, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: StageVO{Stage: string(stage)}}, nil
}

// SubmitResume multipart 表单，jobId + file
func (h *Handler) SubmitResume(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	jobId, err := strconv.ParseInt(ctx.PostForm("jobId"), 10, 64)
	if err != nil || jobId <= 0 {
		return jobNotFoundResult, nil
	}
	if res, err := h.checkJob(ctx, jobId); err != nil || res.Code != 0 {
		return res, err
	}
	file, ok, err := readFormFile(ctx.Context, "file", MaxResumeSize)
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return invalidResumeResult, nil
	}
	res, err := h.svc.SubmitResume(ctx, jobId, sess.Claims().Uid, file)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmitResult(res)}, nil
}

// SubmitVideo 上传录好的视频，multipart 表单，jobId + file
func (h *Handler) SubmitVideo(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	jobId, err := strconv.ParseInt(ctx.PostForm("jobId"), 10, 64)
	if err != nil || jobId <= 0 {
		return jobNotFoundResult, nil
	}
	file, ok, err := readFormFile(ctx.Context, "file", MaxVideoSize)
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return invalidVideoResult, nil
	}
	res, err := h.svc.SubmitVideo(ctx, jobId, sess.Claims().Uid, file)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmitResult(res)}, nil
}

func (h *Handler) Artifact(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	jobId, ok := queryInt64(ctx.Context, "jobId")
	if !ok {
		return jobNotFoundResult, nil
	}
	kind := domain.ArtifactKind(ctx.Context.Query("kind"))
	res, err := h.svc.Artifact(ctx, jobId, sess.Claims().Uid, kind)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newArtifact(res)}, nil
}

// UploadCredentials 前端直传使用的临时密钥
func (h *Handler) UploadCredentials(ctx *ginx.Context, req UploadCredentialsReq, sess session.Session) (ginx.Result, error) {
	if res, err := h.checkJob(ctx, req.JobId); err != nil || res.Code != 0 {
		return res, err
	}
	cred, err := h.svc.UploadCredentials(ctx, req.JobId, sess.Claims().Uid, domain.ArtifactKind(req.Kind), req.ContentType)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newCredentials(cred)}, nil
}

// ConfirmUpload 前端直传成功之后调用
func (h *Handler) ConfirmUpload(ctx *ginx.Context, req ConfirmUploadReq, sess session.Session) (ginx.Result, error) {
	if res, err := h.checkJob(ctx, req.JobId); err != nil || res.Code != 0 {
		return res, err
	}
	res, err := h.svc.ConfirmUpload(ctx, req.JobId, sess.Claims().Uid, domain.ArtifactKind(req.Kind), req.Path)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmitResult(res)}, nil
}

// Report 下载 DOCX 格式的评估报告
func (h *Handler) Report(ctx *gin.Context) {
	gtx := &ginx.Context{Context: ctx}
	sess, err := session.Get(gtx)
	if err != nil {
		h.logger.Error("获取 Session 失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	id, ok := queryInt64(ctx, "applicationId")
	if !ok {
		ctx.JSON(http.StatusOK, applicationNotFoundResult)
		return
	}
	report, err := h.svc.Report(ctx, id)
	if err != nil {
		res, err := h.errorResult(err)
		if err != nil {
			h.logger.Error("生成评估报告失败",
				elog.Int64("applicationId", id),
				elog.Int64("uid", sess.Claims().Uid),
				elog.FieldErr(err))
		}
		ctx.JSON(http.StatusOK, res)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Name))
	ctx.Data(http.StatusOK, docxContentType, report.Data)
}

func (h *Handler) checkJob(ctx *ginx.Context, jobId int64) (ginx.Result, error) {
	if jobId <= 0 {
		return jobNotFoundResult, nil
	}
	_, err := h.jobs.FindByID(ctx, jobId)
	if errors.Is(err, job.ErrJobNotFound) {
		return jobNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidResume):
		return invalidResumeResult, nil
	case errors.Is(err, service.ErrInvalidVideo):
		return invalidVideoResult, nil
	case errors.Is(err, service.ErrResumeRequired):
		return resumeRequiredResult, nil
	case errors.Is(err, service.ErrApplicationNotFound):
		return applicationNotFoundResult, nil
	case errors.Is(err, service.ErrArtifactNotReady):
		return artifactNotReadyResult, nil
	case errors.Is(err, service.ErrUnknownArtifact):
		return invalidArtifactKindResult, nil
	case errors.Is(err, service.ErrUploadNotFound):
		return uploadNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}

func queryInt64(ctx *gin.Context, key string) (int64, bool) {
	val, err := strconv.ParseInt(ctx.Query(key), 10, 64)
	return val, err == nil && val > 0
}

// readFormFile 文件不存在、为空或者太大的时候 ok 为 false
func readFormFile(ctx *gin.Context, key string, maxSize int64) (domain.File, bool, error) {
	fh, err := ctx.FormFile(key)
	if err != nil || fh.Size == 0 || fh.Size > maxSize {
		return domain.File{}, false, nil
	}
	data, err := readAll(fh)
	if err != nil {
		return domain.File{}, false, err
	}
	return domain.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, true, nil
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
