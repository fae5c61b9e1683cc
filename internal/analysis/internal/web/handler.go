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
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hireflow/internal/analysis/internal/extract"
	"github.com/ecodeclub/hireflow/internal/analysis/internal/service"
	"github.com/ecodeclub/hireflow/internal/job"
	"github.com/ecodeclub/hireflow/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// MaxDocumentSize 岗位文档最大 10M
const MaxDocumentSize = 10 << 20

type Handler struct {
	gateway service.Gateway
	jobs    job.Service
	storage storage.Service
	logger  *elog.Component
}

func NewHandler(gateway service.Gateway, jobs job.Service, st storage.Service) *Handler {
	return &Handler{
		gateway: gateway,
		jobs:    jobs,
		storage: st,
		logger:  elog.DefaultLogger,
	}
}

// RecruiterRoutes 只有招聘方可以访问
func (h *Handler) RecruiterRoutes(server gin.IRoutes) {
	server.POST("/job/document/process", ginx.S(h.ProcessDocument))
}

// ProcessDocument multipart 表单，jobId + file
func (h *Handler) ProcessDocument(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	jobId, err := strconv.ParseInt(ctx.PostForm("jobId"), 10, 64)
	if err != nil || jobId <= 0 {
		return jobNotFoundResult, nil
	}
	if _, err = h.jobs.FindByID(ctx, jobId); err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			return jobNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	fh, err := ctx.FormFile("file")
	if err != nil || fh.Size == 0 || fh.Size > MaxDocumentSize {
		return invalidDocumentResult, nil
	}
	f, err := fh.Open()
	if err != nil {
		return systemErrorResult, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return systemErrorResult, err
	}
	contentType := extract.Detect(data)
	if contentType != extract.MimePDF && contentType != extract.MimeDOCX && contentType != extract.MimeText {
		return invalidDocumentResult, nil
	}

	path := storage.BuildPath(fmt.Sprintf("jobs/%d", jobId), storage.KindJobDocument, fh.Filename, time.Now())
	path, err = h.storage.Upload(ctx, storage.Object{
		Path:        path,
		ContentType: contentType,
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
	})
	if err != nil {
		return systemErrorResult, err
	}
	doc, err := h.gateway.ProcessJobDocument(ctx, path)
	if err != nil {
		h.logger.Error("整理岗位文档失败",
			elog.Int64("jobId", jobId),
			elog.Int64("uid", sess.Claims().Uid),
			elog.String("path", path),
			elog.FieldErr(err))
		if errors.Is(err, extract.ErrUnsupportedFormat) || errors.Is(err, extract.ErrEmptyText) {
			return invalidDocumentResult, nil
		}
		return documentAnalysisResult, nil
	}
	jd := job.Document{
		Description:             doc.Description,
		EssentialAttributes:     doc.EssentialAttributes,
		GoodCandidateAttributes: doc.GoodCandidateAttributes,
		BadCandidateAttributes:  doc.BadCandidateAttributes,
	}
	if err = h.jobs.SaveDocument(ctx, jobId, path, jd); err != nil {
		if errors.Is(err, job.ErrEmptyDocument) {
			return documentAnalysisResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: JobDocument{
			JobId:                   jobId,
			Path:                    path,
			Description:             jd.Description,
			EssentialAttributes:     jd.EssentialAttributes,
			GoodCandidateAttributes: jd.GoodCandidateAttributes,
			BadCandidateAttributes:  jd.BadCandidateAttributes,
		},
	}, nil
}
