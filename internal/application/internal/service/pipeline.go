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
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hireflow/internal/analysis"
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/event"
	"github.com/ecodeclub/hireflow/internal/application/internal/event/producer"
	"github.com/ecodeclub/hireflow/internal/application/internal/repository"
	"github.com/ecodeclub/hireflow/internal/job"
	"github.com/ecodeclub/hireflow/internal/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

var (
	ErrInvalidResume       = errors.New("简历为空或者格式不支持")
	ErrInvalidVideo        = errors.New("视频为空或者格式不支持")
	ErrResumeRequired      = errors.New("需要先上传简历")
	ErrApplicationNotFound = gorm.ErrRecordNotFound
)

// 不会阻塞流程的提示
const (
	WarningResumeAnalysisDeferred  = "简历已经保存，分析结果稍后生成"
	WarningInterviewAnalysisFailed = "面试已经结束，评估结果稍后生成"
)

const octetStream = "application/octet-stream"

var resumeContentTypes = []string{analysis.MimePDF, analysis.MimeDOC, analysis.MimeDOCX, analysis.MimeText}

//go:generate mockgen -source=./pipeline.go -package=appmocks -destination=../../mocks/application.mock.go Service
type Service interface {
	// Stage 候选人进入页面的时候应该看到的阶段
	Stage(ctx context.Context, jobId, candidateId int64) (domain.Stage, error)
	FindByJobAndCandidate(ctx context.Context, jobId, candidateId int64) (domain.Application, error)
	FindByID(ctx context.Context, id int64) (domain.Application, error)
	// Ensure 申请记录不存在就创建
	Ensure(ctx context.Context, jobId, candidateId int64) (domain.Application, error)

	SubmitResume(ctx context.Context, jobId, candidateId int64, file domain.File) (domain.SubmitResult, error)
	SubmitVideo(ctx context.Context, jobId, candidateId int64, file domain.File) (domain.SubmitResult, error)
	MarkInterviewStarted(ctx context.Context, id int64) error
	// CompleteInterview 返回的 warnings 不影响面试结束
	CompleteInterview(ctx context.Context, id int64, lines []string) ([]string, error)

	// ApplyResumeAnalysis 分析 resumePath 并且保存结果，简历已经被替换的时候直接忽略
	ApplyResumeAnalysis(ctx context.Context, id int64, resumePath string) error
	// ReassessInterview 重新评估已经结束的面试
	ReassessInterview(ctx context.Context, app domain.Application) error
	FindPendingAnalysis(ctx context.Context, kind domain.AnalysisKind, before time.Time, limit int) ([]domain.Application, error)
	// RepublishResumeAnalysis 重新发送简历分析事件
	RepublishResumeAnalysis(ctx context.Context, app domain.Application) error

	Artifact(ctx context.Context, jobId, candidateId int64, kind domain.ArtifactKind) (domain.Artifact, error)
	// UploadCredentials 只能上传到申请自己的目录下，申请不存在的时候不会创建
	UploadCredentials(ctx context.Context, jobId, candidateId int64, kind domain.ArtifactKind, contentType string) (storage.Credentials, error)
	// ConfirmUpload 直传完成之后登记路径，效果和 SubmitResume 或者 SubmitVideo 一样
	ConfirmUpload(ctx context.Context, jobId, candidateId int64, kind domain.ArtifactKind, path string) (domain.SubmitResult, error)
	Report(ctx context.Context, id int64) (domain.Report, error)
}

type pipelineService struct {
	repo     repository.ApplicationRepository
	storage  storage.Service
	gateway  analysis.Gateway
	jobs     job.Service
	producer producer.ResumeAnalysisEventProducer
	metrics  *Metrics
	group    singleflight.Group
	logger   *elog.Component
}

func NewService(repo repository.ApplicationRepository,
	st storage.Service,
	gateway analysis.Gateway,
	jobs job.Service,
	p producer.ResumeAnalysisEventProducer,
	metrics *Metrics) Service {
	return &pipelineService{
		repo:     repo,
		storage:  st,
		gateway:  gateway,
		jobs:     jobs,
		producer: p,
		metrics:  metrics,
		logger:   elog.DefaultLogger.With(elog.FieldComponentName("application.Service")),
	}
}

func (s *pipelineService) Stage(ctx context.Context, jobId, candidateId int64) (domain.Stage, error) {
	app, err := s.repo.FindByJobAndCandidate(ctx, jobId, candidateId)
	if errors.Is(err, ErrApplicationNotFound) {
		return domain.ResolveInitialStage(nil), nil
	}
	if err != nil {
		return "", err
	}
	return domain.ResolveInitialStage(&app), nil
}

func (s *pipelineService) FindByJobAndCandidate(ctx context.Context, jobId, candidateId int64) (domain.Application, error) {
	return s.repo.FindByJobAndCandidate(ctx, jobId, candidateId)
}

func (s *pipelineService) FindByID(ctx context.Context, id int64) (domain.Application, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *pipelineService) Ensure(ctx context.Context, jobId, candidateId int64) (domain.Application, error) {
	return s.repo.FindOrCreate(ctx, jobId, candidateId)
}

func (s *pipelineService) SubmitResume(ctx context.Context, jobId, candidateId int64, file domain.File) (domain.SubmitResult, error) {
	if file.Empty() {
		s.metrics.stage(string(domain.StageResume), resultFailed)
		return domain.SubmitResult{}, ErrInvalidResume
	}
	contentType := analysis.DetectContentType(file.Data)
	if !slice.Contains(resumeContentTypes, contentType) {
		s.metrics.stage(string(domain.StageResume), resultFailed)
		return domain.SubmitResult{}, fmt.Errorf("%w: %s", ErrInvalidResume, contentType)
	}
	// 连续点击提交只会上传一次
	key := fmt.Sprintf("resume:%d:%d", jobId, candidateId)
	val, err, _ := s.group.Do(key, func() (any, error) {
		return s.submitResume(ctx, jobId, candidateId, file, contentType)
	})
	if err != nil {
		s.metrics.stage(string(domain.StageResume), resultFailed)
		return domain.SubmitResult{}, err
	}
	res := val.(domain.SubmitResult)
	if len(res.Warnings) > 0 {
		s.metrics.stage(string(domain.StageResume), resultWarning)
	} else {
		s.metrics.stage(string(domain.StageResume), resultSuccess)
	}
	return res, nil
}

func (s *pipelineService) submitResume(ctx context.Context, jobId, candidateId int64,
	file domain.File, contentType string) (domain.SubmitResult, error) {
	app, err := s.repo.FindOrCreate(ctx, jobId, candidateId)
	if err != nil {
		return domain.SubmitResult{}, err
	}
	path, err := s.upload(ctx, app.Id, storage.KindResume, file, contentType)
	if err != nil {
		return domain.SubmitResult{}, err
	}
	return s.saveResume(ctx, app.Id, path)
}

// saveResume 简历已经在存储里面了，推进状态并且发送分析事件
func (s *pipelineService) saveResume(ctx context.Context, id int64, path string) (domain.SubmitResult, error) {
	err := s.repo.UpdateStage(ctx, id,
		domain.Predecessors(domain.StatusResumeUploaded), domain.StatusResumeUploaded,
		repository.StageChange{ResumePath: path})
	if err != nil {
		return domain.SubmitResult{}, err
	}
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.SubmitResult{}, err
	}

	var warnings []string
	err = s.producer.Produce(ctx, event.ResumeAnalysisEvent{
		ApplicationId: app.Id,
		ResumePath:    path,
	})
	if err != nil {
		// 定时任务会补发
		s.logger.Error("发送简历分析事件失败",
			elog.Int64("applicationId", app.Id),
			elog.String("path", path),
			elog.FieldErr(err))
		warnings = append(warnings, WarningResumeAnalysisDeferred)
	}
	return domain.SubmitResult{
		Application: app,
		Stage:       domain.StageVideo,
		Warnings:    warnings,
	}, nil
}

func (s *pipelineService) SubmitVideo(ctx context.Context, jobId, candidateId int64, file domain.File) (domain.SubmitResult, error) {
	res, err := s.submitVideo(ctx, jobId, candidateId, file)
	if err != nil {
		s.metrics.stage(string(domain.StageVideo), resultFailed)
		return domain.SubmitResult{}, err
	}
	s.metrics.stage(string(domain.StageVideo), resultSuccess)
	return res, nil
}

func (s *pipelineService) submitVideo(ctx context.Context, jobId, candidateId int64, file domain.File) (domain.SubmitResult, error) {
	app, err := s.repo.FindByJobAndCandidate(ctx, jobId, candidateId)
	if errors.Is(err, ErrApplicationNotFound) {
		return domain.SubmitResult{}, ErrResumeRequired
	}
	if err != nil {
		return domain.SubmitResult{}, err
	}
	if !app.HasResume() {
		return domain.SubmitResult{}, ErrResumeRequired
	}
	if file.Empty() {
		return domain.SubmitResult{}, ErrInvalidVideo
	}
	contentType := videoContentType(file)
	if !strings.HasPrefix(contentType, "video/") {
		return domain.SubmitResult{}, fmt.Errorf("%w: %s", ErrInvalidVideo, contentType)
	}
	path, err := s.upload(ctx, app.Id, storage.KindVideo, file, contentType)
	if err != nil {
		return domain.SubmitResult{}, err
	}
	return s.saveVideo(ctx, app.Id, path)
}

func (s *pipelineService) saveVideo(ctx context.Context, id int64, path string) (domain.SubmitResult, error) {
	err := s.repo.UpdateStage(ctx, id,
		domain.Predecessors(domain.StatusVideoUploaded), domain.StatusVideoUploaded,
		repository.StageChange{VideoPath: path})
	if err != nil {
		return domain.SubmitResult{}, err
	}
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.SubmitResult{}, err
	}
	return domain.SubmitResult{
		Application: app,
		Stage:       domain.StageInterview,
	}, nil
}

// videoContentType 优先使用嗅探的结果，嗅探不出来才相信客户端声明的类型
func videoContentType(file domain.File) string {
	sniffed := domain.BaseContentType(mimetype.Detect(file.Data).String())
	if sniffed != octetStream {
		return sniffed
	}
	declared := domain.BaseContentType(file.ContentType)
	if declared == "" {
		return octetStream
	}
	return declared
}

func (s *pipelineService) upload(ctx context.Context, id int64, kind storage.Kind,
	file domain.File, contentType string) (string, error) {
	path := storage.BuildPath(strconv.FormatInt(id, 10), kind, file.Name, time.Now())
	return s.storage.Upload(ctx, storage.Object{
		Path:        path,
		ContentType: contentType,
		Size:        int64(len(file.Data)),
		Body:        bytes.NewReader(file.Data),
	})
}

func (s *pipelineService) MarkInterviewStarted(ctx context.Context, id int64) error {
	return s.repo.UpdateStage(ctx, id,
		domain.Predecessors(domain.StatusInterviewStarted), domain.StatusInterviewStarted,
		repository.StageChange{})
}

func (s *pipelineService) CompleteInterview(ctx context.Context, id int64, lines []string) ([]string, error) {
	transcript := domain.Transcript(lines)
	if strings.TrimSpace(transcript) == "" {
		// 之前的面试记录不能被空记录覆盖
		err := s.repo.UpdateStage(ctx, id,
			domain.Predecessors(domain.StatusInterviewCompleted), domain.StatusInterviewCompleted,
			repository.StageChange{})
		if err != nil {
			s.metrics.stage(string(domain.StageInterview), resultFailed)
			return nil, err
		}
		s.metrics.stage(string(domain.StageInterview), resultSuccess)
		return nil, nil
	}
	if err := s.repo.SaveTranscript(ctx, id, transcript); err != nil {
		s.metrics.stage(string(domain.StageInterview), resultFailed)
		return nil, err
	}
	app, err := s.repo.FindByID(ctx, id)
	if err == nil {
		err = s.assess(ctx, app.Id, app.JobId, transcript)
	}
	if err != nil {
		s.logger.Error("面试评估失败", elog.Int64("applicationId", id), elog.FieldErr(err))
		s.metrics.stage(string(domain.StageInterview), resultWarning)
		return []string{WarningInterviewAnalysisFailed}, nil
	}
	s.metrics.stage(string(domain.StageInterview), resultSuccess)
	return nil, nil
}
