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
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/storage"
)

var ErrUploadNotFound = errors.New("没有找到直传的对象")

func (s *pipelineService) UploadCredentials(ctx context.Context, jobId, candidateId int64,
	kind domain.ArtifactKind, contentType string) (storage.Credentials, error) {
	contentType = domain.BaseContentType(contentType)
	switch kind {
	case domain.ArtifactResume:
		if !slice.Contains(resumeContentTypes, contentType) {
			return storage.Credentials{}, ErrInvalidResume
		}
	case domain.ArtifactVideo:
		if !strings.HasPrefix(contentType, "video/") {
			return storage.Credentials{}, ErrInvalidVideo
		}
	default:
		return storage.Credentials{}, fmt.Errorf("%w: %s", ErrUnknownArtifact, kind)
	}
	app, err := s.uploadTarget(ctx, jobId, candidateId, kind)
	if err != nil {
		return storage.Credentials{}, err
	}
	return s.storage.TempCredentials(ctx, uploadPrefix(app.Id, kind), contentType)
}

func (s *pipelineService) ConfirmUpload(ctx context.Context, jobId, candidateId int64,
	kind domain.ArtifactKind, path string) (domain.SubmitResult, error) {
	var stage domain.Stage
	switch kind {
	case domain.ArtifactResume:
		stage = domain.StageResume
	case domain.ArtifactVideo:
		stage = domain.StageVideo
	default:
		return domain.SubmitResult{}, fmt.Errorf("%w: %s", ErrUnknownArtifact, kind)
	}
	res, err := s.confirmUpload(ctx, jobId, candidateId, kind, path)
	switch {
	case err != nil:
		s.metrics.stage(string(stage), resultFailed)
	case len(res.Warnings) > 0:
		s.metrics.stage(string(stage), resultWarning)
	default:
		s.metrics.stage(string(stage), resultSuccess)
	}
	return res, err
}

func (s *pipelineService) confirmUpload(ctx context.Context, jobId, candidateId int64,
	kind domain.ArtifactKind, path string) (domain.SubmitResult, error) {
	app, err := s.uploadTarget(ctx, jobId, candidateId, kind)
	if err != nil {
		return domain.SubmitResult{}, err
	}
	prefix := uploadPrefix(app.Id, kind) + "/"
	if len(path) <= len(prefix) || !strings.HasPrefix(path, prefix) || strings.Contains(path, "..") {
		return domain.SubmitResult{}, fmt.Errorf("%w: %s", ErrUploadNotFound, path)
	}
	obj, err := s.storage.Stat(ctx, path)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return domain.SubmitResult{}, fmt.Errorf("%w: %s", ErrUploadNotFound, path)
	}
	if err != nil {
		return domain.SubmitResult{}, err
	}
	contentType := domain.BaseContentType(obj.ContentType)
	if kind == domain.ArtifactResume {
		if obj.Size == 0 || !slice.Contains(resumeContentTypes, contentType) {
			return domain.SubmitResult{}, fmt.Errorf("%w: %s", ErrInvalidResume, contentType)
		}
		return s.saveResume(ctx, app.Id, path)
	}
	if obj.Size == 0 || !strings.HasPrefix(contentType, "video/") {
		return domain.SubmitResult{}, fmt.Errorf("%w: %s", ErrInvalidVideo, contentType)
	}
	return s.saveVideo(ctx, app.Id, path)
}

// uploadTarget 直传只能用于已经存在的申请，视频还要求已经有简历
func (s *pipelineService) uploadTarget(ctx context.Context, jobId, candidateId int64,
	kind domain.ArtifactKind) (domain.Application, error) {
	app, err := s.repo.FindByJobAndCandidate(ctx, jobId, candidateId)
	if kind != domain.ArtifactVideo {
		return app, err
	}
	if errors.Is(err, ErrApplicationNotFound) {
		return domain.Application{}, ErrResumeRequired
	}
	if err != nil {
		return domain.Application{}, err
	}
	if !app.HasResume() {
		return domain.Application{}, ErrResumeRequired
	}
	return app, nil
}

func uploadPrefix(id int64, kind domain.ArtifactKind) string {
	return fmt.Sprintf("%d/%s", id, kind)
}
