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

	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
)

var (
	ErrArtifactNotReady = errors.New("这个阶段还没有产出")
	ErrUnknownArtifact  = errors.New("未知的产出类型")
)

func (s *pipelineService) Artifact(ctx context.Context, jobId, candidateId int64, kind domain.ArtifactKind) (domain.Artifact, error) {
	app, err := s.repo.FindByJobAndCandidate(ctx, jobId, candidateId)
	if err != nil {
		return domain.Artifact{}, err
	}
	res := domain.Artifact{Kind: kind}
	switch kind {
	case domain.ArtifactResume:
		if !app.HasResume() {
			return domain.Artifact{}, ErrArtifactNotReady
		}
		u, err := s.storage.SignedURL(ctx, app.ResumePath)
		if err != nil {
			return domain.Artifact{}, err
		}
		res.Resume = &domain.ResumeArtifact{
			URL:           u,
			Analysis:      app.AIAnalysis,
			KeyAttributes: app.KeyAttributes,
		}
	case domain.ArtifactVideo:
		if app.VideoPath == "" {
			return domain.Artifact{}, ErrArtifactNotReady
		}
		u, err := s.storage.SignedURL(ctx, app.VideoPath)
		if err != nil {
			return domain.Artifact{}, err
		}
		res.Video = &domain.VideoArtifact{URL: u}
	case domain.ArtifactInterview:
		if app.ConversationTranscript == "" && app.AssessmentScore == nil {
			return domain.Artifact{}, ErrArtifactNotReady
		}
		res.Interview = &domain.InterviewArtifact{
			Transcript: app.ConversationTranscript,
			Score:      app.AssessmentScore,
			Feedback:   app.InterviewFeedback,
		}
	default:
		return domain.Artifact{}, fmt.Errorf("%w: %s", ErrUnknownArtifact, kind)
	}
	return res, nil
}
