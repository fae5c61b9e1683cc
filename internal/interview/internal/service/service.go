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

	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/interview/internal/agent"
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/ecodeclub/hireflow/internal/job"
	"github.com/ecodeclub/hireflow/internal/pkg/media"
)

var (
	ErrVideoRequired      = errors.New("需要先上传视频")
	ErrInterviewCompleted = errors.New("面试已经完成")
	ErrJobNotFound        = errors.New("岗位不存在")
)

type OpenRequest struct {
	JobId             int64
	CandidateId       int64
	FirstName         string
	PronunciationHint string
}

type Service interface {
	// Open 创建并开始一个会话，broker 是这个候选人的媒体设备
	Open(ctx context.Context, req OpenRequest, broker *media.Broker) (*Session, error)
}

type service struct {
	apps     application.Service
	jobs     job.Service
	dialer   agent.Dialer
	registry *Registry
}

func NewService(apps application.Service, jobs job.Service, dialer agent.Dialer, registry *Registry) Service {
	return &service{
		apps:     apps,
		jobs:     jobs,
		dialer:   dialer,
		registry: registry,
	}
}

func (s *service) Open(ctx context.Context, req OpenRequest, broker *media.Broker) (*Session, error) {
	app, err := s.apps.FindByJobAndCandidate(ctx, req.JobId, req.CandidateId)
	if err != nil {
		return nil, err
	}
	if application.ResolveInitialStage(&app) != application.StageInterview {
		return nil, ErrVideoRequired
	}
	if app.Status == application.StatusInterviewCompleted {
		return nil, ErrInterviewCompleted
	}
	j, err := s.jobs.FindByID(ctx, req.JobId)
	if errors.Is(err, job.ErrJobNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询岗位失败 %w", err)
	}
	ic := domain.Context{
		JobTitle:           j.Title,
		JobDescription:     j.EffectiveDescription(),
		Requirements:       j.EffectiveRequirements(),
		CandidateFirstName: req.FirstName,
		PronunciationHint:  req.PronunciationHint,
		KeyAttributes:      app.KeyAttributes,
	}
	sess := newSession(app.Id, broker, s.dialer, s.apps)
	if err = s.registry.Register(ctx, sess); err != nil {
		return nil, err
	}
	if err = sess.Start(ctx, ic); err != nil {
		return nil, err
	}
	return sess, nil
}
