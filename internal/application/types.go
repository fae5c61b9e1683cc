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

package application

import (
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/event/consumer"
	"github.com/ecodeclub/hireflow/internal/application/internal/job"
	"github.com/ecodeclub/hireflow/internal/application/internal/service"
	"github.com/ecodeclub/hireflow/internal/application/internal/web"
)

type Service = service.Service
type Handler = web.Handler
type ResumeAnalysisEventConsumer = consumer.ResumeAnalysisEventConsumer
type RedriveAnalysisJob = job.RedriveAnalysisJob

type Application = domain.Application
type Status = domain.Status
type Stage = domain.Stage
type File = domain.File
type SubmitResult = domain.SubmitResult

const (
	StatusInterviewStarted   = domain.StatusInterviewStarted
	StatusInterviewCompleted = domain.StatusInterviewCompleted

	StageResume    = domain.StageResume
	StageVideo     = domain.StageVideo
	StageInterview = domain.StageInterview
)

var (
	ErrApplicationNotFound = service.ErrApplicationNotFound
	ErrResumeRequired      = service.ErrResumeRequired
)

// ResolveInitialStage 候选人进入页面的时候应该看到的阶段
func ResolveInitialStage(app *Application) Stage {
	return domain.ResolveInitialStage(app)
}
