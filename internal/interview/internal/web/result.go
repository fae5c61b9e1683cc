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

	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/interview/internal/agent"
	"github.com/ecodeclub/hireflow/internal/interview/internal/errs"
	"github.com/ecodeclub/hireflow/internal/interview/internal/service"
	"github.com/ecodeclub/hireflow/internal/pkg/media"
)

const redirectJobs = "/jobs"

// 错误的种类，前端据此决定文案
const (
	kindNotFound      = "not_found"
	kindStage         = "stage"
	kindSessionActive = "session_active"
	kindPermission    = "permission"
	kindDevice        = "device"
	kindConfiguration = "configuration"
	kindTransient     = "transient"
	kindSystem        = "system"
)

type errorResult struct {
	code errs.ErrorCode
	vo   ErrorVO
}

func classify(err error) errorResult {
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return newErrorResult(errs.JobNotFound, kindNotFound, false, redirectJobs)
	case errors.Is(err, application.ErrApplicationNotFound):
		return newErrorResult(errs.ApplicationNotFound, kindNotFound, false, redirectJobs)
	case errors.Is(err, service.ErrVideoRequired):
		return newErrorResult(errs.VideoRequired, kindStage, false, "")
	case errors.Is(err, service.ErrInterviewCompleted):
		return newErrorResult(errs.InterviewCompleted, kindStage, false, "")
	case errors.Is(err, service.ErrSessionActive):
		return newErrorResult(errs.SessionActive, kindSessionActive, true, "")
	case errors.Is(err, media.ErrPermissionDenied):
		return newErrorResult(errs.MediaPermission, kindPermission, true, "")
	case errors.Is(err, media.ErrDeviceUnavailable):
		return newErrorResult(errs.MediaUnavailable, kindDevice, true, "")
	case agent.IsConfigurationError(err):
		return newErrorResult(errs.AgentConfiguration, kindConfiguration, false, "")
	case agent.IsTransientError(err):
		return newErrorResult(errs.AgentUnavailable, kindTransient, true, "")
	default:
		return newErrorResult(errs.SystemError, kindSystem, true, "")
	}
}

func newErrorResult(code errs.ErrorCode, kind string, retryable bool, redirect string) errorResult {
	return errorResult{
		code: code,
		vo: ErrorVO{
			Code:      code.Code,
			Kind:      kind,
			Retryable: retryable,
			Redirect:  redirect,
		},
	}
}
