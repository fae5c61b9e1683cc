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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hireflow/internal/application/internal/errs"
)

// 找不到岗位或者申请的时候前端跳回岗位列表
const redirectJobs = "/jobs"

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidResumeResult = ginx.Result{
		Code: errs.InvalidResume.Code,
		Msg:  errs.InvalidResume.Msg,
	}
	invalidVideoResult = ginx.Result{
		Code: errs.InvalidVideo.Code,
		Msg:  errs.InvalidVideo.Msg,
	}
	resumeRequiredResult = ginx.Result{
		Code: errs.ResumeRequired.Code,
		Msg:  errs.ResumeRequired.Msg,
	}
	applicationNotFoundResult = ginx.Result{
		Code: errs.ApplicationNotFound.Code,
		Msg:  errs.ApplicationNotFound.Msg,
		Data: RedirectVO{Redirect: redirectJobs},
	}
	jobNotFoundResult = ginx.Result{
		Code: errs.JobNotFound.Code,
		Msg:  errs.JobNotFound.Msg,
		Data: RedirectVO{Redirect: redirectJobs},
	}
	artifactNotReadyResult = ginx.Result{
		Code: errs.ArtifactNotReady.Code,
		Msg:  errs.ArtifactNotReady.Msg,
	}
	invalidArtifactKindResult = ginx.Result{
		Code: errs.InvalidArtifactKind.Code,
		Msg:  errs.InvalidArtifactKind.Msg,
	}
	uploadNotFoundResult = ginx.Result{
		Code: errs.UploadNotFound.Code,
		Msg:  errs.UploadNotFound.Msg,
	}
)
