package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hireflow/internal/analysis/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidDocumentResult = ginx.Result{
		Code: errs.InvalidDocument.Code,
		Msg:  errs.InvalidDocument.Msg,
	}
	jobNotFoundResult = ginx.Result{
		Code: errs.JobNotFound.Code,
		Msg:  errs.JobNotFound.Msg,
	}
	documentAnalysisResult = ginx.Result{
		Code: errs.DocumentAnalysis.Code,
		Msg:  errs.DocumentAnalysis.Msg,
	}
)
