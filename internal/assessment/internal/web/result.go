package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/mekongtech/recruitment/internal/assessment/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateSubmissionResult = ginx.Result{
		Code: errs.DuplicateSubmission.Code,
		Msg:  errs.DuplicateSubmission.Msg,
	}
	questionSetNotFoundResult = ginx.Result{
		Code: errs.QuestionSetNotFound.Code,
		Msg:  errs.QuestionSetNotFound.Msg,
	}
	noActiveSessionResult = ginx.Result{
		Code: errs.NoActiveSession.Code,
		Msg:  errs.NoActiveSession.Msg,
	}
)
