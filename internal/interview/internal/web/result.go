package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/mekongtech/recruitment/internal/interview/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	evaluationCompletedResult = ginx.Result{
		Code: errs.EvaluationCompleted.Code,
		Msg:  errs.EvaluationCompleted.Msg,
	}
	notAssignedInterviewerResult = ginx.Result{
		Code: errs.NotAssignedInterviewer.Code,
		Msg:  errs.NotAssignedInterviewer.Msg,
	}
	invalidScoreResult = ginx.Result{
		Code: errs.InvalidScore.Code,
		Msg:  errs.InvalidScore.Msg,
	}
	noCompletedEvaluationResult = ginx.Result{
		Code: errs.NoCompletedEvaluation.Code,
		Msg:  errs.NoCompletedEvaluation.Msg,
	}
	notEligibleForFinalResult = ginx.Result{
		Code: errs.NotEligibleForFinal.Code,
		Msg:  errs.NotEligibleForFinal.Msg,
	}
)
