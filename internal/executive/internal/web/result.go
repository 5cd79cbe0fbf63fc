package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/mekongtech/recruitment/internal/executive/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notExecutiveResult = ginx.Result{
		Code: errs.NotExecutive.Code,
		Msg:  errs.NotExecutive.Msg,
	}
	decisionNotFoundResult = ginx.Result{
		Code: errs.DecisionNotFound.Code,
		Msg:  errs.DecisionNotFound.Msg,
	}
	invalidScoreResult = ginx.Result{
		Code: errs.InvalidScore.Code,
		Msg:  errs.InvalidScore.Msg,
	}
	invalidRecommendResult = ginx.Result{
		Code: errs.InvalidRecommend.Code,
		Msg:  errs.InvalidRecommend.Msg,
	}
	concurrentSubmissionResult = ginx.Result{
		Code: errs.ConcurrentSubmission.Code,
		Msg:  errs.ConcurrentSubmission.Msg,
	}
)
