package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/mekongtech/recruitment/internal/candidate/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicatedCandidateResult = ginx.Result{
		Code: errs.DuplicatedCandidate.Code,
		Msg:  errs.DuplicatedCandidate.Msg,
	}
)
