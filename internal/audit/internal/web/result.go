package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/mekongtech/recruitment/internal/audit/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)
