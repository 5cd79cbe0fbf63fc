package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/mekongtech/recruitment/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidCredentialsResult = ginx.Result{
		Code: errs.InvalidCredentials.Code,
		Msg:  errs.InvalidCredentials.Msg,
	}
	duplicatedEmailResult = ginx.Result{
		Code: errs.DuplicatedEmail.Code,
		Msg:  errs.DuplicatedEmail.Msg,
	}
	invalidRoleResult = ginx.Result{
		Code: errs.InvalidRole.Code,
		Msg:  errs.InvalidRole.Msg,
	}
)
