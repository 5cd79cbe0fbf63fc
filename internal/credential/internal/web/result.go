package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/mekongtech/recruitment/internal/credential/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	credentialNotFoundResult = ginx.Result{
		Code: errs.CredentialNotFound.Code,
		Msg:  errs.CredentialNotFound.Msg,
	}
	credentialExpiredResult = ginx.Result{
		Code: errs.CredentialExpired.Code,
		Msg:  errs.CredentialExpired.Msg,
	}
	credentialLockedResult = ginx.Result{
		Code: errs.CredentialLocked.Code,
		Msg:  errs.CredentialLocked.Msg,
	}
	invalidSecretResult = ginx.Result{
		Code: errs.InvalidSecret.Code,
		Msg:  errs.InvalidSecret.Msg,
	}
	cannotExtendExpiredResult = ginx.Result{
		Code: errs.CannotExtendExpired.Code,
		Msg:  errs.CannotExtendExpired.Msg,
	}
)
