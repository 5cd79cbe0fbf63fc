package errs

var (
	SystemError         = ErrorCode{Code: 508001, Msg: "系统错误"}
	CredentialNotFound  = ErrorCode{Code: 508002, Msg: "访问凭证不存在"}
	CredentialExpired   = ErrorCode{Code: 508003, Msg: "访问凭证已过期"}
	CredentialLocked    = ErrorCode{Code: 508004, Msg: "访问凭证已锁定"}
	InvalidSecret       = ErrorCode{Code: 508005, Msg: "密钥不正确"}
	CannotExtendExpired = ErrorCode{Code: 508006, Msg: "过期凭证不能延期"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
