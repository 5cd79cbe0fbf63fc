package errs

var (
	SystemError        = ErrorCode{Code: 501001, Msg: "系统错误"}
	InvalidCredentials = ErrorCode{Code: 501002, Msg: "邮箱或密码不正确"}
	DuplicatedEmail    = ErrorCode{Code: 501003, Msg: "邮箱已被占用"}
	InvalidRole        = ErrorCode{Code: 501004, Msg: "非法角色"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
