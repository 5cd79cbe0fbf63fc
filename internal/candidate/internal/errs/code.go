package errs

var (
	SystemError         = ErrorCode{Code: 502001, Msg: "系统错误"}
	DuplicatedCandidate = ErrorCode{Code: 502002, Msg: "候选人已投递该岗位"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
