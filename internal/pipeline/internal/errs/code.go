package errs

var (
	SystemError       = ErrorCode{Code: 505001, Msg: "系统错误"}
	TerminalStatus    = ErrorCode{Code: 505002, Msg: "候选人已处于终态"}
	InvalidTransition = ErrorCode{Code: 505003, Msg: "非法的状态流转"}
	NotEligible       = ErrorCode{Code: 505004, Msg: "二面平均分未达到终面门槛"}
	InvalidStatus     = ErrorCode{Code: 505005, Msg: "非法的目标状态"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
