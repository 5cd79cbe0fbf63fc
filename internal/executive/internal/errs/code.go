package errs

var (
	SystemError          = ErrorCode{Code: 507001, Msg: "系统错误"}
	NotExecutive         = ErrorCode{Code: 507002, Msg: "只有CTO和CEO能执行该操作"}
	DecisionNotFound     = ErrorCode{Code: 507003, Msg: "候选人还没有终面决策记录"}
	InvalidScore         = ErrorCode{Code: 507004, Msg: "打分必须在0到10之间"}
	InvalidRecommend     = ErrorCode{Code: 507005, Msg: "非法的建议"}
	ConcurrentSubmission = ErrorCode{Code: 507006, Msg: "并发提交冲突，请重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
