package errs

var (
	SystemError            = ErrorCode{Code: 506001, Msg: "系统错误"}
	EvaluationCompleted    = ErrorCode{Code: 506002, Msg: "面试评估已定稿"}
	NotAssignedInterviewer = ErrorCode{Code: 506003, Msg: "你不是这场面试的面试官"}
	InvalidScore           = ErrorCode{Code: 506004, Msg: "打分必须在0到10之间"}
	NoCompletedEvaluation  = ErrorCode{Code: 506005, Msg: "还没有已定稿的面试评估"}
	NotEligibleForFinal    = ErrorCode{Code: 506006, Msg: "二面平均分未达到终面门槛"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
