package errs

var (
	SystemError         = ErrorCode{Code: 504001, Msg: "系统错误"}
	DuplicateSubmission = ErrorCode{Code: 504002, Msg: "请勿重复提交笔试"}
	QuestionSetNotFound = ErrorCode{Code: 504003, Msg: "卷子不存在"}
	NoActiveSession     = ErrorCode{Code: 504004, Msg: "没有进行中的答题会话"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
