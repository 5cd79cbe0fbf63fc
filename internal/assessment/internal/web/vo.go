package web

type SaveQuestionSetReq struct {
	QuestionSet QuestionSet `json:"questionSet"`
}

type QuestionSet struct {
	ID               int64      `json:"id"`
	PositionID       int64      `json:"positionId"`
	Name             string     `json:"name"`
	TimeLimitMinutes int        `json:"timeLimitMinutes"`
	Questions        []Question `json:"questions"`
}

type Question struct {
	ID       int64    `json:"id"`
	Type     string   `json:"type"`
	Category string   `json:"category"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	// CorrectAnswer 和 Keywords 只在管理端出现，考卷接口不下发
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
	Points        float64  `json:"points"`
}

type SetDetailReq struct {
	ID int64 `json:"id"`
}

type ListSetsReq struct {
	PositionID int64 `json:"positionId"`
	Offset     int   `json:"offset"`
	Limit      int   `json:"limit"`
}

type PaperReq struct {
	SetID int64 `json:"setId"`
}

type Paper struct {
	Set     QuestionSet `json:"set"`
	Session Session     `json:"session"`
}

// Session 答题会话视图，deadline 为0表示不限时
type Session struct {
	SetID     int64   `json:"setId"`
	StartedAt int64   `json:"startedAt"`
	Deadline  int64   `json:"deadline"`
	Remaining []int64 `json:"remaining"`
	Answered  int     `json:"answered"`
}

type SaveProgressReq struct {
	Answers []Answer `json:"answers"`
}

type SubmitReq struct {
	SetID   int64    `json:"setId"`
	Answers []Answer `json:"answers"`
}

type Answer struct {
	QuestionID int64  `json:"questionId"`
	Content    string `json:"content"`
}

type ResultReq struct {
	CandidateID int64 `json:"candidateId"`
}

type Result struct {
	CandidateID    int64           `json:"candidateId"`
	SetID          int64           `json:"setId"`
	Overall        float64         `json:"overall"`
	Classification string          `json:"classification"`
	Categories     []CategoryScore `json:"categories"`
	Questions      []QuestionScore `json:"questions"`
	Ctime          int64           `json:"ctime"`
}

type CategoryScore struct {
	Category   string  `json:"category"`
	Awarded    float64 `json:"awarded"`
	Possible   float64 `json:"possible"`
	Percentage float64 `json:"percentage"`
}

type QuestionScore struct {
	QuestionID int64   `json:"questionId"`
	Category   string  `json:"category"`
	Awarded    float64 `json:"awarded"`
	Possible   float64 `json:"possible"`
}

type Statistics struct {
	Total        int64   `json:"total"`
	Passed       int64   `json:"passed"`
	ManualReview int64   `json:"manualReview"`
	Failed       int64   `json:"failed"`
	AvgOverall   float64 `json:"avgOverall"`
}
