package web

type ScheduleReq struct {
	CandidateID   int64   `json:"candidateId"`
	InterviewerID int64   `json:"interviewerId"`
	ScheduledAt   int64   `json:"scheduledAt"`
	Duration      int     `json:"duration"`
	QuestionIDs   []int64 `json:"questionIds"`
}

type FinalizeReq struct {
	EvaluationID int64           `json:"evaluationId"`
	Scores       []QuestionScore `json:"scores"`
	Notes        string          `json:"notes"`
}

type QuestionScore struct {
	QuestionID int64   `json:"questionId"`
	Score      float64 `json:"score"`
}

type DetailReq struct {
	ID int64 `json:"id"`
}

type ListByCandidateReq struct {
	CandidateID int64 `json:"candidateId"`
}

type AdvanceReq struct {
	CandidateID int64 `json:"candidateId"`
}

type Evaluation struct {
	ID             int64           `json:"id"`
	CandidateID    int64           `json:"candidateId"`
	InterviewerID  int64           `json:"interviewerId"`
	ScheduledAt    int64           `json:"scheduledAt"`
	Duration       int             `json:"duration"`
	QuestionIDs    []int64         `json:"questionIds"`
	Scores         []QuestionScore `json:"scores"`
	Notes          string          `json:"notes"`
	OverallScore   float64         `json:"overallScore"`
	Recommendation string          `json:"recommendation"`
	Status         string          `json:"status"`
	CompletedAt    int64           `json:"completedAt"`
}
