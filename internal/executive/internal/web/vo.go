package web

type SubmitReq struct {
	CandidateID     int64   `json:"candidateId"`
	TechnicalScore  float64 `json:"technicalScore"`
	CulturalScore   float64 `json:"culturalScore"`
	LeadershipScore float64 `json:"leadershipScore"`
	Recommendation  string  `json:"recommendation"`
	Notes           string  `json:"notes"`
}

type ApproveCompensationReq struct {
	CandidateID int64  `json:"candidateId"`
	Notes       string `json:"notes"`
}

type DetailReq struct {
	CandidateID int64 `json:"candidateId"`
}

type ListReq struct {
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type Slot struct {
	EvaluatorID     int64   `json:"evaluatorId"`
	TechnicalScore  float64 `json:"technicalScore"`
	CulturalScore   float64 `json:"culturalScore"`
	LeadershipScore float64 `json:"leadershipScore"`
	WeightedScore   float64 `json:"weightedScore"`
	Recommendation  string  `json:"recommendation"`
	Notes           string  `json:"notes"`
	EvaluatedAt     int64   `json:"evaluatedAt"`
	// CompensationApproved 薪酬包单侧审批标记
	CompensationApproved bool   `json:"compensationApproved"`
	CompensationNotes    string `json:"compensationNotes"`
}

type Decision struct {
	ID                     int64   `json:"id"`
	CandidateID            int64   `json:"candidateId"`
	Cto                    Slot    `json:"cto"`
	Ceo                    Slot    `json:"ceo"`
	Status                 string  `json:"status"`
	FinalScore             float64 `json:"finalScore"`
	FinalDecision          string  `json:"finalDecision"`
	CompletedAt            int64   `json:"completedAt"`
	CompensationStatus     string  `json:"compensationStatus"`
	CompensationApprovedAt int64   `json:"compensationApprovedAt"`
}
