package web

type OverrideReq struct {
	CandidateID int64  `json:"candidateId"`
	Status      string `json:"status"`
	Note        string `json:"note"`
}

type ResolveReviewReq struct {
	CandidateID int64  `json:"candidateId"`
	Approved    bool   `json:"approved"`
	Note        string `json:"note"`
}
