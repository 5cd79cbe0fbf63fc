package web

type SaveReq struct {
	Position Position `json:"position"`
}

type DetailReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Position struct {
	ID                   int64   `json:"id"`
	Title                string  `json:"title"`
	Department           string  `json:"department"`
	Level                string  `json:"level"`
	Description          string  `json:"description"`
	Status               string  `json:"status"`
	AutoApproveThreshold float64 `json:"autoApproveThreshold"`
	ManualReviewMin      float64 `json:"manualReviewMin"`
	IQWeight             float64 `json:"iqWeight"`
	TechWeight           float64 `json:"techWeight"`
}
