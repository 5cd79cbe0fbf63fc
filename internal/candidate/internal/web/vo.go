package web

type CreateReq struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PositionID int64  `json:"positionId"`
}

type DetailReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type Candidate struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PositionID int64  `json:"positionId"`
	Status     string `json:"status"`
	StatusNote string `json:"statusNote"`
	Ctime      int64  `json:"ctime"`
}
