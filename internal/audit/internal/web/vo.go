package web

type ListReq struct {
	Biz    string `json:"biz"`
	BizID  int64  `json:"bizId"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type Record struct {
	ID        int64  `json:"id"`
	ActorID   int64  `json:"actorId"`
	ActorRole string `json:"actorRole"`
	Action    string `json:"action"`
	Biz       string `json:"biz"`
	BizID     int64  `json:"bizId"`
	Detail    string `json:"detail"`
	Ctime     int64  `json:"ctime"`
}
