package web

type VerifyReq struct {
	LinkID string `json:"linkId"`
	Secret string `json:"secret"`
}

type IssueReq struct {
	CandidateID int64 `json:"candidateId"`
	Stage       uint8 `json:"stage"`
}

type ExtendReq struct {
	LinkID string `json:"linkId"`
	Days   int    `json:"days"`
	Reason string `json:"reason"`
}

type DeactivateReq struct {
	LinkID string `json:"linkId"`
	Reason string `json:"reason"`
}

type DetailReq struct {
	LinkID string `json:"linkId"`
}

type ListByCandidateReq struct {
	CandidateID int64 `json:"candidateId"`
}

// IssueResp 唯一一次能看到明文密钥的地方
type IssueResp struct {
	Credential Credential `json:"credential"`
	Secret     string     `json:"secret"`
}

type SweepResp struct {
	Affected int64 `json:"affected"`
}

type Credential struct {
	ID             int64  `json:"id"`
	CandidateID    int64  `json:"candidateId"`
	LinkID         string `json:"linkId"`
	Stage          uint8  `json:"stage"`
	IssuedAt       int64  `json:"issuedAt"`
	ExpiresAt      int64  `json:"expiresAt"`
	Status         string `json:"status"`
	FailedAttempts int    `json:"failedAttempts"`
	AutoExtended   bool   `json:"autoExtended"`
	ExtensionCount int    `json:"extensionCount"`
	LastUsedAt     int64  `json:"lastUsedAt"`
	LastUsedIP     string `json:"lastUsedIp"`
}
