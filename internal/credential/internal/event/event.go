package event

const auditEvents = "audit_events"

type AuditEvent struct {
	Key       string `json:"key"`
	ActorID   int64  `json:"actor_id"`
	ActorRole string `json:"actor_role"`
	Action    string `json:"action"`
	Biz       string `json:"biz"`
	BizID     int64  `json:"biz_id"`
	Detail    string `json:"detail"`
}
