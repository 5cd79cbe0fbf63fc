package credential

import (
	"github.com/mekongtech/recruitment/internal/credential/internal/domain"
	"github.com/mekongtech/recruitment/internal/credential/internal/job"
	"github.com/mekongtech/recruitment/internal/credential/internal/service"
	"github.com/mekongtech/recruitment/internal/credential/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Credential   = domain.Credential
	Stage        = domain.Stage

	WeekendExtensionSweepJob = job.WeekendExtensionSweepJob
	ReminderSweepJob         = job.ReminderSweepJob
	ExpiryCleanupSweepJob    = job.ExpiryCleanupSweepJob
)

const (
	StageAssessment = domain.StageAssessment
	StageInterview  = domain.StageInterview
)

var (
	ErrCredentialNotFound  = service.ErrCredentialNotFound
	ErrCredentialExpired   = service.ErrCredentialExpired
	ErrCredentialLocked    = service.ErrCredentialLocked
	ErrInvalidSecret       = service.ErrInvalidSecret
	ErrCannotExtendExpired = service.ErrCannotExtendExpired
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service

	WeekendJob  *WeekendExtensionSweepJob
	ReminderJob *ReminderSweepJob
	ExpiryJob   *ExpiryCleanupSweepJob
}
