package pipeline

import (
	"github.com/mekongtech/recruitment/internal/pipeline/internal/domain"
	"github.com/mekongtech/recruitment/internal/pipeline/internal/service"
	"github.com/mekongtech/recruitment/internal/pipeline/internal/web"
)

type (
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Actor        = domain.Actor
	Step3Outcome = domain.Step3Outcome
	Step1Result  = service.Step1Result
)

const (
	Step1Passed       = service.Step1Passed
	Step1ManualReview = service.Step1ManualReview
	Step1Failed       = service.Step1Failed

	OutcomeHire         = domain.OutcomeHire
	OutcomeManualReview = domain.OutcomeManualReview
	OutcomeReject       = domain.OutcomeReject
)

var (
	SystemActor = domain.SystemActor

	ErrTerminalStatus      = service.ErrTerminalStatus
	ErrInvalidTransition   = service.ErrInvalidTransition
	ErrNotEligibleForStep3 = service.ErrNotEligibleForStep3
)

type Module struct {
	AdminHdl *AdminHandler
	Svc      Service
}
