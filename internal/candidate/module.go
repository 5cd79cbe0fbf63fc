package candidate

import (
	"github.com/mekongtech/recruitment/internal/candidate/internal/domain"
	"github.com/mekongtech/recruitment/internal/candidate/internal/service"
	"github.com/mekongtech/recruitment/internal/candidate/internal/web"
)

type (
	Handler   = web.Handler
	Service   = service.Service
	Candidate = domain.Candidate
	Status    = domain.Status
)

const (
	StatusPending           = domain.StatusPending
	StatusStep1Passed       = domain.StatusStep1Passed
	StatusStep1ManualReview = domain.StatusStep1ManualReview
	StatusStep1Rejected     = domain.StatusStep1Rejected
	StatusStep2Evaluated    = domain.StatusStep2Evaluated
	StatusStep3Pending      = domain.StatusStep3Pending
	StatusHired             = domain.StatusHired
	StatusRejected          = domain.StatusRejected
)

var (
	ErrDuplicatedCandidate = service.ErrDuplicatedCandidate
	ErrStatusMismatch      = service.ErrStatusMismatch
)

type Module struct {
	Hdl *Handler
	Svc Service
}
