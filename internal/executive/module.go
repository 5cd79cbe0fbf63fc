package executive

import (
	"github.com/mekongtech/recruitment/internal/executive/internal/domain"
	"github.com/mekongtech/recruitment/internal/executive/internal/service"
	"github.com/mekongtech/recruitment/internal/executive/internal/web"
)

type (
	Handler    = web.Handler
	Service    = service.Service
	Submission = service.Submission
	Decision   = domain.Decision
	Role       = domain.Role
)

const (
	RoleCTO = domain.RoleCTO
	RoleCEO = domain.RoleCEO

	RecommendHire   = domain.RecommendHire
	RecommendReject = domain.RecommendReject
	RecommendReview = domain.RecommendReview
)

var (
	ErrNotExecutive     = service.ErrNotExecutive
	ErrDecisionNotFound = service.ErrDecisionNotFound
)

type Module struct {
	Hdl *Handler
	Svc Service
}
