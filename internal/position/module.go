package position

import (
	"github.com/mekongtech/recruitment/internal/position/internal/domain"
	"github.com/mekongtech/recruitment/internal/position/internal/service"
	"github.com/mekongtech/recruitment/internal/position/internal/web"
)

type (
	Handler         = web.Handler
	Service         = service.PositionService
	Position        = domain.Position
	ScoringOverride = domain.ScoringOverride
)

type Module struct {
	Hdl *Handler
	Svc Service
}
