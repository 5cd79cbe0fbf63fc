package notification

import (
	"github.com/mekongtech/recruitment/internal/notification/internal/service"
)

type Service = service.Service

type Module struct {
	Svc Service
}
