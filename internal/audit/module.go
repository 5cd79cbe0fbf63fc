package audit

import (
	"github.com/mekongtech/recruitment/internal/audit/internal/domain"
	"github.com/mekongtech/recruitment/internal/audit/internal/event"
	"github.com/mekongtech/recruitment/internal/audit/internal/service"
	"github.com/mekongtech/recruitment/internal/audit/internal/web"
)

type (
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Record       = domain.Record
)

type Module struct {
	AdminHdl *AdminHandler
	Svc      Service
	c        *event.AuditEventConsumer
}
