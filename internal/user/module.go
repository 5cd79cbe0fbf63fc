package user

import (
	"github.com/mekongtech/recruitment/internal/user/internal/domain"
	"github.com/mekongtech/recruitment/internal/user/internal/service"
	"github.com/mekongtech/recruitment/internal/user/internal/web"
)

type (
	AdminHandler = web.AdminHandler
	Handler      = web.Handler
	Service      = service.UserService
	User         = domain.User
	Role         = domain.Role
	Capability   = domain.Capability
)

const (
	RoleAdmin       = domain.RoleAdmin
	RoleHR          = domain.RoleHR
	RoleInterviewer = domain.RoleInterviewer
	RoleCTO         = domain.RoleCTO
	RoleCEO         = domain.RoleCEO
)

type Module struct {
	AdminHdl *AdminHandler
	Hdl      *Handler
	Svc      Service
}
