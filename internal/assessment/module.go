package assessment

import (
	"github.com/mekongtech/recruitment/internal/assessment/internal/domain"
	"github.com/mekongtech/recruitment/internal/assessment/internal/service"
	"github.com/mekongtech/recruitment/internal/assessment/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	QuestionSet  = domain.QuestionSet
	Question     = domain.Question
	Answer       = domain.Answer
	Session      = domain.Session
	Result       = domain.Result
)

var (
	ErrDuplicateSubmission = service.ErrDuplicateSubmission
	ErrQuestionSetNotFound = service.ErrQuestionSetNotFound
	ErrNoActiveSession     = service.ErrNoActiveSession
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}
