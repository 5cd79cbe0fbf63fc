package interview

import (
	"github.com/mekongtech/recruitment/internal/interview/internal/domain"
	"github.com/mekongtech/recruitment/internal/interview/internal/service"
	"github.com/mekongtech/recruitment/internal/interview/internal/web"
)

type (
	Handler        = web.Handler
	Service        = service.Service
	Evaluation     = domain.Evaluation
	QuestionScore  = domain.QuestionScore
	Recommendation = domain.Recommendation
)

const (
	RecommendApprove = domain.RecommendApprove
	RecommendReview  = domain.RecommendReview
	RecommendReject  = domain.RecommendReject
)

var (
	ErrEvaluationCompleted    = service.ErrEvaluationCompleted
	ErrNotAssignedInterviewer = service.ErrNotAssignedInterviewer
	ErrNoCompletedEvaluation  = service.ErrNoCompletedEvaluation
)

type Module struct {
	Hdl *Handler
	Svc Service
}
