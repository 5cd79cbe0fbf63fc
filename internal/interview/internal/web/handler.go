// Copyright 2024 mekongtech
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"

	"github.com/mekongtech/recruitment/internal/interview/internal/domain"
	"github.com/mekongtech/recruitment/internal/interview/internal/service"
	"github.com/mekongtech/recruitment/internal/pipeline"
)

var _ ginx.Handler = &Handler{}

// Handler 二面排期、定稿和推进终面。HR 和面试官共用主站。
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/interview")
	g.POST("/schedule", ginx.B[ScheduleReq](h.Schedule))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.POST("/list", ginx.B[ListByCandidateReq](h.ListByCandidate))
	g.POST("/my", ginx.S(h.MyEvaluations))
	g.POST("/finalize", ginx.BS[FinalizeReq](h.Finalize))
	g.POST("/advance", ginx.BS[AdvanceReq](h.AdvanceToFinal))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Schedule(ctx *ginx.Context, req ScheduleReq) (ginx.Result, error) {
	id, err := h.svc.Schedule(ctx, domain.Evaluation{
		CandidateID:   req.CandidateID,
		InterviewerID: req.InterviewerID,
		ScheduledAt:   req.ScheduledAt,
		Duration:      req.Duration,
		QuestionIDs:   req.QuestionIDs,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	e, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toVO(e),
	}, nil
}

func (h *Handler) ListByCandidate(ctx *ginx.Context, req ListByCandidateReq) (ginx.Result, error) {
	evaluations, err := h.svc.ListByCandidate(ctx, req.CandidateID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(evaluations, func(_ int, e domain.Evaluation) Evaluation {
			return toVO(e)
		}),
	}, nil
}

func (h *Handler) MyEvaluations(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	evaluations, err := h.svc.ListByInterviewer(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(evaluations, func(_ int, e domain.Evaluation) Evaluation {
			return toVO(e)
		}),
	}, nil
}

func (h *Handler) Finalize(ctx *ginx.Context, req FinalizeReq, sess session.Session) (ginx.Result, error) {
	e, err := h.svc.Finalize(ctx, req.EvaluationID, sess.Claims().Uid,
		slice.Map(req.Scores, func(_ int, s QuestionScore) domain.QuestionScore {
			return domain.QuestionScore{
				QuestionID: s.QuestionID,
				Score:      s.Score,
			}
		}), req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEvaluationCompleted):
			return evaluationCompletedResult, err
		case errors.Is(err, service.ErrNotAssignedInterviewer):
			return notAssignedInterviewerResult, err
		case errors.Is(err, service.ErrInvalidScore):
			return invalidScoreResult, err
		default:
			return systemErrorResult, err
		}
	}
	return ginx.Result{
		Data: toVO(e),
	}, nil
}

func (h *Handler) AdvanceToFinal(ctx *ginx.Context, req AdvanceReq, sess session.Session) (ginx.Result, error) {
	actor := pipeline.Actor{
		ID:   sess.Claims().Uid,
		Role: sess.Claims().Get("role").StringOrDefault(""),
	}
	err := h.svc.AdvanceToFinal(ctx, req.CandidateID, actor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoCompletedEvaluation):
			return noCompletedEvaluationResult, err
		case errors.Is(err, pipeline.ErrNotEligibleForStep3):
			return notEligibleForFinalResult, err
		default:
			return systemErrorResult, err
		}
	}
	return ginx.Result{Msg: "OK"}, nil
}

func toVO(e domain.Evaluation) Evaluation {
	return Evaluation{
		ID:            e.ID,
		CandidateID:   e.CandidateID,
		InterviewerID: e.InterviewerID,
		ScheduledAt:   e.ScheduledAt,
		Duration:      e.Duration,
		QuestionIDs:   e.QuestionIDs,
		Scores: slice.Map(e.Scores, func(_ int, s domain.QuestionScore) QuestionScore {
			return QuestionScore{
				QuestionID: s.QuestionID,
				Score:      s.Score,
			}
		}),
		Notes:          e.Notes,
		OverallScore:   e.OverallScore,
		Recommendation: e.Recommendation.String(),
		Status:         e.Status.String(),
		CompletedAt:    e.CompletedAt,
	}
}
