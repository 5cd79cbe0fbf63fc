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

	"github.com/mekongtech/recruitment/internal/executive/internal/domain"
	"github.com/mekongtech/recruitment/internal/executive/internal/service"
)

var _ ginx.Handler = &Handler{}

// Handler 终面决策和薪酬审批。提交人的身份和角色都从会话里取，
// 请求体里不收 evaluatorId。
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/executive")
	g.POST("/submit", ginx.BS[SubmitReq](h.Submit))
	g.POST("/compensation/approve", ginx.BS[ApproveCompensationReq](h.ApproveCompensation))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.POST("/list", ginx.B[ListReq](h.List))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	d, err := h.svc.Submit(ctx, req.CandidateID, service.Submission{
		EvaluatorID:     sess.Claims().Uid,
		Role:            domain.Role(sess.Claims().Get("role").StringOrDefault("")),
		TechnicalScore:  req.TechnicalScore,
		CulturalScore:   req.CulturalScore,
		LeadershipScore: req.LeadershipScore,
		Recommendation:  domain.Recommendation(req.Recommendation),
		Notes:           req.Notes,
	})
	if err != nil {
		return submitErrorResult(err), err
	}
	return ginx.Result{
		Data: toVO(d),
	}, nil
}

func (h *Handler) ApproveCompensation(ctx *ginx.Context, req ApproveCompensationReq, sess session.Session) (ginx.Result, error) {
	d, err := h.svc.ApproveCompensation(ctx, req.CandidateID, sess.Claims().Uid,
		domain.Role(sess.Claims().Get("role").StringOrDefault("")), req.Notes)
	if err != nil {
		return submitErrorResult(err), err
	}
	return ginx.Result{
		Data: toVO(d),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	d, err := h.svc.Detail(ctx, req.CandidateID)
	if err != nil {
		if errors.Is(err, service.ErrDecisionNotFound) {
			return decisionNotFoundResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toVO(d),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	decisions, err := h.svc.List(ctx, domain.Status(req.Status), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(decisions, func(_ int, d domain.Decision) Decision {
			return toVO(d)
		}),
	}, nil
}

func submitErrorResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrNotExecutive):
		return notExecutiveResult
	case errors.Is(err, service.ErrInvalidScore):
		return invalidScoreResult
	case errors.Is(err, service.ErrInvalidRecommend):
		return invalidRecommendResult
	case errors.Is(err, service.ErrDecisionNotFound):
		return decisionNotFoundResult
	case errors.Is(err, service.ErrConcurrentSubmission):
		return concurrentSubmissionResult
	default:
		return systemErrorResult
	}
}

func toVO(d domain.Decision) Decision {
	return Decision{
		ID:                     d.ID,
		CandidateID:            d.CandidateID,
		Cto:                    toSlotVO(d.CTO),
		Ceo:                    toSlotVO(d.CEO),
		Status:                 string(d.Status),
		FinalScore:             d.FinalScore,
		FinalDecision:          d.FinalDecision.String(),
		CompletedAt:            d.CompletedAt,
		CompensationStatus:     string(d.CompensationStatus),
		CompensationApprovedAt: d.CompensationApprovedAt,
	}
}

func toSlotVO(s domain.Slot) Slot {
	return Slot{
		EvaluatorID:          s.EvaluatorID,
		TechnicalScore:       s.TechnicalScore,
		CulturalScore:        s.CulturalScore,
		LeadershipScore:      s.LeadershipScore,
		WeightedScore:        s.WeightedScore,
		Recommendation:       string(s.Recommendation),
		Notes:                s.Notes,
		EvaluatedAt:          s.EvaluatedAt,
		CompensationApproved: s.CompensationApproved,
		CompensationNotes:    s.CompensationNotes,
	}
}
