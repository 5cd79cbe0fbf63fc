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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"

	"github.com/mekongtech/recruitment/internal/candidate"
	"github.com/mekongtech/recruitment/internal/pipeline/internal/domain"
	"github.com/mekongtech/recruitment/internal/pipeline/internal/service"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 终态覆盖和人工复核裁决，只挂在 admin 服务上
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/pipeline")
	g.POST("/override", ginx.BS[OverrideReq](h.Override))
	g.POST("/manual-review/resolve", ginx.BS[ResolveReviewReq](h.ResolveManualReview))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) Override(ctx *ginx.Context, req OverrideReq, sess session.Session) (ginx.Result, error) {
	actor := domain.Actor{
		ID:   sess.Claims().Uid,
		Role: sess.Claims().Get("role").StringOrDefault(""),
	}
	err := h.svc.Override(ctx, req.CandidateID, candidate.Status(req.Status), actor, req.Note)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			return invalidStatusResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) ResolveManualReview(ctx *ginx.Context, req ResolveReviewReq, sess session.Session) (ginx.Result, error) {
	actor := domain.Actor{
		ID:   sess.Claims().Uid,
		Role: sess.Claims().Get("role").StringOrDefault(""),
	}
	err := h.svc.ResolveManualReview(ctx, req.CandidateID, req.Approved, actor, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTerminalStatus):
			return terminalStatusResult, err
		case errors.Is(err, service.ErrInvalidTransition):
			return invalidTransitionResult, err
		default:
			return systemErrorResult, err
		}
	}
	return ginx.Result{Msg: "OK"}, nil
}
