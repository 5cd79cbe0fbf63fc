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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"

	"github.com/mekongtech/recruitment/internal/position/internal/domain"
	"github.com/mekongtech/recruitment/internal/position/internal/service"
)

var _ ginx.Handler = &Handler{}

// Handler 岗位管理，HR 在主站上维护
type Handler struct {
	svc service.PositionService
}

func NewHandler(svc service.PositionService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/positions")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.POST("/list", ginx.B[ListReq](h.List))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, h.toDomain(req.Position))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toVO(p),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	positions, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Position]{
			List: slice.Map(positions, func(idx int, src domain.Position) Position {
				return h.toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) toDomain(p Position) domain.Position {
	return domain.Position{
		ID:          p.ID,
		Title:       p.Title,
		Department:  p.Department,
		Level:       p.Level,
		Description: p.Description,
		Status:      domain.PositionStatus(p.Status),
		Scoring: domain.ScoringOverride{
			AutoApproveThreshold: p.AutoApproveThreshold,
			ManualReviewMin:      p.ManualReviewMin,
			IQWeight:             p.IQWeight,
			TechWeight:           p.TechWeight,
		},
	}
}

func (h *Handler) toVO(p domain.Position) Position {
	return Position{
		ID:                   p.ID,
		Title:                p.Title,
		Department:           p.Department,
		Level:                p.Level,
		Description:          p.Description,
		Status:               p.Status.String(),
		AutoApproveThreshold: p.Scoring.AutoApproveThreshold,
		ManualReviewMin:      p.Scoring.ManualReviewMin,
		IQWeight:             p.Scoring.IQWeight,
		TechWeight:           p.Scoring.TechWeight,
	}
}
