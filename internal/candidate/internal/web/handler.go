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
	"github.com/gin-gonic/gin"

	"github.com/mekongtech/recruitment/internal/candidate/internal/domain"
	"github.com/mekongtech/recruitment/internal/candidate/internal/service"
)

var _ ginx.Handler = &Handler{}

// Handler 候选人档案管理，HR 在主站上维护
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/candidates")
	g.POST("/create", ginx.B[CreateReq](h.Create))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.POST("/list", ginx.B[ListReq](h.List))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, domain.Candidate{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		PositionID: req.PositionID,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicatedCandidate) {
			return duplicatedCandidateResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	c, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toVO(c),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	candidates, total, err := h.svc.List(ctx, domain.Status(req.Status), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Candidate]{
			List: slice.Map(candidates, func(idx int, src domain.Candidate) Candidate {
				return h.toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) toVO(c domain.Candidate) Candidate {
	return Candidate{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		PositionID: c.PositionID,
		Status:     c.Status.String(),
		StatusNote: c.StatusNote,
		Ctime:      c.Ctime,
	}
}
