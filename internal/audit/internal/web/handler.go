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

	"github.com/mekongtech/recruitment/internal/audit/internal/domain"
	"github.com/mekongtech/recruitment/internal/audit/internal/service"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 审计记录查询，只挂在 admin 服务上
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/audit")
	g.POST("/list", ginx.B[ListReq](h.List))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	records, total, err := h.svc.List(ctx, req.Biz, req.BizID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Record]{
			List: slice.Map(records, func(idx int, src domain.Record) Record {
				return Record{
					ID:        src.ID,
					ActorID:   src.ActorID,
					ActorRole: src.ActorRole,
					Action:    src.Action,
					Biz:       src.Biz,
					BizID:     src.BizID,
					Detail:    src.Detail,
					Ctime:     src.Ctime,
				}
			}),
			Total: int(total),
		},
	}, nil
}
