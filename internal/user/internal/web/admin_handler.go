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

	"github.com/mekongtech/recruitment/internal/user/internal/domain"
	"github.com/mekongtech/recruitment/internal/user/internal/service"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 账号管理，只挂在 admin 服务上
type AdminHandler struct {
	svc service.UserService
}

func NewAdminHandler(svc service.UserService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/users")
	g.POST("/create", ginx.B[CreateReq](h.Create))
	g.POST("/list", ginx.B[ListReq](h.List))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreateReq) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, domain.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicatedEmail):
			return duplicatedEmailResult, err
		case errors.Is(err, service.ErrInvalidRole):
			return invalidRoleResult, err
		default:
			return systemErrorResult, err
		}
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	users, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Profile]{
			List: slice.Map(users, func(idx int, src domain.User) Profile {
				return Profile{
					Id:    src.Id,
					Email: src.Email,
					Name:  src.Name,
					Role:  src.Role.String(),
				}
			}),
			Total: int(total),
		},
	}, nil
}
