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

	"github.com/mekongtech/recruitment/internal/credential/internal/domain"
	"github.com/mekongtech/recruitment/internal/credential/internal/service"
)

var _ ginx.Handler = &Handler{}

// Handler 候选人侧的凭证校验入口，验证通过换一个候选人会话，
// 后续的考卷和提交接口都认这个会话。
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/credential/verify", ginx.B[VerifyReq](h.Verify))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) Verify(ctx *ginx.Context, req VerifyReq) (ginx.Result, error) {
	cred, err := h.svc.Validate(ctx, req.LinkID, req.Secret, ctx.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCredentialNotFound):
			return credentialNotFoundResult, err
		case errors.Is(err, service.ErrCredentialExpired):
			return credentialExpiredResult, err
		case errors.Is(err, service.ErrCredentialLocked):
			return credentialLockedResult, err
		case errors.Is(err, service.ErrInvalidSecret):
			return invalidSecretResult, err
		default:
			return systemErrorResult, err
		}
	}
	_, err = session.NewSessionBuilder(ctx, cred.CandidateID).
		SetJwtData(map[string]string{
			"role": "candidate",
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toVO(cred),
	}, nil
}

func toVO(c domain.Credential) Credential {
	return Credential{
		ID:             c.ID,
		CandidateID:    c.CandidateID,
		LinkID:         c.LinkID,
		Stage:          uint8(c.Stage),
		IssuedAt:       c.IssuedAt,
		ExpiresAt:      c.ExpiresAt,
		Status:         c.Status.String(),
		FailedAttempts: c.FailedAttempts,
		AutoExtended:   c.AutoExtended,
		ExtensionCount: c.ExtensionCount,
		LastUsedAt:     c.LastUsedAt,
		LastUsedIP:     c.LastUsedIP,
	}
}
