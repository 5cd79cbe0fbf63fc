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
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"

	"github.com/mekongtech/recruitment/internal/credential/internal/domain"
	"github.com/mekongtech/recruitment/internal/credential/internal/service"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 凭证的签发、延期、吊销，加上三个扫描任务的手动触发入口。
// 定时任务平时由 ecron 驱动，这里是给运营排查问题用的。
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/credential")
	g.POST("/issue", ginx.B[IssueReq](h.Issue))
	g.POST("/extend", ginx.BS[ExtendReq](h.Extend))
	g.POST("/deactivate", ginx.BS[DeactivateReq](h.Deactivate))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.POST("/list", ginx.B[ListByCandidateReq](h.ListByCandidate))
	g.POST("/sweep/weekend", ginx.W(h.RunWeekendExtensionSweep))
	g.POST("/sweep/reminder", ginx.W(h.RunReminderSweep))
	g.POST("/sweep/expiry", ginx.W(h.RunExpiryCleanupSweep))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) Issue(ctx *ginx.Context, req IssueReq) (ginx.Result, error) {
	cred, secret, err := h.svc.Issue(ctx, req.CandidateID, domain.Stage(req.Stage))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: IssueResp{
			Credential: toVO(cred),
			Secret:     secret,
		},
	}, nil
}

func (h *AdminHandler) Extend(ctx *ginx.Context, req ExtendReq, sess session.Session) (ginx.Result, error) {
	cred, err := h.svc.Extend(ctx, req.LinkID, req.Days,
		sess.Claims().Uid, sess.Claims().Get("role").StringOrDefault(""), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCredentialNotFound):
			return credentialNotFoundResult, err
		case errors.Is(err, service.ErrCannotExtendExpired):
			return cannotExtendExpiredResult, err
		default:
			return systemErrorResult, err
		}
	}
	return ginx.Result{
		Data: toVO(cred),
	}, nil
}

func (h *AdminHandler) Deactivate(ctx *ginx.Context, req DeactivateReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Deactivate(ctx, req.LinkID,
		sess.Claims().Uid, sess.Claims().Get("role").StringOrDefault(""), req.Reason)
	if err != nil {
		if errors.Is(err, service.ErrCredentialNotFound) {
			return credentialNotFoundResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	cred, err := h.svc.Detail(ctx, req.LinkID)
	if err != nil {
		if errors.Is(err, service.ErrCredentialNotFound) {
			return credentialNotFoundResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toVO(cred),
	}, nil
}

func (h *AdminHandler) ListByCandidate(ctx *ginx.Context, req ListByCandidateReq) (ginx.Result, error) {
	credentials, err := h.svc.ListByCandidate(ctx, req.CandidateID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(credentials, func(_ int, c domain.Credential) Credential {
			return toVO(c)
		}),
	}, nil
}

func (h *AdminHandler) RunWeekendExtensionSweep(ctx *ginx.Context) (ginx.Result, error) {
	return h.runSweep(ctx, h.svc.RunWeekendExtensionSweep)
}

func (h *AdminHandler) RunReminderSweep(ctx *ginx.Context) (ginx.Result, error) {
	return h.runSweep(ctx, h.svc.RunReminderSweep)
}

func (h *AdminHandler) RunExpiryCleanupSweep(ctx *ginx.Context) (ginx.Result, error) {
	return h.runSweep(ctx, h.svc.RunExpiryCleanupSweep)
}

func (h *AdminHandler) runSweep(ctx *ginx.Context,
	sweep func(ctx context.Context) (int64, error)) (ginx.Result, error) {
	affected, err := sweep(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SweepResp{Affected: affected},
	}, nil
}
