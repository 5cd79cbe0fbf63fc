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

	"github.com/mekongtech/recruitment/internal/assessment/internal/domain"
	"github.com/mekongtech/recruitment/internal/assessment/internal/service"
)

var _ ginx.Handler = &Handler{}

// Handler 候选人考试入口。候选人凭笔试链接换取的会话登录，
// 会话里的 uid 就是候选人ID。
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/assessment")
	g.POST("/paper", ginx.BS[PaperReq](h.Paper))
	g.POST("/save", ginx.BS[SaveProgressReq](h.SaveProgress))
	g.POST("/submit", ginx.BS[SubmitReq](h.Submit))
	g.POST("/my-result", ginx.S(h.MyResult))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Paper 下发考卷并开启答题会话，考卷不带答案和关键词。
// 重复拉卷复用已有会话，计时不重置。
func (h *Handler) Paper(ctx *ginx.Context, req PaperReq, sess session.Session) (ginx.Result, error) {
	set, asess, err := h.svc.StartPaper(ctx, sess.Claims().Uid, req.SetID)
	if err != nil {
		if errors.Is(err, service.ErrQuestionSetNotFound) {
			return questionSetNotFoundResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Paper{
			Set:     toSetVO(set, false),
			Session: toSessionVO(asess),
		},
	}, nil
}

func (h *Handler) SaveProgress(ctx *ginx.Context, req SaveProgressReq, sess session.Session) (ginx.Result, error) {
	asess, err := h.svc.SaveProgress(ctx, sess.Claims().Uid,
		slice.Map(req.Answers, func(_ int, a Answer) domain.Answer {
			return domain.Answer{
				QuestionID: a.QuestionID,
				Content:    a.Content,
			}
		}))
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			return noActiveSessionResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toSessionVO(asess),
	}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	candidateID := sess.Claims().Uid
	res, err := h.svc.Submit(ctx, candidateID, req.SetID,
		slice.Map(req.Answers, func(_ int, a Answer) domain.Answer {
			return domain.Answer{
				QuestionID: a.QuestionID,
				Content:    a.Content,
			}
		}))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateSubmission):
			return duplicateSubmissionResult, err
		case errors.Is(err, service.ErrQuestionSetNotFound):
			return questionSetNotFoundResult, err
		default:
			return systemErrorResult, err
		}
	}
	return ginx.Result{
		Data: toResultVO(res),
	}, nil
}

func (h *Handler) MyResult(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.ResultByCandidate(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toResultVO(res),
	}, nil
}

func toSessionVO(s domain.Session) Session {
	vo := Session{
		SetID:     s.SetID,
		StartedAt: s.StartedAt,
		Remaining: s.Remaining,
		Answered:  len(s.Answers),
	}
	if ddl := s.Deadline(); !ddl.IsZero() {
		vo.Deadline = ddl.UnixMilli()
	}
	return vo
}
