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

	"github.com/mekongtech/recruitment/internal/assessment/internal/domain"
	"github.com/mekongtech/recruitment/internal/assessment/internal/service"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 组卷和成绩查询，HR 在主站上用
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/assessment")
	g.POST("/set/save", ginx.B[SaveQuestionSetReq](h.SaveQuestionSet))
	g.POST("/set/detail", ginx.B[SetDetailReq](h.SetDetail))
	g.POST("/set/list", ginx.B[ListSetsReq](h.ListSets))
	g.POST("/result", ginx.B[ResultReq](h.Result))
	g.POST("/statistics", ginx.W(h.Statistics))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) SaveQuestionSet(ctx *ginx.Context, req SaveQuestionSetReq) (ginx.Result, error) {
	id, err := h.svc.SaveQuestionSet(ctx, domain.QuestionSet{
		ID:               req.QuestionSet.ID,
		PositionID:       req.QuestionSet.PositionID,
		Name:             req.QuestionSet.Name,
		TimeLimitMinutes: req.QuestionSet.TimeLimitMinutes,
		Questions: slice.Map(req.QuestionSet.Questions, func(_ int, q Question) domain.Question {
			return domain.Question{
				ID:            q.ID,
				Type:          domain.QuestionType(q.Type),
				Category:      domain.Category(q.Category),
				Text:          q.Text,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				Keywords:      q.Keywords,
				Points:        q.Points,
			}
		}),
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) SetDetail(ctx *ginx.Context, req SetDetailReq) (ginx.Result, error) {
	set, err := h.svc.QuestionSetDetail(ctx, req.ID)
	if err != nil {
		if errors.Is(err, service.ErrQuestionSetNotFound) {
			return questionSetNotFoundResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toSetVO(set, true),
	}, nil
}

func (h *AdminHandler) ListSets(ctx *ginx.Context, req ListSetsReq) (ginx.Result, error) {
	sets, err := h.svc.ListQuestionSets(ctx, req.PositionID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(sets, func(_ int, s domain.QuestionSet) QuestionSet {
			return toSetVO(s, true)
		}),
	}, nil
}

func (h *AdminHandler) Result(ctx *ginx.Context, req ResultReq) (ginx.Result, error) {
	res, err := h.svc.ResultByCandidate(ctx, req.CandidateID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toResultVO(res),
	}, nil
}

func (h *AdminHandler) Statistics(ctx *ginx.Context) (ginx.Result, error) {
	stats, err := h.svc.Statistics(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Statistics{
			Total:        stats.Total,
			Passed:       stats.Passed,
			ManualReview: stats.ManualReview,
			Failed:       stats.Failed,
			AvgOverall:   stats.AvgOverall,
		},
	}, nil
}

// toSetVO withAnswers 为 false 时抹掉答案和关键词，考卷接口用
func toSetVO(set domain.QuestionSet, withAnswers bool) QuestionSet {
	return QuestionSet{
		ID:               set.ID,
		PositionID:       set.PositionID,
		Name:             set.Name,
		TimeLimitMinutes: set.TimeLimitMinutes,
		Questions: slice.Map(set.Questions, func(_ int, q domain.Question) Question {
			vo := Question{
				ID:       q.ID,
				Type:     string(q.Type),
				Category: q.Category.String(),
				Text:     q.Text,
				Options:  q.Options,
				Points:   q.Points,
			}
			if withAnswers {
				vo.CorrectAnswer = q.CorrectAnswer
				vo.Keywords = q.Keywords
			}
			return vo
		}),
	}
}

func toResultVO(res domain.Result) Result {
	return Result{
		CandidateID:    res.CandidateID,
		SetID:          res.SetID,
		Overall:        res.Overall,
		Classification: res.Classification.String(),
		Categories: slice.Map(res.Categories, func(_ int, cs domain.CategoryScore) CategoryScore {
			return CategoryScore{
				Category:   cs.Category.String(),
				Awarded:    cs.Awarded,
				Possible:   cs.Possible,
				Percentage: cs.Percentage,
			}
		}),
		Questions: slice.Map(res.Questions, func(_ int, qs domain.QuestionScore) QuestionScore {
			return QuestionScore{
				QuestionID: qs.QuestionID,
				Category:   qs.Category.String(),
				Awarded:    qs.Awarded,
				Possible:   qs.Possible,
			}
		}),
		Ctime: res.Ctime,
	}
}
