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

package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mekongtech/recruitment/internal/assessment/internal/domain"
)

var ErrInvalidWeightConfig = errors.New("类别权重配置非法")

// ScoringConfig 一次评分用到的全量配置快照。
// 评分开始后配置变更不影响本次评分。
type ScoringConfig struct {
	// AutoApproveThreshold 加权总分达到该值自动通过
	AutoApproveThreshold float64
	// ManualReviewMin 加权总分落在 [ManualReviewMin, AutoApproveThreshold) 进人工复核
	ManualReviewMin float64
	// Weights 类别权重，必须加和为1
	Weights map[domain.Category]float64
}

// Validate 权重必须恰好加和为1，容忍浮点误差
func (c ScoringConfig) Validate() error {
	var sum float64
	for category, w := range c.Weights {
		if w < 0 {
			return fmt.Errorf("%w: %s 权重为负", ErrInvalidWeightConfig, category)
		}
		sum += w
	}
	const epsilon = 1e-9
	if math.Abs(sum-1.0) > epsilon {
		return fmt.Errorf("%w: 权重和为 %v", ErrInvalidWeightConfig, sum)
	}
	if c.ManualReviewMin > c.AutoApproveThreshold {
		return fmt.Errorf("%w: 人工复核下限高于自动通过阈值", ErrInvalidWeightConfig)
	}
	return nil
}

// Calculator 笔试评分器。纯计算，不落库。
type Calculator struct {
	cfg ScoringConfig
}

func NewCalculator(cfg ScoringConfig) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{cfg: cfg}, nil
}

// Score 给一次作答打分并按阈值路由。
// 没答的题按0分算，全卷空白会得到 failed 而不是报错。
func (c *Calculator) Score(questions []domain.Question, answers []domain.Answer) (domain.Result, error) {
	answered := make(map[int64]string, len(answers))
	for _, a := range answers {
		answered[a.QuestionID] = a.Content
	}

	type acc struct {
		awarded  float64
		possible float64
	}
	categories := make(map[domain.Category]*acc, len(c.cfg.Weights))
	questionScores := make([]domain.QuestionScore, 0, len(questions))

	for _, q := range questions {
		awarded := c.scoreQuestion(q, answered[q.ID])
		questionScores = append(questionScores, domain.QuestionScore{
			QuestionID: q.ID,
			Category:   q.Category,
			Awarded:    awarded,
			Possible:   q.Points,
		})
		a, ok := categories[q.Category]
		if !ok {
			a = &acc{}
			categories[q.Category] = a
		}
		a.awarded += awarded
		a.possible += q.Points
	}

	categoryScores := make([]domain.CategoryScore, 0, len(categories))
	var overall float64
	for category, weight := range c.cfg.Weights {
		a, ok := categories[category]
		var pct float64
		cs := domain.CategoryScore{Category: category}
		if ok && a.possible > 0 {
			pct = a.awarded / a.possible * 100
			cs.Awarded, cs.Possible = a.awarded, a.possible
		}
		cs.Percentage = pct
		categoryScores = append(categoryScores, cs)
		overall += pct * weight
	}

	return domain.Result{
		Overall:        overall,
		Classification: c.Classify(overall),
		Categories:     categoryScores,
		Questions:      questionScores,
	}, nil
}

// Classify 按阈值把加权总分路由成 passed / manual_review / failed
func (c *Calculator) Classify(overall float64) domain.Classification {
	switch {
	case overall >= c.cfg.AutoApproveThreshold:
		return domain.ClassificationPassed
	case overall >= c.cfg.ManualReviewMin:
		return domain.ClassificationManualReview
	default:
		return domain.ClassificationFailed
	}
}

func (c *Calculator) scoreQuestion(q domain.Question, answer string) float64 {
	if strings.TrimSpace(answer) == "" {
		return 0
	}
	switch q.Type {
	case domain.TypeChoice:
		if strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.CorrectAnswer)) {
			return q.Points
		}
		return 0
	case domain.TypeText:
		return c.scoreText(q, answer)
	default:
		return 0
	}
}

// scoreText 主观题启发式评分：关键词覆盖率给基础分，
// 篇幅给最多20%的加成，总分不超过题目满分。
// 没配关键词的题无从判断质量，给一半分。
func (c *Calculator) scoreText(q domain.Question, answer string) float64 {
	if len(q.Keywords) == 0 {
		return 0.5 * q.Points
	}
	lower := strings.ToLower(answer)
	var matched int
	for _, kw := range q.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			matched++
		}
	}
	base := float64(matched) / float64(len(q.Keywords)) * q.Points
	words := float64(len(strings.Fields(answer)))
	bonus := math.Min(words/50, 0.2) * q.Points
	return math.Min(base+bonus, q.Points)
}
