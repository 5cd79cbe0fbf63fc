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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mekongtech/recruitment/internal/assessment/internal/domain"
)

func defaultConfig() ScoringConfig {
	return ScoringConfig{
		AutoApproveThreshold: 70,
		ManualReviewMin:      50,
		Weights: map[domain.Category]float64{
			domain.CategoryIQ:   0.4,
			domain.CategoryTech: 0.6,
		},
	}
}

func TestScoringConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     ScoringConfig
		wantErr bool
	}{
		{
			name: "默认配置合法",
			cfg:  defaultConfig(),
		},
		{
			name: "权重和不为1",
			cfg: ScoringConfig{
				AutoApproveThreshold: 70,
				ManualReviewMin:      50,
				Weights: map[domain.Category]float64{
					domain.CategoryIQ:   0.5,
					domain.CategoryTech: 0.6,
				},
			},
			wantErr: true,
		},
		{
			name: "负权重",
			cfg: ScoringConfig{
				AutoApproveThreshold: 70,
				ManualReviewMin:      50,
				Weights: map[domain.Category]float64{
					domain.CategoryIQ:   -0.2,
					domain.CategoryTech: 1.2,
				},
			},
			wantErr: true,
		},
		{
			name: "复核下限高于通过阈值",
			cfg: ScoringConfig{
				AutoApproveThreshold: 50,
				ManualReviewMin:      70,
				Weights: map[domain.Category]float64{
					domain.CategoryIQ:   0.4,
					domain.CategoryTech: 0.6,
				},
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWeightConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCalculator_Classify(t *testing.T) {
	calc, err := NewCalculator(defaultConfig())
	require.NoError(t, err)
	testCases := []struct {
		name    string
		overall float64
		want    domain.Classification
	}{
		{
			name:    "达到阈值自动通过",
			overall: 70,
			want:    domain.ClassificationPassed,
		},
		{
			name:    "阈值以下进人工复核",
			overall: 69.99,
			want:    domain.ClassificationManualReview,
		},
		{
			name:    "复核下限",
			overall: 50,
			want:    domain.ClassificationManualReview,
		},
		{
			name:    "复核下限以下淘汰",
			overall: 49.99,
			want:    domain.ClassificationFailed,
		},
		{
			name:    "零分淘汰",
			overall: 0,
			want:    domain.ClassificationFailed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, calc.Classify(tc.overall))
		})
	}
}

func TestCalculator_Score_Weighted(t *testing.T) {
	// IQ 90%，技术 82%，权重 0.4/0.6 => 85.2，自动通过
	questions := []domain.Question{
		{ID: 1, Type: domain.TypeChoice, Category: domain.CategoryIQ, CorrectAnswer: "A", Points: 90},
		{ID: 2, Type: domain.TypeChoice, Category: domain.CategoryIQ, CorrectAnswer: "B", Points: 10},
		{ID: 3, Type: domain.TypeChoice, Category: domain.CategoryTech, CorrectAnswer: "C", Points: 82},
		{ID: 4, Type: domain.TypeChoice, Category: domain.CategoryTech, CorrectAnswer: "D", Points: 18},
	}
	answers := []domain.Answer{
		{QuestionID: 1, Content: "A"},
		{QuestionID: 2, Content: "X"},
		{QuestionID: 3, Content: "C"},
		{QuestionID: 4, Content: "X"},
	}
	calc, err := NewCalculator(defaultConfig())
	require.NoError(t, err)
	res, err := calc.Score(questions, answers)
	require.NoError(t, err)
	assert.InDelta(t, 85.2, res.Overall, 1e-9)
	assert.Equal(t, domain.ClassificationPassed, res.Classification)
	assert.Len(t, res.Questions, 4)
	assert.Len(t, res.Categories, 2)
}

func TestCalculator_Score_EmptySubmission(t *testing.T) {
	// 全卷空白是0分淘汰，不是错误
	questions := []domain.Question{
		{ID: 1, Type: domain.TypeChoice, Category: domain.CategoryIQ, CorrectAnswer: "A", Points: 10},
		{ID: 2, Type: domain.TypeText, Category: domain.CategoryTech, Keywords: []string{"index"}, Points: 10},
	}
	calc, err := NewCalculator(defaultConfig())
	require.NoError(t, err)
	res, err := calc.Score(questions, nil)
	require.NoError(t, err)
	assert.Zero(t, res.Overall)
	assert.Equal(t, domain.ClassificationFailed, res.Classification)
}

func TestCalculator_ScoreQuestion_Choice(t *testing.T) {
	calc, err := NewCalculator(defaultConfig())
	require.NoError(t, err)
	q := domain.Question{Type: domain.TypeChoice, CorrectAnswer: "B", Points: 5}
	testCases := []struct {
		name   string
		answer string
		want   float64
	}{
		{
			name:   "完全匹配",
			answer: "B",
			want:   5,
		},
		{
			name:   "忽略大小写和首尾空白",
			answer: "  b ",
			want:   5,
		},
		{
			name:   "答错不给分",
			answer: "A",
			want:   0,
		},
		{
			name:   "没答不给分",
			answer: "",
			want:   0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, calc.scoreQuestion(q, tc.answer))
		})
	}
}

func TestCalculator_ScoreText(t *testing.T) {
	calc, err := NewCalculator(defaultConfig())
	require.NoError(t, err)
	testCases := []struct {
		name   string
		q      domain.Question
		answer string
		want   float64
	}{
		{
			name: "命中一半关键词加篇幅加成",
			q: domain.Question{
				Type:     domain.TypeText,
				Keywords: []string{"index", "transaction", "lock", "isolation"},
				Points:   10,
			},
			// 命中 index 和 lock，25个词 => 5 + 10*25/50*... bonus=min(25/50,0.2)=0.2 => 5+2=7
			answer: "An index speeds up reads while a lock protects concurrent writes " +
				"and the rest of this answer pads the word count up to exactly twenty five words total",
			want: 7,
		},
		{
			name: "关键词全中篇幅加成不破满分",
			q: domain.Question{
				Type:     domain.TypeText,
				Keywords: []string{"cache"},
				Points:   10,
			},
			answer: "cache cache cache cache cache cache cache cache cache cache " +
				"cache cache cache cache cache cache cache cache cache cache",
			want: 10,
		},
		{
			name: "没配关键词给一半分",
			q: domain.Question{
				Type:   domain.TypeText,
				Points: 8,
			},
			answer: "任意非空回答",
			want:   4,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, calc.scoreText(tc.q, tc.answer), 1e-9)
		})
	}
}
