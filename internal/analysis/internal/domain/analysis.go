// Copyright 2023 ecodeclub
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

package domain

import "math"

type ResumeAnalysis struct {
	Success       bool
	Analysis      string
	KeyAttributes []string
}

type InterviewAssessment struct {
	// 0-100
	Score    int
	Feedback string
}

type JobDocument struct {
	Description             string
	EssentialAttributes     []string
	GoodCandidateAttributes string
	BadCandidateAttributes  string
}

const (
	MinScore = 0
	MaxScore = 100
)

// ClampScore 四舍五入之后限制在 [0, 100]
func ClampScore(score float64) int {
	switch {
	case math.IsNaN(score) || score < MinScore:
		return MinScore
	case score > MaxScore:
		return MaxScore
	}
	return int(math.Round(score))
}
