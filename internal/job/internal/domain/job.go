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

import (
	"encoding/json"
	"strings"
)

type Job struct {
	Id           int64
	Title        string
	Description  string
	Requirements []string
	// 招聘方上传的岗位文档，在存储里的路径
	DocumentPath string
	Document     Document
	Ctime        int64
	Utime        int64
}

// Document 从岗位文档里面整理出来的结构化信息
type Document struct {
	Description             string   `json:"description"`
	EssentialAttributes     []string `json:"essentialAttributes"`
	GoodCandidateAttributes string   `json:"goodCandidateAttributes"`
	BadCandidateAttributes  string   `json:"badCandidateAttributes"`
}

func (d Document) Empty() bool {
	return d.Description == "" && len(d.EssentialAttributes) == 0 &&
		d.GoodCandidateAttributes == "" && d.BadCandidateAttributes == ""
}

// EffectiveDescription 优先使用整理过的描述
func (j Job) EffectiveDescription() string {
	if j.Document.Description != "" {
		return j.Document.Description
	}
	return j.Description
}

// EffectiveRequirements 岗位要求和必备条件去重合并
func (j Job) EffectiveRequirements() []string {
	seen := make(map[string]struct{}, len(j.Requirements)+len(j.Document.EssentialAttributes))
	res := make([]string, 0, len(j.Requirements)+len(j.Document.EssentialAttributes))
	for _, r := range append(append([]string{}, j.Requirements...), j.Document.EssentialAttributes...) {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		res = append(res, r)
	}
	return res
}

// Summary 交给 LLM 的岗位信息
func (j Job) Summary() string {
	val, _ := json.Marshal(struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		Requirements []string `json:"requirements"`
		Good         string   `json:"goodCandidateAttributes,omitempty"`
		Bad          string   `json:"badCandidateAttributes,omitempty"`
	}{
		Title:        j.Title,
		Description:  j.EffectiveDescription(),
		Requirements: j.EffectiveRequirements(),
		Good:         j.Document.GoodCandidateAttributes,
		Bad:          j.Document.BadCandidateAttributes,
	})
	return string(val)
}
