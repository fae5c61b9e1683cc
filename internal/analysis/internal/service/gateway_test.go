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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/hireflow/internal/ai"
	aimocks "github.com/ecodeclub/hireflow/internal/ai/mocks"
	"github.com/ecodeclub/hireflow/internal/analysis/internal/domain"
	"github.com/ecodeclub/hireflow/internal/analysis/internal/extract"
	"github.com/ecodeclub/hireflow/internal/job"
	jobmocks "github.com/ecodeclub/hireflow/internal/job/mocks"
	storagemocks "github.com/ecodeclub/hireflow/internal/storage/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type gatewayMocks struct {
	llm     *aimocks.MockService
	storage *storagemocks.MockService
	jobs    *jobmocks.MockService
}

func newGatewayMocks(ctrl *gomock.Controller) gatewayMocks {
	return gatewayMocks{
		llm:     aimocks.NewMockService(ctrl),
		storage: storagemocks.NewMockService(ctrl),
		jobs:    jobmocks.NewMockService(ctrl),
	}
}

func (m gatewayMocks) gateway() Gateway {
	return NewLLMGateway(m.llm, m.storage, m.jobs)
}

func TestLLMGateway_AnalyzeResume(t *testing.T) {
	const path = "1/resume/1700000000000_cv.txt"
	testCases := []struct {
		name    string
		mock    func(m gatewayMocks)
		want    domain.ResumeAnalysis
		wantErr error
	}{
		{
			name: "分析成功",
			mock: func(m gatewayMocks) {
				m.storage.EXPECT().Download(gomock.Any(), path).Return([]byte("张三，五年 Go 经验"), nil)
				m.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						assert.Equal(t, ai.BizResumeAnalysis, req.Biz)
						assert.Equal(t, int64(1), req.Uid)
						assert.NotEmpty(t, req.Tid)
						assert.Equal(t, []string{"张三，五年 Go 经验"}, req.Input)
						return ai.LLMResponse{
							Answer: "```json\n{\"analysis\": \"经验丰富\", \"keyAttributes\": [\"Go\", \"分布式\"]}\n```",
						}, nil
					})
			},
			want: domain.ResumeAnalysis{Success: true, Analysis: "经验丰富", KeyAttributes: []string{"Go", "分布式"}},
		},
		{
			name: "下载失败",
			mock: func(m gatewayMocks) {
				m.storage.EXPECT().Download(gomock.Any(), path).Return(nil, errors.New("mock cos error"))
			},
			wantErr: errors.New("下载文档失败 1/resume/1700000000000_cv.txt: mock cos error"),
		},
		{
			name: "格式不支持",
			mock: func(m gatewayMocks) {
				m.storage.EXPECT().Download(gomock.Any(), path).
					Return([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d}, nil)
			},
			wantErr: extract.ErrUnsupportedFormat,
		},
		{
			name: "回答缺少分析",
			mock: func(m gatewayMocks) {
				m.storage.EXPECT().Download(gomock.Any(), path).Return([]byte("简历"), nil)
				m.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: `{"keyAttributes": []}`}, nil)
			},
			wantErr: ErrInvalidAnswer,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newGatewayMocks(ctrl)
			tc.mock(m)
			res, err := m.gateway().AnalyzeResume(context.Background(), path, 1)
			assertErr(t, tc.wantErr, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestLLMGateway_AnalyzeInterview(t *testing.T) {
	const transcript = "AI: 你好\nHuman: 你好，我是张三"
	testCases := []struct {
		name       string
		transcript string
		mock       func(m gatewayMocks)
		want       domain.InterviewAssessment
		wantErr    error
	}{
		{
			name:       "分析成功",
			transcript: transcript,
			mock: func(m gatewayMocks) {
				j := job.Job{Id: 2, Title: "后端工程师", Requirements: []string{"Go"}}
				m.jobs.EXPECT().FindByID(gomock.Any(), int64(2)).Return(j, nil)
				m.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						assert.Equal(t, ai.BizInterviewAnalysis, req.Biz)
						assert.Equal(t, []string{j.Summary(), transcript}, req.Input)
						return ai.LLMResponse{Answer: `{"score": 86.6, "feedback": " 表达清晰 "}`}, nil
					})
			},
			want: domain.InterviewAssessment{Score: 87, Feedback: "表达清晰"},
		},
		{
			name:       "分数超出范围",
			transcript: transcript,
			mock: func(m gatewayMocks) {
				m.jobs.EXPECT().FindByID(gomock.Any(), int64(2)).Return(job.Job{Id: 2}, nil)
				m.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: `{"score": 120, "feedback": "满分"}`}, nil)
			},
			want: domain.InterviewAssessment{Score: 100, Feedback: "满分"},
		},
		{
			name:       "缺少分数",
			transcript: transcript,
			mock: func(m gatewayMocks) {
				m.jobs.EXPECT().FindByID(gomock.Any(), int64(2)).Return(job.Job{Id: 2}, nil)
				m.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: `{"feedback": "没有分数"}`}, nil)
			},
			wantErr: ErrInvalidAnswer,
		},
		{
			name:       "LLM 调用失败",
			transcript: transcript,
			mock: func(m gatewayMocks) {
				m.jobs.EXPECT().FindByID(gomock.Any(), int64(2)).Return(job.Job{Id: 2}, nil)
				m.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{}, errors.New("mock llm error"))
			},
			wantErr: errors.New("mock llm error"),
		},
		{
			name:       "面试记录为空",
			transcript: "  \n ",
			mock:       func(m gatewayMocks) {},
			wantErr:    ErrEmptyTranscript,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newGatewayMocks(ctrl)
			tc.mock(m)
			res, err := m.gateway().AnalyzeInterview(context.Background(), 1, 2, tc.transcript)
			assertErr(t, tc.wantErr, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestLLMGateway_ProcessJobDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newGatewayMocks(ctrl)
	const path = "jobs/2/document/1700000000000_jd.txt"
	m.storage.EXPECT().Download(gomock.Any(), path).Return([]byte("招聘 Go 工程师，要求熟悉 Kafka"), nil)
	m.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
			assert.Equal(t, ai.BizJobDocument, req.Biz)
			return ai.LLMResponse{Answer: `整理结果如下：{
				"description": "Go 工程师",
				"essentialAttributes": "Go，Kafka",
				"goodCandidateAttributes": "有开源经验",
				"badCandidateAttributes": "没有后端经验"
			}`}, nil
		})
	doc, err := m.gateway().ProcessJobDocument(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, domain.JobDocument{
		Description:             "Go 工程师",
		EssentialAttributes:     []string{"Go", "Kafka"},
		GoodCandidateAttributes: "有开源经验",
		BadCandidateAttributes:  "没有后端经验",
	}, doc)
}

func assertErr(t *testing.T, want, got error) {
	t.Helper()
	if want == nil {
		assert.NoError(t, got)
		return
	}
	if errors.Is(got, want) {
		return
	}
	assert.EqualError(t, got, want.Error())
}
