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

package job

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	appmocks "github.com/ecodeclub/hireflow/internal/application/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRedriveAnalysisJob_Run(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(svc *appmocks.MockService, reassessed *atomic.Int32)
		wantErr bool
	}{
		{
			name: "补发事件并重新评估",
			mock: func(svc *appmocks.MockService, reassessed *atomic.Int32) {
				svc.EXPECT().FindPendingAnalysis(gomock.Any(), domain.AnalysisResume, gomock.Any(), 10).
					Return([]domain.Application{{Id: 1, ResumePath: "1/resume/cv.pdf"}, {Id: 2, ResumePath: "2/resume/cv.pdf"}}, nil)
				svc.EXPECT().RepublishResumeAnalysis(gomock.Any(), gomock.Any()).Return(nil)
				// 一条失败不影响其它的
				svc.EXPECT().RepublishResumeAnalysis(gomock.Any(), gomock.Any()).Return(errors.New("kafka 不可用"))
				svc.EXPECT().FindPendingAnalysis(gomock.Any(), domain.AnalysisInterview, gomock.Any(), 10).
					Return([]domain.Application{{Id: 3}, {Id: 4}, {Id: 5}}, nil)
				svc.EXPECT().ReassessInterview(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, app domain.Application) error {
						reassessed.Add(1)
						if app.Id == 4 {
							return errors.New("模型超时")
						}
						return nil
					}).Times(3)
			},
		},
		{
			name: "已经上传视频的申请也补发简历分析",
			mock: func(svc *appmocks.MockService, reassessed *atomic.Int32) {
				app := domain.Application{Id: 6, Status: domain.StatusVideoUploaded,
					ResumePath: "6/resume/cv.pdf", VideoPath: "6/video/v.webm"}
				svc.EXPECT().FindPendingAnalysis(gomock.Any(), domain.AnalysisResume, gomock.Any(), 10).
					Return([]domain.Application{app}, nil)
				svc.EXPECT().RepublishResumeAnalysis(gomock.Any(), app).Return(nil)
				svc.EXPECT().FindPendingAnalysis(gomock.Any(), domain.AnalysisInterview, gomock.Any(), 10).
					Return([]domain.Application{{Id: 3}, {Id: 4}, {Id: 5}}, nil)
				svc.EXPECT().ReassessInterview(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, app domain.Application) error {
						reassessed.Add(1)
						return nil
					}).Times(3)
			},
		},
		{
			name: "查询失败",
			mock: func(svc *appmocks.MockService, reassessed *atomic.Int32) {
				svc.EXPECT().FindPendingAnalysis(gomock.Any(), domain.AnalysisResume, gomock.Any(), 10).
					Return(nil, errors.New("mysql 不可用"))
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := appmocks.NewMockService(ctrl)
			var reassessed atomic.Int32
			tc.mock(svc, &reassessed)
			err := NewRedriveAnalysisJob(svc, time.Minute*10, 10).Run(context.Background())
			assert.Equal(t, tc.wantErr, err != nil)
			if !tc.wantErr {
				assert.Equal(t, int32(3), reassessed.Load())
			}
		})
	}
}
