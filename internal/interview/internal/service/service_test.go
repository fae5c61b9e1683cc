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
	"time"

	"github.com/ecodeclub/hireflow/internal/application"
	appmocks "github.com/ecodeclub/hireflow/internal/application/mocks"
	cachemocks "github.com/ecodeclub/hireflow/internal/interview/internal/repository/cache/mocks"
	"github.com/ecodeclub/hireflow/internal/job"
	jobmocks "github.com/ecodeclub/hireflow/internal/job/mocks"
	"github.com/ecodeclub/hireflow/internal/pkg/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_Open(t *testing.T) {
	videoDone := application.Application{
		Id:            11,
		JobId:         2,
		CandidateId:   3,
		Status:        "video_uploaded",
		ResumePath:    "11/resume/a.pdf",
		VideoPath:     "11/video/b.webm",
		KeyAttributes: []string{"Kafka"},
	}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (application.Service, job.Service, *cachemocks.MockSessionLeaseCache)
		dialer  *fakeDialer
		wantErr error
		check   func(t *testing.T, s *Session, d *fakeDialer)
	}{
		{
			name: "开始面试",
			mock: func(ctrl *gomock.Controller) (application.Service, job.Service, *cachemocks.MockSessionLeaseCache) {
				apps := appmocks.NewMockService(ctrl)
				jobs := jobmocks.NewMockService(ctrl)
				leases := cachemocks.NewMockSessionLeaseCache(ctrl)
				apps.EXPECT().FindByJobAndCandidate(gomock.Any(), int64(2), int64(3)).Return(videoDone, nil)
				jobs.EXPECT().FindByID(gomock.Any(), int64(2)).Return(job.Job{
					Id:           2,
					Title:        "Backend Engineer",
					Requirements: []string{"Go"},
				}, nil)
				leases.EXPECT().Acquire(gomock.Any(), int64(11), gomock.Any(), time.Minute).Return(true, nil)
				leases.EXPECT().Release(gomock.Any(), int64(11), gomock.Any()).Return(nil)
				apps.EXPECT().MarkInterviewStarted(gomock.Any(), int64(11)).Return(nil)
				apps.EXPECT().CompleteInterview(gomock.Any(), int64(11), []string(nil)).Return(nil, nil)
				return apps, jobs, leases
			},
			dialer: &fakeDialer{conn: newFakeConn()},
			check: func(t *testing.T, s *Session, d *fakeDialer) {
				assert.Equal(t, int64(11), s.ApplicationID())
				require.Len(t, d.starts, 1)
				assert.Contains(t, d.starts[0].Prompt, "Kafka")
				assert.Contains(t, d.starts[0].Prompt, "Backend Engineer")
				assert.Equal(t, "Hello Lee (lee), thank you for applying for the Backend Engineer position. Shall we get started?",
					d.starts[0].FirstMessage)
				s.End(context.Background())
			},
		},
		{
			name: "没有申请",
			mock: func(ctrl *gomock.Controller) (application.Service, job.Service, *cachemocks.MockSessionLeaseCache) {
				apps := appmocks.NewMockService(ctrl)
				apps.EXPECT().FindByJobAndCandidate(gomock.Any(), int64(2), int64(3)).
					Return(application.Application{}, gorm.ErrRecordNotFound)
				return apps, jobmocks.NewMockService(ctrl), cachemocks.NewMockSessionLeaseCache(ctrl)
			},
			dialer:  &fakeDialer{},
			wantErr: application.ErrApplicationNotFound,
		},
		{
			name: "还没有上传视频",
			mock: func(ctrl *gomock.Controller) (application.Service, job.Service, *cachemocks.MockSessionLeaseCache) {
				apps := appmocks.NewMockService(ctrl)
				apps.EXPECT().FindByJobAndCandidate(gomock.Any(), int64(2), int64(3)).
					Return(application.Application{Id: 11, Status: "resume_uploaded", ResumePath: "11/resume/a.pdf"}, nil)
				return apps, jobmocks.NewMockService(ctrl), cachemocks.NewMockSessionLeaseCache(ctrl)
			},
			dialer:  &fakeDialer{},
			wantErr: ErrVideoRequired,
		},
		{
			name: "面试已经完成",
			mock: func(ctrl *gomock.Controller) (application.Service, job.Service, *cachemocks.MockSessionLeaseCache) {
				apps := appmocks.NewMockService(ctrl)
				done := videoDone
				done.Status = application.StatusInterviewCompleted
				apps.EXPECT().FindByJobAndCandidate(gomock.Any(), int64(2), int64(3)).Return(done, nil)
				return apps, jobmocks.NewMockService(ctrl), cachemocks.NewMockSessionLeaseCache(ctrl)
			},
			dialer:  &fakeDialer{},
			wantErr: ErrInterviewCompleted,
		},
		{
			name: "连接 agent 失败，释放租约",
			mock: func(ctrl *gomock.Controller) (application.Service, job.Service, *cachemocks.MockSessionLeaseCache) {
				apps := appmocks.NewMockService(ctrl)
				jobs := jobmocks.NewMockService(ctrl)
				leases := cachemocks.NewMockSessionLeaseCache(ctrl)
				apps.EXPECT().FindByJobAndCandidate(gomock.Any(), int64(2), int64(3)).Return(videoDone, nil)
				jobs.EXPECT().FindByID(gomock.Any(), int64(2)).Return(job.Job{Id: 2, Title: "Backend Engineer"}, nil)
				leases.EXPECT().Acquire(gomock.Any(), int64(11), gomock.Any(), time.Minute).Return(true, nil)
				leases.EXPECT().Release(gomock.Any(), int64(11), gomock.Any()).Return(nil)
				return apps, jobs, leases
			},
			dialer:  &fakeDialer{err: errMockDial},
			wantErr: errMockDial,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			apps, jobs, leases := tc.mock(ctrl)
			svc := NewService(apps, jobs, tc.dialer, NewRegistry(leases, time.Minute))
			s, err := svc.Open(context.Background(), OpenRequest{
				JobId:             2,
				CandidateId:       3,
				FirstName:         "Lee",
				PronunciationHint: "lee",
			}, media.NewBroker(&fakeDevice{}))
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			tc.check(t, s, tc.dialer)
		})
	}
}

var errMockDial = errors.New("mock dial")
