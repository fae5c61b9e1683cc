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

package web

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/errs"
	"github.com/ecodeclub/hireflow/internal/application/internal/service"
	appmocks "github.com/ecodeclub/hireflow/internal/application/mocks"
	"github.com/ecodeclub/hireflow/internal/job"
	jobmocks "github.com/ecodeclub/hireflow/internal/job/mocks"
	"github.com/ecodeclub/hireflow/internal/pkg/media"
	"github.com/ecodeclub/hireflow/internal/pkg/media/wsdevice"
	"github.com/ecodeclub/hireflow/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid = 100

func newServer(t *testing.T, svc service.Service, jobs job.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	hdl := NewHandler(svc, jobs, time.Minute)
	server := gin.New()
	server.Use(test.Login(uid, nil))
	hdl.PrivateRoutes(server)
	hdl.RecruiterRoutes(server)
	return server
}

func TestHandler_Stage(t *testing.T) {
	testCases := []struct {
		name     string
		query    string
		mock     func(svc *appmocks.MockService, jobs *jobmocks.MockService)
		wantCode int
		wantData any
	}{
		{
			name:  "新的候选人从简历开始",
			query: "jobId=1",
			mock: func(svc *appmocks.MockService, jobs *jobmocks.MockService) {
				jobs.EXPECT().FindByID(gomock.Any(), int64(1)).Return(job.Job{Id: 1}, nil)
				svc.EXPECT().Stage(gomock.Any(), int64(1), int64(uid)).Return(domain.StageResume, nil)
			},
			wantData: map[string]any{"stage": "resume"},
		},
		{
			name:  "岗位不存在跳回列表",
			query: "jobId=2",
			mock: func(svc *appmocks.MockService, jobs *jobmocks.MockService) {
				jobs.EXPECT().FindByID(gomock.Any(), int64(2)).Return(job.Job{}, job.ErrJobNotFound)
			},
			wantCode: errs.JobNotFound.Code,
			wantData: map[string]any{"redirect": "/jobs"},
		},
		{
			name:     "没有岗位 ID",
			query:    "",
			mock:     func(svc *appmocks.MockService, jobs *jobmocks.MockService) {},
			wantCode: errs.JobNotFound.Code,
			wantData: map[string]any{"redirect": "/jobs"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, jobs := appmocks.NewMockService(ctrl), jobmocks.NewMockService(ctrl)
			tc.mock(svc, jobs)
			server := newServer(t, svc, jobs)
			req, err := http.NewRequest(http.MethodGet, "/application/stage?"+tc.query, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantData, res.Data)
		})
	}
}

func TestHandler_SubmitResume(t *testing.T) {
	testCases := []struct {
		name     string
		file     []byte
		mock     func(svc *appmocks.MockService, jobs *jobmocks.MockService)
		wantCode int
		wantData SubmitResult
	}{
		{
			name: "提交成功",
			file: []byte("%PDF-1.4"),
			mock: func(svc *appmocks.MockService, jobs *jobmocks.MockService) {
				jobs.EXPECT().FindByID(gomock.Any(), int64(1)).Return(job.Job{Id: 1}, nil)
				svc.EXPECT().SubmitResume(gomock.Any(), int64(1), int64(uid), gomock.Any()).
					DoAndReturn(func(ctx context.Context, jobId, candidateId int64, file domain.File) (domain.SubmitResult, error) {
						assert.Equal(t, "cv.pdf", file.Name)
						assert.Equal(t, "%PDF-1.4", string(file.Data))
						return domain.SubmitResult{
							Application: domain.Application{Id: 10, JobId: 1, Status: domain.StatusResumeUploaded, ResumePath: "10/resume/1_cv.pdf"},
							Stage:       domain.StageVideo,
							Warnings:    []string{service.WarningResumeAnalysisDeferred},
						}, nil
					})
			},
			wantData: SubmitResult{
				Application: Application{Id: 10, JobId: 1, Status: "resume_uploaded", HasResume: true},
				Stage:       "video",
				Warnings:    []string{service.WarningResumeAnalysisDeferred},
			},
		},
		{
			name: "格式不对",
			file: []byte("GIF89a"),
			mock: func(svc *appmocks.MockService, jobs *jobmocks.MockService) {
				jobs.EXPECT().FindByID(gomock.Any(), int64(1)).Return(job.Job{Id: 1}, nil)
				svc.EXPECT().SubmitResume(gomock.Any(), int64(1), int64(uid), gomock.Any()).
					Return(domain.SubmitResult{}, service.ErrInvalidResume)
			},
			wantCode: errs.InvalidResume.Code,
		},
		{
			name: "空文件",
			file: nil,
			mock: func(svc *appmocks.MockService, jobs *jobmocks.MockService) {
				jobs.EXPECT().FindByID(gomock.Any(), int64(1)).Return(job.Job{Id: 1}, nil)
			},
			wantCode: errs.InvalidResume.Code,
		},
		{
			name: "系统错误",
			file: []byte("%PDF-1.4"),
			mock: func(svc *appmocks.MockService, jobs *jobmocks.MockService) {
				jobs.EXPECT().FindByID(gomock.Any(), int64(1)).Return(job.Job{Id: 1}, nil)
				svc.EXPECT().SubmitResume(gomock.Any(), int64(1), int64(uid), gomock.Any()).
					Return(domain.SubmitResult{}, errors.New("cos 不可用"))
			},
			wantCode: errs.SystemError.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, jobs := appmocks.NewMockService(ctrl), jobmocks.NewMockService(ctrl)
			tc.mock(svc, jobs)
			server := newServer(t, svc, jobs)

			var body bytes.Buffer
			w := multipart.NewWriter(&body)
			require.NoError(t, w.WriteField("jobId", "1"))
			fw, err := w.CreateFormFile("file", "cv.pdf")
			require.NoError(t, err)
			_, err = fw.Write(tc.file)
			require.NoError(t, err)
			require.NoError(t, w.Close())
			req, err := http.NewRequest(http.MethodPost, "/application/resume", &body)
			require.NoError(t, err)
			req.Header.Set("Content-Type", w.FormDataContentType())

			recorder := test.NewJSONResponseRecorder[SubmitResult]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantData, res.Data)
		})
	}
}

func TestHandler_Artifact(t *testing.T) {
	testCases := []struct {
		name     string
		kind     string
		mock     func(svc *appmocks.MockService)
		wantCode int
		wantData Artifact
	}{
		{
			name: "视频",
			kind: "video",
			mock: func(svc *appmocks.MockService) {
				svc.EXPECT().Artifact(gomock.Any(), int64(1), int64(uid), domain.ArtifactVideo).
					Return(domain.Artifact{Kind: domain.ArtifactVideo, Video: &domain.VideoArtifact{URL: "https://cos/v.webm"}}, nil)
			},
			wantData: Artifact{Kind: "video", Video: &VideoArtifact{URL: "https://cos/v.webm"}},
		},
		{
			name: "还没有完成",
			kind: "interview",
			mock: func(svc *appmocks.MockService) {
				svc.EXPECT().Artifact(gomock.Any(), int64(1), int64(uid), domain.ArtifactInterview).
					Return(domain.Artifact{}, service.ErrArtifactNotReady)
			},
			wantCode: errs.ArtifactNotReady.Code,
		},
		{
			name: "申请不存在",
			kind: "resume",
			mock: func(svc *appmocks.MockService) {
				svc.EXPECT().Artifact(gomock.Any(), int64(1), int64(uid), domain.ArtifactResume).
					Return(domain.Artifact{}, service.ErrApplicationNotFound)
			},
			wantCode: errs.ApplicationNotFound.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := appmocks.NewMockService(ctrl)
			tc.mock(svc)
			server := newServer(t, svc, jobmocks.NewMockService(ctrl))
			req, err := http.NewRequest(http.MethodGet, "/application/artifact?jobId=1&kind="+tc.kind, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Artifact]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode == 0 {
				assert.Equal(t, tc.wantData, res.Data)
			}
		})
	}
}

func TestHandler_ConfirmUpload(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		mock      func(svc *appmocks.MockService, jobs *jobmocks.MockService)
		wantCode  int
		wantStage string
	}{
		{
			name: "登记直传的视频",
			body: `{"jobId":1,"kind":"video","path":"10/video/1_v.webm"}`,
			mock: func(svc *appmocks.MockService, jobs *jobmocks.MockService) {
				jobs.EXPECT().FindByID(gomock.Any(), int64(1)).Return(job.Job{Id: 1}, nil)
				svc.EXPECT().ConfirmUpload(gomock.Any(), int64(1), int64(uid), domain.ArtifactVideo, "10/video/1_v.webm").
					Return(domain.SubmitResult{
						Application: domain.Application{Id: 10, Status: domain.StatusVideoUploaded, VideoPath: "10/video/1_v.webm"},
						Stage:       domain.StageInterview,
					}, nil)
			},
			wantStage: "interview",
		},
		{
			name: "对象不存在",
			body: `{"jobId":1,"kind":"resume","path":"10/resume/1_cv.pdf"}`,
			mock: func(svc *appmocks.MockService, jobs *jobmocks.MockService) {
				jobs.EXPECT().FindByID(gomock.Any(), int64(1)).Return(job.Job{Id: 1}, nil)
				svc.EXPECT().ConfirmUpload(gomock.Any(), int64(1), int64(uid), domain.ArtifactResume, "10/resume/1_cv.pdf").
					Return(domain.SubmitResult{}, service.ErrUploadNotFound)
			},
			wantCode: errs.UploadNotFound.Code,
		},
		{
			name:     "岗位不存在",
			body:     `{"jobId":0,"kind":"resume","path":"10/resume/1_cv.pdf"}`,
			mock:     func(svc *appmocks.MockService, jobs *jobmocks.MockService) {},
			wantCode: errs.JobNotFound.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, jobs := appmocks.NewMockService(ctrl), jobmocks.NewMockService(ctrl)
			tc.mock(svc, jobs)
			server := newServer(t, svc, jobs)
			req, err := http.NewRequest(http.MethodPost, "/application/upload-confirm", strings.NewReader(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[SubmitResult]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantStage, res.Data.Stage)
		})
	}
}

func TestHandler_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := appmocks.NewMockService(ctrl)
	svc.EXPECT().Report(gomock.Any(), int64(10)).
		Return(domain.Report{Name: "application_10_report.docx", Data: []byte("PK-docx")}, nil)
	server := newServer(t, svc, jobmocks.NewMockService(ctrl))
	req, err := http.NewRequest(http.MethodGet, "/application/report?applicationId=10", nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, docxContentType, recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "application_10_report.docx")
	assert.Equal(t, "PK-docx", recorder.Body.String())
}

// browser 模拟浏览器这一端
type browser struct {
	t    *testing.T
	conn *websocket.Conn
}

func (b *browser) send(f wsdevice.Frame) {
	require.NoError(b.t, b.conn.WriteJSON(f))
}

func (b *browser) expect(typ string) wsdevice.Frame {
	require.NoError(b.t, b.conn.SetReadDeadline(time.Now().Add(time.Second*3)))
	var f wsdevice.Frame
	require.NoError(b.t, b.conn.ReadJSON(&f))
	require.Equal(b.t, typ, f.Type, "收到的帧 %+v", f)
	return f
}

func TestHandler_RecordVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := appmocks.NewMockService(ctrl)
	svc.EXPECT().FindByJobAndCandidate(gomock.Any(), int64(1), int64(uid)).
		Return(domain.Application{Id: 10, JobId: 1, ResumePath: "10/resume/1_cv.pdf"}, nil)
	// 第一次提交失败，录好的视频保留下来可以重试
	svc.EXPECT().SubmitVideo(gomock.Any(), int64(1), int64(uid), gomock.Any()).
		Return(domain.SubmitResult{}, errors.New("cos 不可用"))
	svc.EXPECT().SubmitVideo(gomock.Any(), int64(1), int64(uid), gomock.Any()).
		DoAndReturn(func(ctx context.Context, jobId, candidateId int64, file domain.File) (domain.SubmitResult, error) {
			assert.Equal(t, "recording.webm", file.Name)
			assert.Equal(t, "video/webm;codecs=vp8,opus", file.ContentType)
			assert.Equal(t, "webm-data", string(file.Data))
			return domain.SubmitResult{
				Application: domain.Application{Id: 10, JobId: 1, Status: domain.StatusVideoUploaded,
					ResumePath: "10/resume/1_cv.pdf", VideoPath: "10/video/1_recording.webm"},
				Stage: domain.StageInterview,
			}, nil
		})
	server := httptest.NewServer(newServer(t, svc, jobmocks.NewMockService(ctrl)))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/application/video/record?jobId=1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	b := &browser{t: t, conn: conn}

	b.send(wsdevice.Frame{Type: wsdevice.FrameHello, MimeTypes: []string{"video/mp4", "video/webm;codecs=vp8,opus"}})
	negotiated := b.expect(frameNegotiated)
	assert.Equal(t, []string{"video/webm;codecs=vp8,opus"}, negotiated.MimeTypes)

	b.send(wsdevice.Frame{Type: frameStart})
	acquire := b.expect(wsdevice.FrameAcquire)
	require.NotNil(t, acquire.Constraints)
	assert.NotNil(t, acquire.Constraints.Video)
	b.send(wsdevice.Frame{Type: wsdevice.FrameAcquired, ID: acquire.ID, Tracks: []wsdevice.TrackInfo{
		{ID: "cam", Kind: media.KindVideo},
		{ID: "mic", Kind: media.KindAudio},
	}})
	b.expect(frameRecording)

	// 麦克风的数据不会被录制，数量远超缓冲区也不能卡住后面的 stop
	pcm := base64.StdEncoding.EncodeToString([]byte("pcm"))
	for i := 0; i < 100; i++ {
		b.send(wsdevice.Frame{Type: wsdevice.FrameChunk, ID: "mic", Data: pcm})
		if i == 50 {
			b.send(wsdevice.Frame{Type: wsdevice.FrameChunk, ID: "cam", Data: base64.StdEncoding.EncodeToString([]byte("webm-"))})
		}
	}
	b.send(wsdevice.Frame{Type: wsdevice.FrameChunk, ID: "cam", Data: base64.StdEncoding.EncodeToString([]byte("data"))})
	b.send(wsdevice.Frame{Type: frameStop})
	// 释放摄像头的时候每个 track 都会收到 stop
	stopped := map[string]bool{}
	var recorded wsdevice.Frame
	for recorded.Type != frameRecorded {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second*3)))
		var f wsdevice.Frame
		require.NoError(t, conn.ReadJSON(&f))
		switch f.Type {
		case wsdevice.FrameStop:
			stopped[f.ID] = true
		case frameRecorded:
			recorded = f
		default:
			t.Fatalf("不应该收到 %+v", f)
		}
	}
	assert.Equal(t, map[string]bool{"cam": true, "mic": true}, stopped)
	var vo RecordedVO
	require.NoError(t, json.Unmarshal(recorded.Payload, &vo))
	assert.Equal(t, 9, vo.Size)
	assert.Equal(t, "manual", vo.Reason)

	b.send(wsdevice.Frame{Type: frameSubmit})
	failed := b.expect(frameError)
	assert.Equal(t, codeString(errs.SystemError.Code), failed.Reason)

	b.send(wsdevice.Frame{Type: frameSubmit})
	submitted := b.expect(frameSubmitted)
	var res SubmitResult
	require.NoError(t, json.Unmarshal(submitted.Payload, &res))
	assert.Equal(t, "interview", res.Stage)
	assert.True(t, res.Application.HasVideo)

	b.send(wsdevice.Frame{Type: frameEnd})
}

func TestHandler_RecordVideoWithoutResume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := appmocks.NewMockService(ctrl)
	svc.EXPECT().FindByJobAndCandidate(gomock.Any(), int64(1), int64(uid)).
		Return(domain.Application{}, service.ErrApplicationNotFound)
	server := newServer(t, svc, jobmocks.NewMockService(ctrl))
	req, err := http.NewRequest(http.MethodGet, "/application/video/record?jobId=1", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, errs.ResumeRequired.Code, recorder.MustScan().Code)
}
