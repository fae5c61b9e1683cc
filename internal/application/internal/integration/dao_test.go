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

//go:build e2e

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hireflow/internal/application/internal/repository/dao"
	testioc "github.com/ecodeclub/hireflow/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ApplicationDAOTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.ApplicationDAO
}

func (s *ApplicationDAOTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewGORMApplicationDAO(s.db)
}

func (s *ApplicationDAOTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `applications`").Error
	require.NoError(s.T(), err)
}

func (s *ApplicationDAOTestSuite) TestFindOrCreate() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	first, err := s.dao.FindOrCreate(ctx, dao.Application{
		Id:          1,
		JobId:       11,
		CandidateId: 101,
		Status:      dao.StatusResumeUploaded,
		ResumePath:  sql.NullString{String: "resumes/101/a.pdf", Valid: true},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Id)
	assert.True(t, first.Ctime > 0)

	// 同一个岗位同一个候选人只有一条记录
	second, err := s.dao.FindOrCreate(ctx, dao.Application{
		Id:          2,
		JobId:       11,
		CandidateId: 101,
		Status:      dao.StatusResumeUploaded,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.Id)
	assert.Equal(t, "resumes/101/a.pdf", second.ResumePath.String)

	var cnt int64
	err = s.db.WithContext(ctx).Model(&dao.Application{}).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func (s *ApplicationDAOTestSuite) TestUpdateStatus() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	_, err := s.dao.FindOrCreate(ctx, dao.Application{
		Id:          3,
		JobId:       12,
		CandidateId: 102,
		Status:      "interview_started",
	})
	require.NoError(t, err)

	// 状态不在 from 里面，只更新字段
	err = s.dao.UpdateStatus(ctx, 3, []string{dao.StatusResumeUploaded}, "video_uploaded", map[string]any{
		"video_path": "videos/102/b.webm",
	})
	require.NoError(t, err)
	app, err := s.dao.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "interview_started", app.Status)
	assert.Equal(t, "videos/102/b.webm", app.VideoPath.String)

	err = s.dao.UpdateStatus(ctx, 3, []string{"interview_started"}, dao.StatusInterviewCompleted, map[string]any{
		"conversation_transcript": "AI: hi\nHuman: hello",
	})
	require.NoError(t, err)
	app, err = s.dao.FindByJobAndCandidate(ctx, 12, 102)
	require.NoError(t, err)
	assert.Equal(t, dao.StatusInterviewCompleted, app.Status)
	assert.Equal(t, "AI: hi\nHuman: hello", app.ConversationTranscript.String)
}

func (s *ApplicationDAOTestSuite) TestUpdateMissing() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	err := s.dao.UpdateStatus(ctx, 404, []string{dao.StatusResumeUploaded}, "video_uploaded", map[string]any{
		"video_path": "videos/404/a.webm",
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	err = s.dao.UpdateColumns(ctx, 404, map[string]any{"assessment_score": 80})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = s.dao.FindOrCreate(ctx, dao.Application{Id: 5, JobId: 13, CandidateId: 103, Status: dao.StatusResumeUploaded})
	require.NoError(t, err)
	err = s.dao.UpdateColumns(ctx, 5, map[string]any{"status": dao.StatusResumeUploaded})
	assert.NoError(t, err)
}

func (s *ApplicationDAOTestSuite) TestFindPending() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	old := time.Now().Add(-time.Hour).UnixMilli()
	apps := []dao.Application{
		{
			Id: 21, JobId: 1, CandidateId: 1, Status: dao.StatusResumeUploaded,
			ResumePath: sql.NullString{String: "r1", Valid: true},
			Ctime:      old, Utime: old,
		},
		{
			// 已经有分析结果
			Id: 22, JobId: 1, CandidateId: 2, Status: dao.StatusResumeUploaded,
			ResumePath: sql.NullString{String: "r2", Valid: true},
			AiAnalysis: sql.NullString{String: "ok", Valid: true},
			Ctime:      old, Utime: old,
		},
		{
			Id: 23, JobId: 1, CandidateId: 3, Status: dao.StatusInterviewCompleted,
			ConversationTranscript: sql.NullString{String: "AI: hi", Valid: true},
			KeyAttributes:          sqlx.JsonColumn[[]string]{Val: []string{"Go"}, Valid: true},
			Ctime:                  old, Utime: old,
		},
		{
			// 分析还没回来候选人已经上传了视频
			Id: 25, JobId: 2, CandidateId: 1, Status: "video_uploaded",
			ResumePath: sql.NullString{String: "r5", Valid: true},
			VideoPath:  sql.NullString{String: "v5", Valid: true},
			Ctime:      old, Utime: old,
		},
		{
			Id: 26, JobId: 2, CandidateId: 2, Status: "interview_started",
			ResumePath: sql.NullString{String: "r6", Valid: true},
			AiAnalysis: sql.NullString{String: "ok", Valid: true},
			Ctime:      old, Utime: old,
		},
		{
			// 刚刚更新过
			Id: 24, JobId: 1, CandidateId: 4, Status: dao.StatusInterviewCompleted,
			ConversationTranscript: sql.NullString{String: "AI: hi", Valid: true},
			Ctime:                  time.Now().UnixMilli(), Utime: time.Now().UnixMilli(),
		},
	}
	require.NoError(t, s.db.WithContext(ctx).Create(&apps).Error)

	before := time.Now().Add(-time.Minute).UnixMilli()
	resumes, err := s.dao.FindPendingResumeAnalysis(ctx, before, 10)
	require.NoError(t, err)
	ids := make([]int64, 0, len(resumes))
	for _, r := range resumes {
		ids = append(ids, r.Id)
	}
	assert.ElementsMatch(t, []int64{21, 25}, ids)

	interviews, err := s.dao.FindPendingInterviewAnalysis(ctx, before, 10)
	require.NoError(t, err)
	require.Len(t, interviews, 1)
	assert.Equal(t, int64(23), interviews[0].Id)
	assert.Equal(t, []string{"Go"}, interviews[0].KeyAttributes.Val)
}

func TestApplicationDAO(t *testing.T) {
	suite.Run(t, new(ApplicationDAOTestSuite))
}
