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

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/pkg/snowflake"
)

// StageChange 推进阶段的时候一起写入的路径，空字符串表示不修改
type StageChange struct {
	ResumePath string
	VideoPath  string
}

//go:generate mockgen -source=./application.go -package=repomocks -destination=mocks/application.mock.go ApplicationRepository
type ApplicationRepository interface {
	FindOrCreate(ctx context.Context, jobId, candidateId int64) (domain.Application, error)
	FindByJobAndCandidate(ctx context.Context, jobId, candidateId int64) (domain.Application, error)
	FindByID(ctx context.Context, id int64) (domain.Application, error)
	UpdateStage(ctx context.Context, id int64, from []domain.Status, to domain.Status, change StageChange) error
	// SaveTranscript 保存面试记录并且把状态推进到 interview_completed
	SaveTranscript(ctx context.Context, id int64, transcript string) error
	SaveAssessment(ctx context.Context, id int64, score int, feedback string) error
	// SaveResumeAnalysis 覆盖之前的分析结果
	SaveResumeAnalysis(ctx context.Context, id int64, analysis string, keyAttributes []string) error
	// MarkAnalyzed 只有在不会让流程倒退的时候才会修改状态
	MarkAnalyzed(ctx context.Context, id int64, kind domain.ArtifactKind) error
	FindPendingAnalysis(ctx context.Context, kind domain.AnalysisKind, before time.Time, limit int) ([]domain.Application, error)
}

type applicationRepository struct {
	dao   dao.ApplicationDAO
	idGen snowflake.IDGenerator
}

func NewApplicationRepository(d dao.ApplicationDAO, idGen snowflake.IDGenerator) ApplicationRepository {
	return &applicationRepository{
		dao:   d,
		idGen: idGen,
	}
}

func (r *applicationRepository) FindOrCreate(ctx context.Context, jobId, candidateId int64) (domain.Application, error) {
	id, err := r.idGen.Generate(snowflake.BizApplication)
	if err != nil {
		return domain.Application{}, err
	}
	app, err := r.dao.FindOrCreate(ctx, dao.Application{
		Id:          id,
		JobId:       jobId,
		CandidateId: candidateId,
		Status:      domain.StatusInProgress.String(),
	})
	if err != nil {
		return domain.Application{}, err
	}
	return r.toDomain(app), nil
}

func (r *applicationRepository) FindByJobAndCandidate(ctx context.Context, jobId, candidateId int64) (domain.Application, error) {
	app, err := r.dao.FindByJobAndCandidate(ctx, jobId, candidateId)
	if err != nil {
		return domain.Application{}, err
	}
	return r.toDomain(app), nil
}

func (r *applicationRepository) FindByID(ctx context.Context, id int64) (domain.Application, error) {
	app, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	return r.toDomain(app), nil
}

func (r *applicationRepository) UpdateStage(ctx context.Context, id int64,
	from []domain.Status, to domain.Status, change StageChange) error {
	columns := make(map[string]any, 2)
	if change.ResumePath != "" {
		columns["resume_path"] = sqlx.NewNullString(change.ResumePath)
	}
	if change.VideoPath != "" {
		columns["video_path"] = sqlx.NewNullString(change.VideoPath)
	}
	return r.dao.UpdateStatus(ctx, id, r.statuses(from), to.String(), columns)
}

func (r *applicationRepository) SaveTranscript(ctx context.Context, id int64, transcript string) error {
	return r.dao.UpdateStatus(ctx, id,
		r.statuses(domain.Predecessors(domain.StatusInterviewCompleted)),
		domain.StatusInterviewCompleted.String(),
		map[string]any{
			"conversation_transcript": sqlx.NewNullString(transcript),
		})
}

func (r *applicationRepository) SaveAssessment(ctx context.Context, id int64, score int, feedback string) error {
	return r.dao.UpdateColumns(ctx, id, map[string]any{
		"assessment_score":   sql.NullInt64{Int64: int64(score), Valid: true},
		"interview_feedback": sqlx.NewNullString(feedback),
	})
}

func (r *applicationRepository) SaveResumeAnalysis(ctx context.Context, id int64, analysis string, keyAttributes []string) error {
	return r.dao.UpdateColumns(ctx, id, map[string]any{
		"ai_analysis": sqlx.NewNullString(analysis),
		"key_attributes": sqlx.JsonColumn[[]string]{
			Val:   keyAttributes,
			Valid: len(keyAttributes) > 0,
		},
	})
}

func (r *applicationRepository) MarkAnalyzed(ctx context.Context, id int64, kind domain.ArtifactKind) error {
	var to domain.Status
	switch kind {
	case domain.ArtifactResume:
		to = domain.StatusResumeAnalyzed
	case domain.ArtifactVideo:
		to = domain.StatusVideoAnalyzed
	default:
		return fmt.Errorf("不支持的分析类型 %s", kind)
	}
	return r.dao.UpdateStatus(ctx, id, r.statuses(domain.Predecessors(to)), to.String(), map[string]any{})
}

func (r *applicationRepository) FindPendingAnalysis(ctx context.Context, kind domain.AnalysisKind,
	before time.Time, limit int) ([]domain.Application, error) {
	var (
		apps []dao.Application
		err  error
	)
	switch kind {
	case domain.AnalysisResume:
		apps, err = r.dao.FindPendingResumeAnalysis(ctx, before.UnixMilli(), limit)
	case domain.AnalysisInterview:
		apps, err = r.dao.FindPendingInterviewAnalysis(ctx, before.UnixMilli(), limit)
	default:
		return nil, fmt.Errorf("不支持的分析类型 %s", kind)
	}
	if err != nil {
		return nil, err
	}
	return slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), nil
}

func (r *applicationRepository) statuses(src []domain.Status) []string {
	return slice.Map(src, func(idx int, src domain.Status) string {
		return src.String()
	})
}

func (r *applicationRepository) toDomain(app dao.Application) domain.Application {
	res := domain.Application{
		Id:                     app.Id,
		JobId:                  app.JobId,
		CandidateId:            app.CandidateId,
		Status:                 domain.Status(app.Status),
		ResumePath:             app.ResumePath.String,
		VideoPath:              app.VideoPath.String,
		AIAnalysis:             app.AiAnalysis.String,
		KeyAttributes:          app.KeyAttributes.Val,
		ConversationTranscript: app.ConversationTranscript.String,
		InterviewFeedback:      app.InterviewFeedback.String,
		Ctime:                  app.Ctime,
		Utime:                  app.Utime,
	}
	if app.AssessmentScore.Valid {
		score := int(app.AssessmentScore.Int64)
		res.AssessmentScore = &score
	}
	return res
}
