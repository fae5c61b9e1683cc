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

package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=./application.go -package=daomocks -destination=mocks/application.mock.go ApplicationDAO
type ApplicationDAO interface {
	// FindOrCreate 同一个岗位同一个候选人只会有一条记录
	FindOrCreate(ctx context.Context, app Application) (Application, error)
	FindByJobAndCandidate(ctx context.Context, jobId, candidateId int64) (Application, error)
	FindByID(ctx context.Context, id int64) (Application, error)
	// UpdateStatus columns 一定会更新，status 只有在当前状态属于 from 的时候才会变成 to
	UpdateStatus(ctx context.Context, id int64, from []string, to string, columns map[string]any) error
	UpdateColumns(ctx context.Context, id int64, columns map[string]any) error
	FindPendingResumeAnalysis(ctx context.Context, utime int64, limit int) ([]Application, error)
	FindPendingInterviewAnalysis(ctx context.Context, utime int64, limit int) ([]Application, error)
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (g *GORMApplicationDAO) FindOrCreate(ctx context.Context, app Application) (Application, error) {
	now := time.Now().UnixMilli()
	app.Ctime = now
	app.Utime = now
	db := g.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&app).Error
	if err != nil {
		return Application{}, err
	}
	return g.FindByJobAndCandidate(ctx, app.JobId, app.CandidateId)
}

func (g *GORMApplicationDAO) FindByJobAndCandidate(ctx context.Context, jobId, candidateId int64) (Application, error) {
	var res Application
	err := g.db.WithContext(ctx).
		Where("job_id = ? AND candidate_id = ?", jobId, candidateId).
		First(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) FindByID(ctx context.Context, id int64) (Application, error) {
	var res Application
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) UpdateStatus(ctx context.Context, id int64, from []string, to string, columns map[string]any) error {
	updates := make(map[string]any, len(columns)+2)
	for k, v := range columns {
		updates[k] = v
	}
	updates["status"] = gorm.Expr("CASE WHEN status IN ? THEN ? ELSE status END", from, to)
	return g.UpdateColumns(ctx, id, updates)
}

// UpdateColumns 记录不存在的时候返回 gorm.ErrRecordNotFound
func (g *GORMApplicationDAO) UpdateColumns(ctx context.Context, id int64, columns map[string]any) error {
	columns["utime"] = time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Application{}).
		Where("id = ?", id).
		Updates(columns)
	if res.Error != nil || res.RowsAffected > 0 {
		return res.Error
	}
	// MySQL 默认返回的是真正修改了的行数，值没变也是 0
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Application{}).Where("id = ?", id).Count(&cnt).Error
	if err != nil {
		return err
	}
	if cnt == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindPendingResumeAnalysis 不看状态，候选人可能在分析完成之前已经上传了视频
func (g *GORMApplicationDAO) FindPendingResumeAnalysis(ctx context.Context, utime int64, limit int) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).
		Where("ai_analysis IS NULL AND resume_path IS NOT NULL AND utime < ?", utime).
		Order("utime ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) FindPendingInterviewAnalysis(ctx context.Context, utime int64, limit int) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).
		Where("status = ? AND conversation_transcript IS NOT NULL AND conversation_transcript <> '' AND assessment_score IS NULL AND utime < ?",
			StatusInterviewCompleted, utime).
		Order("utime ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

const (
	StatusResumeUploaded     = "resume_uploaded"
	StatusInterviewCompleted = "interview_completed"
)

type Application struct {
	// 雪花算法生成
	Id                     int64                     `gorm:"primaryKey;autoIncrement:false"`
	JobId                  int64                     `gorm:"not null;uniqueIndex:uniq_job_candidate"`
	CandidateId            int64                     `gorm:"not null;uniqueIndex:uniq_job_candidate;index:idx_candidate"`
	Status                 string                    `gorm:"type:varchar(32);not null;index:idx_status_utime,priority:1"`
	ResumePath             sql.NullString            `gorm:"type:varchar(1024)"`
	VideoPath              sql.NullString            `gorm:"type:varchar(1024)"`
	AiAnalysis             sql.NullString            `gorm:"type:text"`
	KeyAttributes          sqlx.JsonColumn[[]string] `gorm:"type:text"`
	ConversationTranscript sql.NullString            `gorm:"type:mediumtext"`
	AssessmentScore        sql.NullInt64             `gorm:"type:int"`
	InterviewFeedback      sql.NullString            `gorm:"type:text"`
	Ctime                  int64
	Utime                  int64 `gorm:"index:idx_status_utime,priority:2"`
}

func (Application) TableName() string {
	return "applications"
}
