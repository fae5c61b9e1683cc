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
)

//go:generate mockgen -source=./job.go -package=daomocks -destination=mocks/job.mock.go JobDAO
type JobDAO interface {
	FindByID(ctx context.Context, id int64) (Job, error)
	Create(ctx context.Context, j Job) (int64, error)
	UpdateDocument(ctx context.Context, id int64, path string, doc sqlx.JsonColumn[Document]) error
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (g *GORMJobDAO) FindByID(ctx context.Context, id int64) (Job, error) {
	var res Job
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMJobDAO) Create(ctx context.Context, j Job) (int64, error) {
	now := time.Now().UnixMilli()
	j.Ctime = now
	j.Utime = now
	err := g.db.WithContext(ctx).Create(&j).Error
	return j.Id, err
}

func (g *GORMJobDAO) UpdateDocument(ctx context.Context, id int64, path string, doc sqlx.JsonColumn[Document]) error {
	res := g.db.WithContext(ctx).Model(&Job{}).Where("id = ?", id).Updates(map[string]any{
		"document_path": sqlx.NewNullString(path),
		"document":      doc,
		"utime":         time.Now().UnixMilli(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

type Job struct {
	Id           int64                     `gorm:"primaryKey;autoIncrement"`
	Title        string                    `gorm:"type:varchar(512);not null"`
	Description  sql.NullString            `gorm:"type:text"`
	Requirements sqlx.JsonColumn[[]string] `gorm:"type:text;comment:岗位要求"`
	DocumentPath sql.NullString            `gorm:"type:varchar(1024);comment:岗位文档路径"`
	Document     sqlx.JsonColumn[Document] `gorm:"type:text;comment:岗位文档整理结果"`
	Ctime        int64
	Utime        int64
}

func (Job) TableName() string {
	return "jobs"
}

type Document struct {
	Description             string   `json:"description"`
	EssentialAttributes     []string `json:"essentialAttributes"`
	GoodCandidateAttributes string   `json:"goodCandidateAttributes"`
	BadCandidateAttributes  string   `json:"badCandidateAttributes"`
}
