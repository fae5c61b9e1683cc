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
	"testing"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hireflow/internal/job/internal/domain"
	"github.com/ecodeclub/hireflow/internal/job/internal/repository/dao"
	daomocks "github.com/ecodeclub/hireflow/internal/job/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJobRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockJobDAO(ctrl)
	d.EXPECT().FindByID(gomock.Any(), int64(1)).Return(dao.Job{
		Id:           1,
		Title:        "后端工程师",
		Description:  sql.NullString{String: "写 Go", Valid: true},
		Requirements: sqlx.JsonColumn[[]string]{Val: []string{"Go"}, Valid: true},
		DocumentPath: sql.NullString{String: "jobs/1/document/1_jd.pdf", Valid: true},
		Document: sqlx.JsonColumn[dao.Document]{
			Val:   dao.Document{Description: "整理后", EssentialAttributes: []string{"Kafka"}},
			Valid: true,
		},
		Ctime: 10,
		Utime: 20,
	}, nil)
	d.EXPECT().UpdateDocument(gomock.Any(), int64(1), "jobs/1/document/1_jd.pdf",
		sqlx.JsonColumn[dao.Document]{
			Valid: true,
			Val:   dao.Document{Description: "新描述", BadCandidateAttributes: "不写测试"},
		}).Return(nil)

	repo := NewJobRepository(d)
	j, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.Job{
		Id:           1,
		Title:        "后端工程师",
		Description:  "写 Go",
		Requirements: []string{"Go"},
		DocumentPath: "jobs/1/document/1_jd.pdf",
		Document:     domain.Document{Description: "整理后", EssentialAttributes: []string{"Kafka"}},
		Ctime:        10,
		Utime:        20,
	}, j)
	err = repo.SaveDocument(context.Background(), 1, "jobs/1/document/1_jd.pdf",
		domain.Document{Description: "新描述", BadCandidateAttributes: "不写测试"})
	assert.NoError(t, err)
}
