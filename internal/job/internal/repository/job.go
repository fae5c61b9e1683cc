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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hireflow/internal/job/internal/domain"
	"github.com/ecodeclub/hireflow/internal/job/internal/repository/dao"
)

type JobRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Job, error)
	SaveDocument(ctx context.Context, id int64, path string, doc domain.Document) error
}

type jobRepository struct {
	dao dao.JobDAO
}

func NewJobRepository(d dao.JobDAO) JobRepository {
	return &jobRepository{dao: d}
}

func (r *jobRepository) FindByID(ctx context.Context, id int64) (domain.Job, error) {
	j, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	return r.toDomain(j), nil
}

func (r *jobRepository) SaveDocument(ctx context.Context, id int64, path string, doc domain.Document) error {
	return r.dao.UpdateDocument(ctx, id, path, sqlx.JsonColumn[dao.Document]{
		Valid: true,
		Val: dao.Document{
			Description:             doc.Description,
			EssentialAttributes:     doc.EssentialAttributes,
			GoodCandidateAttributes: doc.GoodCandidateAttributes,
			BadCandidateAttributes:  doc.BadCandidateAttributes,
		},
	})
}

func (r *jobRepository) toDomain(j dao.Job) domain.Job {
	return domain.Job{
		Id:           j.Id,
		Title:        j.Title,
		Description:  j.Description.String,
		Requirements: j.Requirements.Val,
		DocumentPath: j.DocumentPath.String,
		Document: domain.Document{
			Description:             j.Document.Val.Description,
			EssentialAttributes:     j.Document.Val.EssentialAttributes,
			GoodCandidateAttributes: j.Document.Val.GoodCandidateAttributes,
			BadCandidateAttributes:  j.Document.Val.BadCandidateAttributes,
		},
		Ctime: j.Ctime,
		Utime: j.Utime,
	}
}
