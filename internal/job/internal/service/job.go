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

	"github.com/ecodeclub/hireflow/internal/job/internal/domain"
	"github.com/ecodeclub/hireflow/internal/job/internal/repository"
)

var ErrEmptyDocument = errors.New("岗位文档整理结果为空")

//go:generate mockgen -source=./job.go -package=jobmocks -destination=../../mocks/job.mock.go Service
type Service interface {
	FindByID(ctx context.Context, id int64) (domain.Job, error)
	// SaveDocument 保存岗位文档的路径和整理结果，重复保存会覆盖
	SaveDocument(ctx context.Context, id int64, path string, doc domain.Document) error
}

type service struct {
	repo repository.JobRepository
}

func NewService(repo repository.JobRepository) Service {
	return &service{repo: repo}
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) SaveDocument(ctx context.Context, id int64, path string, doc domain.Document) error {
	if doc.Empty() {
		return ErrEmptyDocument
	}
	return s.repo.SaveDocument(ctx, id, path, doc)
}
