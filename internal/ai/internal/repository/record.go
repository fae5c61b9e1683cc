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
	"github.com/ecodeclub/hireflow/internal/ai/internal/domain"
	"github.com/ecodeclub/hireflow/internal/ai/internal/repository/dao"
)

//go:generate mockgen -source=./record.go -package=repomocks -destination=mocks/record.mock.go LLMRecordRepository
type LLMRecordRepository interface {
	SaveRecord(ctx context.Context, r domain.LLMRecord) (int64, error)
	FindByTid(ctx context.Context, tid string) (domain.LLMRecord, error)
}

type llmRecordRepository struct {
	dao dao.LLMRecordDAO
}

func NewLLMRecordRepository(d dao.LLMRecordDAO) LLMRecordRepository {
	return &llmRecordRepository{dao: d}
}

func (r *llmRecordRepository) SaveRecord(ctx context.Context, l domain.LLMRecord) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(l))
}

func (r *llmRecordRepository) FindByTid(ctx context.Context, tid string) (domain.LLMRecord, error) {
	res, err := r.dao.FindByTid(ctx, tid)
	if err != nil {
		return domain.LLMRecord{}, err
	}
	return domain.LLMRecord{
		Id:             res.Id,
		Tid:            res.Tid,
		Uid:            res.Uid,
		Biz:            res.Biz,
		Tokens:         res.Tokens,
		Amount:         res.Amount,
		Input:          res.Input.Val,
		Status:         domain.RecordStatus(res.Status),
		PromptTemplate: res.PromptTemplate.String,
		Answer:         res.Answer.String,
		Ctime:          res.Ctime,
		Utime:          res.Utime,
	}, nil
}

func (r *llmRecordRepository) toEntity(l domain.LLMRecord) dao.LLMRecord {
	return dao.LLMRecord{
		Id:     l.Id,
		Tid:    l.Tid,
		Uid:    l.Uid,
		Biz:    l.Biz,
		Tokens: l.Tokens,
		Amount: l.Amount,
		Input: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   l.Input,
		},
		Status:         l.Status.ToUint8(),
		PromptTemplate: sqlx.NewNullString(l.PromptTemplate),
		Answer:         sqlx.NewNullString(l.Answer),
	}
}
