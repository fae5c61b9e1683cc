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
	"errors"

	"github.com/ecodeclub/hireflow/internal/ai/internal/domain"
	"github.com/ecodeclub/hireflow/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/hireflow/internal/ai/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./config.go -package=repomocks -destination=mocks/config.mock.go ConfigRepository
type ConfigRepository interface {
	GetConfig(ctx context.Context, biz string) (domain.BizConfig, error)
	Save(ctx context.Context, cfg domain.BizConfig) (int64, error)
}

// CachedConfigRepository 先查缓存，再查数据库，数据库里没有就用内置的默认配置
type CachedConfigRepository struct {
	dao    dao.ConfigDAO
	cache  cache.ConfigCache
	logger *elog.Component
}

func NewCachedConfigRepository(dao dao.ConfigDAO, c cache.ConfigCache) ConfigRepository {
	return &CachedConfigRepository{
		dao:    dao,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedConfigRepository) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	cfg, err := repo.cache.Get(ctx, biz)
	if err == nil {
		return cfg, nil
	}
	res, err := repo.dao.GetConfig(ctx, biz)
	switch {
	case err == nil:
		cfg = repo.toDomain(res)
	case errors.Is(err, gorm.ErrRecordNotFound):
		def, ok := domain.DefaultConfigs[biz]
		if !ok {
			return domain.BizConfig{}, err
		}
		cfg = def
	default:
		return domain.BizConfig{}, err
	}
	if err1 := repo.cache.Set(ctx, cfg); err1 != nil {
		repo.logger.Error("缓存 AI 配置失败", elog.String("biz", biz), elog.FieldErr(err1))
	}
	return cfg, nil
}

func (repo *CachedConfigRepository) Save(ctx context.Context, cfg domain.BizConfig) (int64, error) {
	id, err := repo.dao.Save(ctx, repo.toEntity(cfg))
	if err != nil {
		return 0, err
	}
	return id, repo.cache.Delete(ctx, cfg.Biz)
}

func (repo *CachedConfigRepository) toDomain(c dao.BizConfig) domain.BizConfig {
	return domain.BizConfig{
		Id:             c.Id,
		Biz:            c.Biz,
		Model:          c.Model,
		Price:          c.Price,
		Temperature:    c.Temperature,
		TopP:           c.TopP,
		SystemPrompt:   c.SystemPrompt,
		MaxInput:       c.MaxInput,
		PromptTemplate: c.PromptTemplate,
		Utime:          c.Utime,
	}
}

func (repo *CachedConfigRepository) toEntity(c domain.BizConfig) dao.BizConfig {
	return dao.BizConfig{
		Id:             c.Id,
		Biz:            c.Biz,
		Model:          c.Model,
		Price:          c.Price,
		Temperature:    c.Temperature,
		TopP:           c.TopP,
		SystemPrompt:   c.SystemPrompt,
		MaxInput:       c.MaxInput,
		PromptTemplate: c.PromptTemplate,
	}
}
