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
	"time"

	"github.com/ecodeclub/hireflow/internal/storage/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
)

// 缓存时间比签名有效期短，保证拿到的链接至少还有十分钟可用
const signedURLCacheExpiration = SignedURLExpiration - 10*time.Minute

type CachedService struct {
	Service
	cache  cache.SignedURLCache
	logger *elog.Component
}

func NewCachedService(svc Service, c cache.SignedURLCache) *CachedService {
	return &CachedService{
		Service: svc,
		cache:   c,
		logger:  elog.DefaultLogger.With(elog.FieldComponentName("storage.CachedService")),
	}
}

func (s *CachedService) SignedURL(ctx context.Context, path string) (string, error) {
	u, err := s.cache.Get(ctx, path)
	if err == nil {
		return u, nil
	}
	u, err = s.Service.SignedURL(ctx, path)
	if err != nil {
		return "", err
	}
	if err1 := s.cache.Set(ctx, path, u, signedURLCacheExpiration); err1 != nil {
		s.logger.Warn("缓存签名链接失败", elog.String("path", path), elog.FieldErr(err1))
	}
	return u, nil
}
