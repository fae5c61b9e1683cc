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
	"fmt"
	"sync"
	"time"

	"github.com/ecodeclub/ekit/syncx"
	"github.com/ecodeclub/hireflow/internal/interview/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

const defaultLeaseTTL = 30 * time.Minute

var ErrSessionActive = errors.New("该申请已经有进行中的面试")

// Registry 同一个申请同时只能有一个会话
// 本实例内用 map 记录，跨实例靠 redis 租约
type Registry struct {
	mu       sync.Mutex
	sessions syncx.Map[int64, *Session]
	leases   cache.SessionLeaseCache
	holder   string
	ttl      time.Duration
	logger   *elog.Component
}

func NewRegistry(leases cache.SessionLeaseCache, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = defaultLeaseTTL
	}
	return &Registry{
		leases: leases,
		holder: shortuuid.New(),
		ttl:    ttl,
		logger: elog.DefaultLogger.With(elog.FieldComponentName("interview.Registry")),
	}
}

// Register 本实例上已有的会话会被强制结束
func (r *Registry) Register(ctx context.Context, s *Session) error {
	if prev, ok := r.sessions.Load(s.applicationId); ok && prev != s {
		r.logger.Warn("强制结束旧的面试会话",
			elog.Int64("applicationId", s.applicationId),
			elog.String("sessionId", prev.ID()))
		prev.End(ctx)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.sessions.Load(s.applicationId); ok && cur != s {
		return ErrSessionActive
	}
	ok, err := r.leases.Acquire(ctx, s.applicationId, r.holder, r.ttl)
	if err != nil {
		return fmt.Errorf("获取面试租约失败 %w", err)
	}
	if !ok {
		return ErrSessionActive
	}
	s.onEnd = r.unregister
	r.sessions.Store(s.applicationId, s)
	return nil
}

func (r *Registry) Active(applicationId int64) (*Session, bool) {
	return r.sessions.Load(applicationId)
}

func (r *Registry) unregister(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.sessions.Load(s.applicationId)
	if !ok || cur != s {
		return
	}
	r.sessions.Delete(s.applicationId)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	if err := r.leases.Release(ctx, s.applicationId, r.holder); err != nil {
		r.logger.Error("释放面试租约失败", elog.Int64("applicationId", s.applicationId), elog.FieldErr(err))
	}
}
