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

package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/ecodeclub/ecache"
)

//go:generate mockgen -source=./lease.go -destination=./mocks/lease.mock.go -package=cachemocks SessionLeaseCache
type SessionLeaseCache interface {
	// Acquire 抢占租约，已经被自己持有的时候续期
	Acquire(ctx context.Context, applicationId int64, holder string, ttl time.Duration) (bool, error)
	// Release 只释放自己持有的租约
	Release(ctx context.Context, applicationId int64, holder string) error
}

type sessionLeaseCache struct {
	ec ecache.Cache
}

func NewSessionLeaseCache(ec ecache.Cache) SessionLeaseCache {
	return &sessionLeaseCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "interview:session:",
		},
	}
}

func (c *sessionLeaseCache) Acquire(ctx context.Context, applicationId int64, holder string, ttl time.Duration) (bool, error) {
	key := c.key(applicationId)
	ok, err := c.ec.SetNX(ctx, key, holder, ttl)
	if err != nil || ok {
		return ok, err
	}
	cur, err := c.holder(ctx, key)
	if err != nil || cur != holder {
		return false, err
	}
	return true, c.ec.Set(ctx, key, holder, ttl)
}

func (c *sessionLeaseCache) Release(ctx context.Context, applicationId int64, holder string) error {
	key := c.key(applicationId)
	cur, err := c.holder(ctx, key)
	if err != nil || cur != holder {
		return err
	}
	_, err = c.ec.Delete(ctx, key)
	return err
}

func (c *sessionLeaseCache) holder(ctx context.Context, key string) (string, error) {
	val := c.ec.Get(ctx, key)
	if val.KeyNotFound() {
		return "", nil
	}
	if val.Err != nil {
		return "", val.Err
	}
	return val.String()
}

func (c *sessionLeaseCache) key(applicationId int64) string {
	return strconv.FormatInt(applicationId, 10)
}
