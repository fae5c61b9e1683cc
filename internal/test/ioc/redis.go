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

package testioc

import (
	"sync"

	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

var (
	ec        ecache.Cache
	cacheOnce sync.Once
)

// InitCache 测试用的 key 统一加上 hireflow_test: 前缀，方便清理
func InitCache() ecache.Cache {
	cacheOnce.Do(func() {
		loadConfig()
		addr := econf.GetString("redis.addr")
		if addr == "" {
			addr = "localhost:6379"
		}
		cmd := redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   econf.GetInt("redis.db"),
		})
		ec = &ecache.NamespaceCache{
			C:         eredis.NewCache(cmd),
			Namespace: "hireflow_test:",
		}
	})
	return ec
}
