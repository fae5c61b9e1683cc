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
	"errors"
	"time"

	"github.com/ecodeclub/ecache"
)

var ErrSignedURLNotFound = errors.New("签名链接不在缓存中")

//go:generate mockgen -source=./signed_url.go -destination=./mocks/signed_url.mock.go -package=cachemocks SignedURLCache
type SignedURLCache interface {
	Get(ctx context.Context, path string) (string, error)
	Set(ctx context.Context, path string, url string, expiration time.Duration) error
}

type signedURLCache struct {
	ec ecache.Cache
}

func NewSignedURLCache(ec ecache.Cache) SignedURLCache {
	return &signedURLCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "storage:signed:",
		},
	}
}

func (c *signedURLCache) Get(ctx context.Context, path string) (string, error) {
	val := c.ec.Get(ctx, path)
	if val.KeyNotFound() {
		return "", ErrSignedURLNotFound
	}
	if val.Err != nil {
		return "", val.Err
	}
	return val.String()
}

func (c *signedURLCache) Set(ctx context.Context, path string, url string, expiration time.Duration) error {
	return c.ec.Set(ctx, path, url, expiration)
}
