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

//go:build wireinject

package storage

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hireflow/internal/storage/internal/repository/cache"
	"github.com/ecodeclub/hireflow/internal/storage/internal/service"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(ec ecache.Cache) (*Module, error) {
	wire.Build(
		initService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initService(ec ecache.Cache) (Service, error) {
	var cfg Config
	err := econf.UnmarshalKey("cos", &cfg)
	if err != nil {
		return nil, err
	}
	svc, err := service.NewCOSService(cfg)
	if err != nil {
		return nil, err
	}
	return service.NewCachedService(svc, cache.NewSignedURLCache(ec)), nil
}
