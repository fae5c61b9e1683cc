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

package storage

import (
	"time"

	"github.com/ecodeclub/hireflow/internal/storage/internal/domain"
	"github.com/ecodeclub/hireflow/internal/storage/internal/service"
)

type Service = service.Service
type Object = domain.Object
type Credentials = domain.Credentials
type ObjectInfo = domain.ObjectInfo
type Kind = domain.Kind
type Config = service.Config

const (
	KindResume      = domain.KindResume
	KindVideo       = domain.KindVideo
	KindJobDocument = domain.KindJobDocument

	SignedURLExpiration = service.SignedURLExpiration
)

var (
	ErrEmptyObject    = service.ErrEmptyObject
	ErrObjectNotFound = service.ErrObjectNotFound
)

func BuildPath(namespace string, kind Kind, name string, now time.Time) string {
	return domain.BuildPath(namespace, kind, name, now)
}

func SanitizeName(name string) string {
	return domain.SanitizeName(name)
}
