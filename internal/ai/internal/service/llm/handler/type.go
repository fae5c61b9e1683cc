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

package handler

import (
	"context"

	"github.com/ecodeclub/hireflow/internal/ai/internal/domain"
)

//go:generate mockgen -source=./type.go -destination=./mocks/handler.mock.go -package=hdlmocks Handler
type Handler interface {
	Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error)
}

// Builder 包装下一个 Handler，用来组装调用链
type Builder interface {
	Next(next Handler) Handler
}

type HandleFunc func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error)

func (h HandleFunc) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	return h(ctx, req)
}

// Chain builders[0] 在最外层，最后才轮到 root
func Chain(root Handler, builders ...Builder) Handler {
	for i := len(builders) - 1; i >= 0; i-- {
		root = builders[i].Next(root)
	}
	return root
}
