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

package media

import (
	"context"
	"sync"

	"github.com/gotomicro/ego/core/elog"
)

// Broker 设备只能被最后一个获取它的组件持有
// 新的 Acquire 之前，旧的 stream 一定会先被完全释放
type Broker struct {
	device  Device
	mu      sync.Mutex
	current *Stream
	owner   string
	logger  *elog.Component
}

func NewBroker(device Device) *Broker {
	return &Broker{
		device: device,
		logger: elog.DefaultLogger.With(elog.FieldComponentName("media.Broker")),
	}
}

func (b *Broker) Acquire(ctx context.Context, owner string, c Constraints) (*Stream, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current != nil {
		if err := b.current.Release(); err != nil {
			b.logger.Warn("释放旧的媒体流失败",
				elog.String("owner", b.owner),
				elog.FieldErr(err))
		}
		b.current, b.owner = nil, ""
	}
	s, err := b.device.Acquire(ctx, c)
	if err != nil {
		return nil, err
	}
	b.current, b.owner = s, owner
	return s, nil
}

// Release 释放 stream，如果它就是当前持有的，同时清空持有者
func (b *Broker) Release(s *Stream) error {
	if s == nil {
		return nil
	}
	b.mu.Lock()
	if b.current == s {
		b.current, b.owner = nil, ""
	}
	b.mu.Unlock()
	return s.Release()
}

func (b *Broker) Owner() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.owner
}
