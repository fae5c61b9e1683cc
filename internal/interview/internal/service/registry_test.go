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
	"testing"
	"time"

	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	cachemocks "github.com/ecodeclub/hireflow/internal/interview/internal/repository/cache/mocks"
	"github.com/ecodeclub/hireflow/internal/pkg/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistry_Register(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *cachemocks.MockSessionLeaseCache
		wantErr error
		wantReg bool
	}{
		{
			name: "获得租约",
			mock: func(ctrl *gomock.Controller) *cachemocks.MockSessionLeaseCache {
				c := cachemocks.NewMockSessionLeaseCache(ctrl)
				c.EXPECT().Acquire(gomock.Any(), int64(1), gomock.Any(), time.Minute).Return(true, nil)
				return c
			},
			wantReg: true,
		},
		{
			name: "其他实例持有租约",
			mock: func(ctrl *gomock.Controller) *cachemocks.MockSessionLeaseCache {
				c := cachemocks.NewMockSessionLeaseCache(ctrl)
				c.EXPECT().Acquire(gomock.Any(), int64(1), gomock.Any(), time.Minute).Return(false, nil)
				return c
			},
			wantErr: ErrSessionActive,
		},
		{
			name: "redis 错误",
			mock: func(ctrl *gomock.Controller) *cachemocks.MockSessionLeaseCache {
				c := cachemocks.NewMockSessionLeaseCache(ctrl)
				c.EXPECT().Acquire(gomock.Any(), int64(1), gomock.Any(), time.Minute).Return(false, errors.New("mock redis"))
				return c
			},
			wantErr: errors.New("获取面试租约失败 mock redis"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			r := NewRegistry(tc.mock(ctrl), time.Minute)
			s := newSession(1, media.NewBroker(&fakeDevice{}), &fakeDialer{}, &fakePipeline{})
			err := r.Register(context.Background(), s)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
			_, ok := r.Active(1)
			assert.Equal(t, tc.wantReg, ok)
		})
	}
}

func TestRegistry_Replace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	leases := cachemocks.NewMockSessionLeaseCache(ctrl)
	r := NewRegistry(leases, time.Minute)
	leases.EXPECT().Acquire(gomock.Any(), int64(1), r.holder, time.Minute).Return(true, nil).Times(2)
	leases.EXPECT().Release(gomock.Any(), int64(1), r.holder).Return(nil).Times(2)

	dev := &fakeDevice{}
	pipeline := &fakePipeline{}
	broker := media.NewBroker(dev)
	conn := newFakeConn()
	prev := newSession(1, broker, &fakeDialer{conn: conn}, pipeline)
	require.NoError(t, r.Register(context.Background(), prev))
	require.NoError(t, prev.Start(context.Background(), testContext))

	next := newSession(1, broker, &fakeDialer{conn: newFakeConn()}, pipeline)
	require.NoError(t, r.Register(context.Background(), next))
	// 旧的会话被强制结束，记录也保存了
	assert.Equal(t, domain.StateEnded, prev.State())
	assert.Equal(t, int32(1), dev.track(0).stops.Load())
	assert.Len(t, pipeline.completeCalls(), 1)
	cur, ok := r.Active(1)
	require.True(t, ok)
	assert.Equal(t, next, cur)

	// 重复结束旧的会话不会影响新的会话
	prev.End(context.Background())
	cur, ok = r.Active(1)
	require.True(t, ok)
	assert.Equal(t, next, cur)

	next.End(context.Background())
	_, ok = r.Active(1)
	assert.False(t, ok)
}
