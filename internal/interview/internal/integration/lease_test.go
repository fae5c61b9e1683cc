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

//go:build e2e

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hireflow/internal/interview/internal/repository/cache"
	testioc "github.com/ecodeclub/hireflow/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SessionLeaseTestSuite struct {
	suite.Suite
	ec     ecache.Cache
	leases cache.SessionLeaseCache
}

func (s *SessionLeaseTestSuite) SetupSuite() {
	s.ec = testioc.InitCache()
	s.leases = cache.NewSessionLeaseCache(s.ec)
}

func (s *SessionLeaseTestSuite) TearDownTest() {
	_, err := s.ec.Delete(context.Background(), "interview:session:1", "interview:session:2")
	require.NoError(s.T(), err)
}

func (s *SessionLeaseTestSuite) TestAcquireRelease() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	ok, err := s.leases.Acquire(ctx, 1, "node-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// 同一个持有者续期
	ok, err = s.leases.Acquire(ctx, 1, "node-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.leases.Acquire(ctx, 1, "node-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// 别人的租约释放不掉
	require.NoError(t, s.leases.Release(ctx, 1, "node-b"))
	ok, err = s.leases.Acquire(ctx, 1, "node-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.leases.Release(ctx, 1, "node-a"))
	ok, err = s.leases.Acquire(ctx, 1, "node-b", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func (s *SessionLeaseTestSuite) TestExpire() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	ok, err := s.leases.Acquire(ctx, 2, "node-a", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Eventually(t, func() bool {
		ok, err := s.leases.Acquire(ctx, 2, "node-b", time.Minute)
		return err == nil && ok
	}, time.Second*3, time.Millisecond*100)
}

func TestSessionLease(t *testing.T) {
	suite.Run(t, new(SessionLeaseTestSuite))
}
