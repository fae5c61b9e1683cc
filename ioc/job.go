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

package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

const defaultCronTimeout = 5 * time.Minute

func initCronJobs(redrive *application.RedriveAnalysisJob) []ecron.Ecron {
	return []ecron.Ecron{
		loadCron("cron.redriveAnalysis", redrive),
	}
}

// loadCron 每次执行都有超时控制，超时时间读 <key>.timeout
func loadCron(key string, job ecron.NamedJob) ecron.Ecron {
	timeout := econf.GetDuration(key + ".timeout")
	if timeout <= 0 {
		timeout = defaultCronTimeout
	}
	logger := elog.DefaultLogger.With(elog.String("cronjob", job.Name()))
	var fn ecron.FuncJob = func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		start := time.Now()
		err := job.Run(ctx)
		if err != nil {
			logger.Error("定时任务执行失败", elog.FieldErr(err), elog.FieldCost(time.Since(start)))
			return err
		}
		logger.Debug("定时任务执行完毕", elog.FieldCost(time.Since(start)))
		return nil
	}
	return ecron.Load(key).Build(ecron.WithJob(fn))
}
