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
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/hireflow/internal/pkg/database"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitDB() *egorm.Component {
	WaitForDBSetup(econf.GetString("mysql.dsn"))
	db := egorm.Load("mysql").Build()
	err := database.NewGormTracingPlugin().Initialize(db)
	if err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup 容器启动的时候 MySQL 可能还没有就绪，
// 就绪之后顺便把库建好，表由各个模块自己 AutoMigrate
func WaitForDBSetup(dsn string) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		panic(fmt.Errorf("mysql.dsn 格式错误 %w", err))
	}
	dbName := cfg.DBName
	cfg.DBName = ""
	sqlDB, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()

	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, 10*time.Second, 10)
	if err != nil {
		panic(err)
	}
	for {
		err = ping(sqlDB)
		if err == nil {
			break
		}
		next, ok := strategy.Next()
		if !ok {
			panic(fmt.Errorf("等待 MySQL 就绪失败 %w", err))
		}
		elog.DefaultLogger.Warn("MySQL 还没有就绪", elog.FieldErr(err), elog.Any("retryAfter", next))
		time.Sleep(next)
	}
	if dbName == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = sqlDB.ExecContext(ctx,
		"CREATE DATABASE IF NOT EXISTS `"+dbName+"` DEFAULT CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci")
	if err != nil {
		panic(fmt.Errorf("创建数据库 %s 失败 %w", dbName, err))
	}
}

func ping(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}
