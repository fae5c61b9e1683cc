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
	"fmt"
	"time"

	"github.com/ecodeclub/hireflow/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

type topicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

type mqConfig struct {
	Network   string        `yaml:"network"`
	Addresses []string      `yaml:"addresses"`
	Topics    []topicConfig `yaml:"topics"`
}

// InitMQ 没有配置 kafka 地址的时候退化成进程内的队列，只适合本地开发
func InitMQ() mq.MQ {
	var cfg mqConfig
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(fmt.Errorf("读取 kafka 配置失败 %w", err))
	}
	var q mq.MQ
	if len(cfg.Addresses) == 0 {
		elog.DefaultLogger.Warn("没有配置 kafka，使用内存队列")
		q = memory.NewMQ()
	} else {
		kq, err := kafka.NewMQ(cfg.Network, cfg.Addresses)
		if err != nil {
			panic(fmt.Errorf("连接 kafka 失败 %w", err))
		}
		q = kq
	}
	if err := createTopics(q, cfg.Topics); err != nil {
		panic(err)
	}
	return mqx.NewTraceMq(q)
}

func createTopics(q mq.MQ, topics []topicConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, t := range topics {
		partitions := t.Partitions
		if partitions <= 0 {
			partitions = 1
		}
		if err := q.CreateTopic(ctx, t.Name, partitions); err != nil {
			return fmt.Errorf("创建 topic %s 失败 %w", t.Name, err)
		}
	}
	return nil
}
