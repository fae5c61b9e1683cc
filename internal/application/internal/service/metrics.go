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
	"github.com/prometheus/client_golang/prometheus"
)

// 结果的取值
const (
	resultSuccess = "success"
	resultFailed  = "failed"
	resultWarning = "warning"
)

// Metrics 流水线各个阶段的计数
type Metrics struct {
	stages   *prometheus.CounterVec
	analyses *prometheus.CounterVec
}

// NewMetrics reg 为 nil 的时候注册到默认的 Registerer
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	stages := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "application",
		Name:      "stage_submissions_total",
		Help:      "Total number of pipeline stage submissions",
	}, []string{"stage", "result"})
	analyses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "application",
		Name:      "analyses_total",
		Help:      "Total number of resume and interview analyses",
	}, []string{"kind", "result"})
	reg.MustRegister(stages, analyses)
	return &Metrics{
		stages:   stages,
		analyses: analyses,
	}
}

func (m *Metrics) stage(stage, result string) {
	m.stages.WithLabelValues(stage, result).Inc()
}

func (m *Metrics) analysis(kind, result string) {
	m.analyses.WithLabelValues(kind, result).Inc()
}
