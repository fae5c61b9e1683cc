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

package producer

import (
	"github.com/ecodeclub/hireflow/internal/application/internal/event"
	"github.com/ecodeclub/hireflow/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./resume_analysis_producer.go -package=evtmocks -destination=../mocks/resume_analysis_producer.mock.go ResumeAnalysisEventProducer
type ResumeAnalysisEventProducer interface {
	mqx.Producer[event.ResumeAnalysisEvent]
}

func NewResumeAnalysisEventProducer(q mq.MQ) (ResumeAnalysisEventProducer, error) {
	return mqx.NewGeneralProducer[event.ResumeAnalysisEvent](q, event.ResumeAnalysisEventName)
}
