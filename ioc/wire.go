//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/hireflow/internal/ai"
	"github.com/ecodeclub/hireflow/internal/analysis"
	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/interview"
	"github.com/ecodeclub/hireflow/internal/job"
	"github.com/ecodeclub/hireflow/internal/storage"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitIDGenerator, InitRealtimeConfig)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		ai.InitModule,
		storage.InitModule,
		job.InitModule,
		analysis.InitModule,
		application.InitModule,
		interview.InitModule,
		wire.FieldsOf(new(*application.Module), "Hdl", "RedriveJob"),
		wire.FieldsOf(new(*interview.Module), "Hdl"),
		wire.FieldsOf(new(*analysis.Module), "Hdl"),
		InitSession,
		initGinxServer,
		initConsumers,
		initCronJobs,
	)
	return new(App), nil
}
