//go:build wireinject

package interview

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hireflow/config"
	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/interview/internal/agent"
	"github.com/ecodeclub/hireflow/internal/interview/internal/repository/cache"
	"github.com/ecodeclub/hireflow/internal/interview/internal/service"
	"github.com/ecodeclub/hireflow/internal/interview/internal/web"
	"github.com/ecodeclub/hireflow/internal/job"
	"github.com/google/wire"
)

func InitModule(ec ecache.Cache,
	cfg config.RealtimeConfig,
	appModule *application.Module,
	jobModule *job.Module) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*application.Module), "Svc"),
		wire.FieldsOf(new(*job.Module), "Svc"),
		cache.NewSessionLeaseCache,
		initRegistry,
		initDialer,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initRegistry(leases cache.SessionLeaseCache, cfg config.RealtimeConfig) *service.Registry {
	return service.NewRegistry(leases, cfg.LeaseTTL)
}

func initDialer(cfg config.RealtimeConfig) agent.Dialer {
	return agent.NewConvAIDialer(cfg)
}
