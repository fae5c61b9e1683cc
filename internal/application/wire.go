//go:build wireinject

package application

import (
	"sync"
	"time"

	"github.com/ecodeclub/hireflow/internal/analysis"
	"github.com/ecodeclub/hireflow/internal/application/internal/event/consumer"
	"github.com/ecodeclub/hireflow/internal/application/internal/event/producer"
	"github.com/ecodeclub/hireflow/internal/application/internal/job"
	"github.com/ecodeclub/hireflow/internal/application/internal/repository"
	"github.com/ecodeclub/hireflow/internal/application/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/application/internal/service"
	"github.com/ecodeclub/hireflow/internal/application/internal/web"
	jobmod "github.com/ecodeclub/hireflow/internal/job"
	"github.com/ecodeclub/hireflow/internal/pkg/media"
	"github.com/ecodeclub/hireflow/internal/pkg/snowflake"
	"github.com/ecodeclub/hireflow/internal/storage"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	idGen snowflake.IDGenerator,
	st *storage.Module,
	an *analysis.Module,
	jobModule *jobmod.Module) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*storage.Module), "Svc"),
		wire.FieldsOf(new(*analysis.Module), "Svc"),
		wire.FieldsOf(new(*jobmod.Module), "Svc"),
		InitApplicationDAO,
		repository.NewApplicationRepository,
		producer.NewResumeAnalysisEventProducer,
		InitMetrics,
		service.NewService,
		initHandler,
		consumer.NewResumeAnalysisEventConsumer,
		initRedriveJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitApplicationDAO(db *egorm.Component) dao.ApplicationDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMApplicationDAO(db)
}

var (
	metricsOnce = sync.Once{}
	metrics     *service.Metrics
)

// InitMetrics 同一个进程只能注册一次
func InitMetrics() *service.Metrics {
	metricsOnce.Do(func() {
		metrics = service.NewMetrics("hireflow", nil)
	})
	return metrics
}

func initHandler(svc service.Service, jobs jobmod.Service) *web.Handler {
	return web.NewHandler(svc, jobs, media.DefaultMaxDuration)
}

func initRedriveJob(svc service.Service) *job.RedriveAnalysisJob {
	// 超过十分钟还没有分析结果的才补偿
	return job.NewRedriveAnalysisJob(svc, 10*time.Minute, 100)
}
