//go:build wireinject

package ai

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hireflow/internal/ai/internal/repository"
	"github.com/ecodeclub/hireflow/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/hireflow/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler/record"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		InitConfigDAO,
		dao.NewGORMLLMRecordDAO,
		cache.NewConfigECache,
		repository.NewCachedConfigRepository,
		repository.NewLLMRecordRepository,

		log.NewHandler,
		config.NewBuilder,
		record.NewHandler,
		InitCommonHandlers,
		InitPlatform,
		InitRootHandler,
		llm.NewLLMService,

		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitConfigDAO(db *egorm.Component) dao.ConfigDAO {
	InitTableOnce(db)
	return dao.NewGORMConfigDAO(db)
}
