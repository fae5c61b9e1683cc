//go:build wireinject

package job

import (
	"sync"

	"github.com/ecodeclub/hireflow/internal/job/internal/repository"
	"github.com/ecodeclub/hireflow/internal/job/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/job/internal/service"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		InitJobDAO,
		repository.NewJobRepository,
		service.NewService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitJobDAO(db *egorm.Component) dao.JobDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMJobDAO(db)
}
