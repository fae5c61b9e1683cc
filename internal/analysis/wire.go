//go:build wireinject

package analysis

import (
	"github.com/ecodeclub/hireflow/internal/ai"
	"github.com/ecodeclub/hireflow/internal/analysis/internal/service"
	"github.com/ecodeclub/hireflow/internal/analysis/internal/web"
	"github.com/ecodeclub/hireflow/internal/job"
	"github.com/ecodeclub/hireflow/internal/storage"
	"github.com/google/wire"
)

func InitModule(aiModule *ai.Module, st *storage.Module, jobModule *job.Module) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*ai.Module), "Svc"),
		wire.FieldsOf(new(*storage.Module), "Svc"),
		wire.FieldsOf(new(*job.Module), "Svc"),
		service.NewLLMGateway,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
