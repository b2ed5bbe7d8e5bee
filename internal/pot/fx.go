package pot

import (
	"github.com/flusio/soutenir/internal/pot/repository"
	"github.com/flusio/soutenir/internal/pot/service"
	"go.uber.org/fx"
)

var Module = fx.Module("pot.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
