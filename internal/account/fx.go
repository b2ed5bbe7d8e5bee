package account

import (
	"github.com/flusio/soutenir/internal/account/repository"
	"github.com/flusio/soutenir/internal/account/service"
	"go.uber.org/fx"
)

var Module = fx.Module("account.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
