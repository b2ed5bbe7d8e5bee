package payment

import (
	"github.com/flusio/soutenir/internal/payment/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("payment.repository",
	fx.Provide(repository.Provide),
)
