package invoice

import (
	"github.com/flusio/soutenir/internal/invoice/pdf"
	"github.com/flusio/soutenir/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(pdf.NewRenderer),
	fx.Provide(service.New),
)
