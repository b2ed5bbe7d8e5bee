package migration

import (
	accountdomain "github.com/flusio/soutenir/internal/account/domain"
	paymentdomain "github.com/flusio/soutenir/internal/payment/domain"
	potdomain "github.com/flusio/soutenir/internal/pot/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(Run),
)

// Run creates or updates the schema for the persisted models.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountdomain.Account{},
		&paymentdomain.Payment{},
		&potdomain.PotUsage{},
	)
}
