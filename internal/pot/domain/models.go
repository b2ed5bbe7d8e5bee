package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	paymentdomain "github.com/flusio/soutenir/internal/payment/domain"
)

// PotUsage is a drawdown from the common pot by an account. Unlike a
// payment it carries no invoice and is settled at creation, or refused
// outright when the pot balance is too low.
type PotUsage struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time    `gorm:"not null" json:"created_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	IsPaid      bool         `gorm:"not null;default:false" json:"is_paid"`
	Amount      int64        `gorm:"not null" json:"amount"`
	Frequency   string       `gorm:"not null" json:"frequency"`
	AccountID   snowflake.ID `gorm:"not null;index" json:"account_id"`
}

// Validate collects human-readable error messages for invalid fields.
// Amount bounds are the same as for subscription payments.
func (u PotUsage) Validate() ValidationErrors {
	var errs ValidationErrors
	if u.Amount < paymentdomain.MinAmount || u.Amount > paymentdomain.MaxAmount {
		errs = append(errs, "Le montant doit être compris entre 1 et 120 €.")
	}
	if u.Frequency != paymentdomain.FrequencyMonth && u.Frequency != paymentdomain.FrequencyYear {
		errs = append(errs, "Vous devez choisir l’une des deux périodes proposées.")
	}
	return errs
}
