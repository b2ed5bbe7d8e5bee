package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	TypeCommonPot    = "common_pot"
	TypeSubscription = "subscription"
	TypeCredit       = "credit"

	FrequencyMonth = "month"
	FrequencyYear  = "year"

	// Amount bounds in cents, shared with pot usages.
	MinAmount = 100
	MaxAmount = 12000
)

// Payment is a billing event. CompletedAt is nil while the payment is
// pending. Credit payments reference the completed payment they reverse.
type Payment struct {
	ID                snowflake.ID  `gorm:"primaryKey" json:"id"`
	AccountID         snowflake.ID  `gorm:"not null;index" json:"account_id"`
	Type              string        `gorm:"not null" json:"type"`
	Amount            int64         `gorm:"not null" json:"amount"`
	Frequency         string        `json:"frequency,omitempty"`
	InvoiceNumber     string        `json:"invoice_number,omitempty"`
	CreditedPaymentID *snowflake.ID `gorm:"index" json:"credited_payment_id,omitempty"`
	CreatedAt         time.Time     `gorm:"not null" json:"created_at"`
	CompletedAt       *time.Time    `json:"completed_at,omitempty"`
}

// IsCompleted reports whether the payment has settled.
func (p Payment) IsCompleted() bool {
	return p.CompletedAt != nil
}
