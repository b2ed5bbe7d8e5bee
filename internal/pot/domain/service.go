package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	AvailableAmount(ctx context.Context) (int64, error)
	MoveToAccountID(ctx context.Context, usageIDs []snowflake.ID, accountID snowflake.ID) error
	// CreateUsage draws from the pot for the given account. The usage is
	// settled immediately, or refused when the balance is insufficient.
	CreateUsage(ctx context.Context, accountID snowflake.ID, amount int64, frequency string) (PotUsage, error)
}
