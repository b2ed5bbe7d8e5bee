package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, usage *PotUsage) error
	// AvailableAmount computes the balance left in the common pot, in cents.
	AvailableAmount(ctx context.Context, db *gorm.DB) (int64, error)
	// MoveToAccountID reassigns the given usages to another account in a
	// single statement.
	MoveToAccountID(ctx context.Context, db *gorm.DB, usageIDs []snowflake.ID, accountID snowflake.ID) error
}
