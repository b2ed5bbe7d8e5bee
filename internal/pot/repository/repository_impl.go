package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/flusio/soutenir/internal/pot/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, usage *domain.PotUsage) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO pot_usages (id, created_at, completed_at, is_paid, amount, frequency, account_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		usage.ID,
		usage.CreatedAt,
		usage.CompletedAt,
		usage.IsPaid,
		usage.Amount,
		usage.Frequency,
		usage.AccountID,
	).Error
}

// AvailableAmount sums completed common pot contributions, minus the ones
// reversed by a completed credit, minus completed usages. COALESCE keeps
// empty sums at zero.
func (r *repo) AvailableAmount(ctx context.Context, db *gorm.DB) (int64, error) {
	var amount int64
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(p.amount), 0) - (
		    SELECT COALESCE(SUM(pu.amount), 0)
		    FROM pot_usages pu
		    WHERE pu.completed_at IS NOT NULL
		 )
		 FROM payments p
		 WHERE p.type = 'common_pot'
		 AND p.completed_at IS NOT NULL
		 AND p.id NOT IN (
		    SELECT p2.credited_payment_id FROM payments p2
		    WHERE p2.credited_payment_id IS NOT NULL
		    AND p2.completed_at IS NOT NULL
		 )`,
	).Scan(&amount).Error
	if err != nil {
		return 0, err
	}
	return amount, nil
}

func (r *repo) MoveToAccountID(ctx context.Context, db *gorm.DB, usageIDs []snowflake.ID, accountID snowflake.ID) error {
	// An empty IN clause is not valid SQL, guard explicitly.
	if len(usageIDs) == 0 {
		return nil
	}
	return db.WithContext(ctx).Exec(
		`UPDATE pot_usages SET account_id = ? WHERE id IN ?`,
		accountID,
		usageIDs,
	).Error
}
