package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	GetByID(ctx context.Context, id snowflake.ID) (Account, error)
	// Login resolves the account and verifies the supplied access token.
	Login(ctx context.Context, accountID, accessToken string) (Account, error)
	// Provision returns the account matching the email, creating it when
	// absent. The call is idempotent.
	Provision(ctx context.Context, email string, expiredAt *time.Time) (Account, error)
}
