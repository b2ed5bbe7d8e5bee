package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/flusio/soutenir/internal/pot/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("pot.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) AvailableAmount(ctx context.Context) (int64, error) {
	return s.repo.AvailableAmount(ctx, s.db)
}

func (s *Service) MoveToAccountID(ctx context.Context, usageIDs []snowflake.ID, accountID snowflake.ID) error {
	if err := s.repo.MoveToAccountID(ctx, s.db, usageIDs, accountID); err != nil {
		return err
	}
	s.log.Info("pot usages reassigned",
		zap.Int("count", len(usageIDs)),
		zap.Int64("account_id", int64(accountID)),
	)
	return nil
}

func (s *Service) CreateUsage(ctx context.Context, accountID snowflake.ID, amount int64, frequency string) (domain.PotUsage, error) {
	now := time.Now().UTC()
	usage := domain.PotUsage{
		ID:          s.genID.Generate(),
		CreatedAt:   now,
		CompletedAt: &now,
		IsPaid:      true,
		Amount:      amount,
		Frequency:   frequency,
		AccountID:   accountID,
	}

	if errs := usage.Validate(); len(errs) > 0 {
		return domain.PotUsage{}, errs
	}

	available, err := s.repo.AvailableAmount(ctx, s.db)
	if err != nil {
		return domain.PotUsage{}, err
	}
	if available < amount {
		return domain.PotUsage{}, domain.ErrInsufficientFunds
	}

	if err := s.repo.Insert(ctx, s.db, &usage); err != nil {
		return domain.PotUsage{}, err
	}

	return usage, nil
}
