package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/flusio/soutenir/internal/account/domain"
	dbpkg "github.com/flusio/soutenir/pkg/db"
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
		log:   p.Log.Named("account.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.Account, error) {
	account, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Account{}, err
	}
	if account == nil {
		return domain.Account{}, domain.ErrNotFound
	}
	return *account, nil
}

func (s *Service) Login(ctx context.Context, accountID, accessToken string) (domain.Account, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(accountID))
	if err != nil || id == 0 {
		return domain.Account{}, domain.ErrNotFound
	}

	account, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Account{}, err
	}
	if account == nil {
		return domain.Account{}, domain.ErrNotFound
	}

	if !account.CheckAccess(accessToken) {
		return domain.Account{}, domain.ErrInvalidAccessToken
	}

	return *account, nil
}

func (s *Service) Provision(ctx context.Context, email string, expiredAt *time.Time) (domain.Account, error) {
	email = domain.SanitizeEmail(email)

	existing, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return domain.Account{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	account := domain.Init(s.genID.Generate(), email)
	if expiredAt != nil {
		account.ExpiredAt = expiredAt.UTC()
	}

	if errs := account.Validate(); len(errs) > 0 {
		return domain.Account{}, errs
	}

	if err := s.repo.Insert(ctx, s.db, &account); err != nil {
		if dbpkg.IsDuplicateKeyErr(err) {
			// Lost the race against a concurrent provisioning call for the
			// same email; the existing row wins.
			existing, ferr := s.repo.FindByEmail(ctx, s.db, email)
			if ferr == nil && existing != nil {
				return *existing, nil
			}
		}
		return domain.Account{}, err
	}

	s.log.Info("account provisioned", zap.Int64("account_id", int64(account.ID)))
	return account, nil
}
