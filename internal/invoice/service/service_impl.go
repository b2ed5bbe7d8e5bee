package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	accountdomain "github.com/flusio/soutenir/internal/account/domain"
	"github.com/flusio/soutenir/internal/invoice/domain"
	"github.com/flusio/soutenir/internal/invoice/format"
	"github.com/flusio/soutenir/internal/invoice/pdf"
	paymentdomain "github.com/flusio/soutenir/internal/payment/domain"
	"github.com/flusio/soutenir/internal/reference"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Accounts accountdomain.Repository
	Payments paymentdomain.Repository
	Renderer *pdf.Renderer
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	accounts accountdomain.Repository
	payments paymentdomain.Repository
	renderer *pdf.Renderer
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("invoice.service"),
		accounts: p.Accounts,
		payments: p.Payments,
		renderer: p.Renderer,
	}
}

func (s *Service) Build(ctx context.Context, payment paymentdomain.Payment) (domain.Invoice, error) {
	account, err := s.accounts.FindByID(ctx, s.db, payment.AccountID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if account == nil {
		return domain.Invoice{}, fmt.Errorf("cannot build invoice for payment %s: %w", payment.ID, domain.ErrAccountMissing)
	}

	globalInfo := []domain.Field{
		{Label: "N° facture", Value: payment.InvoiceNumber},
		{Label: "Établie le", Value: format.Date(payment.CreatedAt)},
	}
	if payment.Type == paymentdomain.TypeCredit {
		if payment.CompletedAt != nil {
			globalInfo = append(globalInfo, domain.Field{Label: "Créditée le", Value: format.Date(*payment.CompletedAt)})
		} else {
			globalInfo = append(globalInfo, domain.Field{Label: "Créditée le", Value: "à créditer"})
		}
	} else {
		if payment.CompletedAt != nil {
			globalInfo = append(globalInfo, domain.Field{Label: "Payée le", Value: format.Date(*payment.CompletedAt)})
		} else {
			globalInfo = append(globalInfo, domain.Field{Label: "Payée le", Value: "à payer"})
		}
	}
	if account.CompanyVATNumber != "" {
		globalInfo = append(globalInfo, domain.Field{Label: "N° TVA client", Value: account.CompanyVATNumber})
	}

	customer := []string{
		strings.TrimSpace(account.FirstName + " " + account.LastName),
	}
	if account.HasAddress() {
		label, ok := reference.CodeToLabel(account.CountryCode)
		if !ok {
			label = account.CountryCode
		}
		customer = append(customer,
			account.Address1,
			account.Postcode+" "+account.City,
			label,
		)
	}

	amount := format.Amount(payment.Amount)

	description, err := s.purchaseDescription(ctx, payment)
	if err != nil {
		return domain.Invoice{}, err
	}

	return domain.Invoice{
		GlobalInfo: globalInfo,
		Customer:   customer,
		Purchases: []domain.Line{
			{
				Description: description,
				Quantity:    "1",
				Price:       amount,
				Total:       amount,
			},
		},
		Total: domain.Total{
			TaxExcluded: amount,
			Tax:         "non applicable",
			TaxIncluded: amount,
		},
		Footer: domain.FooterLines,
	}, nil
}

func (s *Service) purchaseDescription(ctx context.Context, payment paymentdomain.Payment) (string, error) {
	switch payment.Type {
	case paymentdomain.TypeCommonPot:
		return "Participation à la cagnotte commune\nde Flus", nil
	case paymentdomain.TypeSubscription:
		period := "1 an"
		if payment.Frequency == paymentdomain.FrequencyMonth {
			period = "1 mois"
		}
		return "Renouvellement d'un abonnement\nde " + period + " à Flus", nil
	case paymentdomain.TypeCredit:
		if payment.CreditedPaymentID == nil {
			return "", fmt.Errorf("cannot build invoice for payment %s: %w", payment.ID, domain.ErrCreditedPaymentMissing)
		}
		credited, err := s.payments.FindByID(ctx, s.db, *payment.CreditedPaymentID)
		if err != nil {
			return "", err
		}
		if credited == nil {
			return "", fmt.Errorf("cannot build invoice for payment %s: %w", payment.ID, domain.ErrCreditedPaymentMissing)
		}
		return "Remboursement de la facture\n" + credited.InvoiceNumber, nil
	default:
		return "", fmt.Errorf("cannot build invoice for payment %s: unknown type %q", payment.ID, payment.Type)
	}
}

func (s *Service) CreatePDF(ctx context.Context, payment paymentdomain.Payment, path string) error {
	invoice, err := s.Build(ctx, payment)
	if err != nil {
		return err
	}
	if err := s.renderer.CreatePDF(invoice, path); err != nil {
		return err
	}
	s.log.Info("invoice rendered",
		zap.String("payment_id", payment.ID.String()),
		zap.String("path", path),
	)
	return nil
}

func (s *Service) CreatePDFForPayment(ctx context.Context, paymentID snowflake.ID, path string) error {
	payment, err := s.payments.FindByID(ctx, s.db, paymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return paymentdomain.ErrNotFound
	}
	return s.CreatePDF(ctx, *payment, path)
}
