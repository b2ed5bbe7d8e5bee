package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	paymentdomain "github.com/flusio/soutenir/internal/payment/domain"
)

type Service interface {
	// Build derives the printable invoice of a payment.
	Build(ctx context.Context, payment paymentdomain.Payment) (Invoice, error)
	// CreatePDF builds the invoice and writes it as a PDF file, creating
	// parent directories as needed.
	CreatePDF(ctx context.Context, payment paymentdomain.Payment, path string) error
	CreatePDFForPayment(ctx context.Context, paymentID snowflake.ID, path string) error
}
