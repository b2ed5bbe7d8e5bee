package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	accountdomain "github.com/flusio/soutenir/internal/account/domain"
	accountrepo "github.com/flusio/soutenir/internal/account/repository"
	"github.com/flusio/soutenir/internal/config"
	"github.com/flusio/soutenir/internal/invoice/domain"
	"github.com/flusio/soutenir/internal/invoice/pdf"
	paymentdomain "github.com/flusio/soutenir/internal/payment/domain"
	paymentrepo "github.com/flusio/soutenir/internal/payment/repository"
	dbpkg "github.com/flusio/soutenir/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := dbpkg.NewTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&accountdomain.Account{}, &paymentdomain.Payment{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		Accounts: accountrepo.Provide(),
		Payments: paymentrepo.Provide(),
		Renderer: pdf.NewRenderer(config.Config{AssetsPath: t.TempDir()}),
	})
	return svc, db, node
}

func createAccount(t *testing.T, db *gorm.DB, node *snowflake.Node, withAddress bool) accountdomain.Account {
	t.Helper()

	account := accountdomain.Init(node.Generate(), "marie@example.com")
	account.FirstName = "Marie"
	account.LastName = "Dupont"
	if withAddress {
		account.Address1 = "57 rue du Vercors"
		account.Postcode = "38000"
		account.City = "Grenoble"
		account.CountryCode = "FR"
	}
	require.NoError(t, db.Create(&account).Error)
	return account
}

func createPayment(t *testing.T, db *gorm.DB, node *snowflake.Node, accountID snowflake.ID, paymentType string, completed bool) paymentdomain.Payment {
	t.Helper()

	createdAt := time.Date(2026, time.February, 3, 10, 0, 0, 0, time.UTC)
	payment := paymentdomain.Payment{
		ID:            node.Generate(),
		AccountID:     accountID,
		Type:          paymentType,
		Amount:        3000,
		Frequency:     paymentdomain.FrequencyMonth,
		InvoiceNumber: "FC-2026-001",
		CreatedAt:     createdAt,
	}
	if completed {
		completedAt := createdAt.AddDate(0, 0, 1)
		payment.CompletedAt = &completedAt
	}
	require.NoError(t, db.Create(&payment).Error)
	return payment
}

func TestBuildCommonPotInvoice(t *testing.T) {
	svc, db, node := newTestService(t)
	account := createAccount(t, db, node, true)
	payment := createPayment(t, db, node, account.ID, paymentdomain.TypeCommonPot, true)

	invoice, err := svc.Build(context.Background(), payment)
	require.NoError(t, err)

	require.Len(t, invoice.Purchases, 1)
	assert.Contains(t, invoice.Purchases[0].Description, "cagnotte commune")
	assert.Equal(t, "1", invoice.Purchases[0].Quantity)
	assert.Equal(t, "30 €", invoice.Purchases[0].Price)

	assert.Equal(t, "30 €", invoice.Total.TaxExcluded)
	assert.Equal(t, "non applicable", invoice.Total.Tax)
	assert.Equal(t, "30 €", invoice.Total.TaxIncluded)

	require.GreaterOrEqual(t, len(invoice.GlobalInfo), 3)
	assert.Equal(t, domain.Field{Label: "N° facture", Value: "FC-2026-001"}, invoice.GlobalInfo[0])
	assert.Equal(t, domain.Field{Label: "Établie le", Value: "03 février 2026"}, invoice.GlobalInfo[1])
	assert.Equal(t, domain.Field{Label: "Payée le", Value: "04 février 2026"}, invoice.GlobalInfo[2])
}

func TestBuildSubscriptionInvoicePeriods(t *testing.T) {
	svc, db, node := newTestService(t)
	account := createAccount(t, db, node, true)

	monthly := createPayment(t, db, node, account.ID, paymentdomain.TypeSubscription, true)
	invoice, err := svc.Build(context.Background(), monthly)
	require.NoError(t, err)
	assert.Contains(t, invoice.Purchases[0].Description, "1 mois")

	yearly := createPayment(t, db, node, account.ID, paymentdomain.TypeSubscription, true)
	yearly.Frequency = paymentdomain.FrequencyYear
	require.NoError(t, db.Save(&yearly).Error)

	invoice, err = svc.Build(context.Background(), yearly)
	require.NoError(t, err)
	assert.Contains(t, invoice.Purchases[0].Description, "1 an")
}

func TestBuildPendingPayment(t *testing.T) {
	svc, db, node := newTestService(t)
	account := createAccount(t, db, node, true)
	payment := createPayment(t, db, node, account.ID, paymentdomain.TypeSubscription, false)

	invoice, err := svc.Build(context.Background(), payment)
	require.NoError(t, err)
	assert.Equal(t, domain.Field{Label: "Payée le", Value: "à payer"}, invoice.GlobalInfo[2])
}

func TestBuildCreditInvoice(t *testing.T) {
	svc, db, node := newTestService(t)
	account := createAccount(t, db, node, true)
	original := createPayment(t, db, node, account.ID, paymentdomain.TypeSubscription, true)

	originalID := original.ID
	credit := createPayment(t, db, node, account.ID, paymentdomain.TypeCredit, true)
	credit.CreditedPaymentID = &originalID
	require.NoError(t, db.Save(&credit).Error)

	invoice, err := svc.Build(context.Background(), credit)
	require.NoError(t, err)
	assert.Contains(t, invoice.Purchases[0].Description, "Remboursement de la facture")
	assert.Contains(t, invoice.Purchases[0].Description, original.InvoiceNumber)
	assert.Equal(t, "Créditée le", invoice.GlobalInfo[2].Label)
}

func TestBuildCreditInvoiceMissingCreditedPayment(t *testing.T) {
	svc, db, node := newTestService(t)
	account := createAccount(t, db, node, true)

	dangling := node.Generate()
	credit := createPayment(t, db, node, account.ID, paymentdomain.TypeCredit, true)
	credit.CreditedPaymentID = &dangling
	require.NoError(t, db.Save(&credit).Error)

	_, err := svc.Build(context.Background(), credit)
	assert.ErrorIs(t, err, domain.ErrCreditedPaymentMissing)

	credit.CreditedPaymentID = nil
	_, err = svc.Build(context.Background(), credit)
	assert.ErrorIs(t, err, domain.ErrCreditedPaymentMissing)
}

func TestBuildMissingAccount(t *testing.T) {
	svc, db, node := newTestService(t)
	payment := createPayment(t, db, node, node.Generate(), paymentdomain.TypeCommonPot, true)

	_, err := svc.Build(context.Background(), payment)
	assert.ErrorIs(t, err, domain.ErrAccountMissing)
}

func TestBuildCustomerBlock(t *testing.T) {
	svc, db, node := newTestService(t)

	withAddress := createAccount(t, db, node, true)
	payment := createPayment(t, db, node, withAddress.ID, paymentdomain.TypeCommonPot, true)

	invoice, err := svc.Build(context.Background(), payment)
	require.NoError(t, err)
	require.Len(t, invoice.Customer, 4)
	assert.Equal(t, "Marie Dupont", invoice.Customer[0])
	assert.Equal(t, "57 rue du Vercors", invoice.Customer[1])
	assert.Equal(t, "38000 Grenoble", invoice.Customer[2])
	assert.Equal(t, "France", invoice.Customer[3])
}

func TestBuildCustomerBlockWithoutAddress(t *testing.T) {
	svc, db, node := newTestService(t)

	account := accountdomain.Init(node.Generate(), "paul@example.com")
	account.FirstName = "Paul"
	account.LastName = "Martin"
	require.NoError(t, db.Create(&account).Error)
	payment := createPayment(t, db, node, account.ID, paymentdomain.TypeCommonPot, true)

	invoice, err := svc.Build(context.Background(), payment)
	require.NoError(t, err)
	require.Len(t, invoice.Customer, 1)
	assert.Equal(t, "Paul Martin", invoice.Customer[0])
}

func TestBuildIncludesVATNumber(t *testing.T) {
	svc, db, node := newTestService(t)

	account := createAccount(t, db, node, true)
	account.CompanyVATNumber = "FR12345678901"
	require.NoError(t, db.Save(&account).Error)
	payment := createPayment(t, db, node, account.ID, paymentdomain.TypeCommonPot, true)

	invoice, err := svc.Build(context.Background(), payment)
	require.NoError(t, err)

	last := invoice.GlobalInfo[len(invoice.GlobalInfo)-1]
	assert.Equal(t, domain.Field{Label: "N° TVA client", Value: "FR12345678901"}, last)
}

func TestCreatePDFWritesFile(t *testing.T) {
	svc, db, node := newTestService(t)
	account := createAccount(t, db, node, true)
	payment := createPayment(t, db, node, account.ID, paymentdomain.TypeSubscription, true)

	// Nested path, the parent directories do not exist yet.
	path := filepath.Join(t.TempDir(), "2026", "02", "facture.pdf")
	require.NoError(t, svc.CreatePDF(context.Background(), payment, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(raw), 4)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestCreatePDFForPaymentUnknownPayment(t *testing.T) {
	svc, _, node := newTestService(t)

	path := filepath.Join(t.TempDir(), "facture.pdf")
	err := svc.CreatePDFForPayment(context.Background(), node.Generate(), path)
	assert.ErrorIs(t, err, paymentdomain.ErrNotFound)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no partial file should be written")
}
