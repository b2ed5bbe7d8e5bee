package domain

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"regexp"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Account is the billing identity of a paying customer.
type Account struct {
	ID               snowflake.ID `gorm:"primaryKey" json:"id"`
	Email            string       `gorm:"not null;uniqueIndex" json:"email"`
	AccessToken      string       `gorm:"not null" json:"-"`
	CompanyVATNumber string       `gorm:"column:company_vat_number" json:"company_vat_number,omitempty"`
	FirstName        string       `json:"first_name,omitempty"`
	LastName         string       `json:"last_name,omitempty"`
	Address1         string       `json:"address1,omitempty"`
	Postcode         string       `json:"postcode,omitempty"`
	City             string       `json:"city,omitempty"`
	CountryCode      string       `gorm:"not null;default:FR" json:"country"`
	ExpiredAt        time.Time    `gorm:"not null" json:"expired_at"`
	CreatedAt        time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"not null" json:"updated_at"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Init builds a fresh account for the given email with a generated access
// token and a one month expiration.
func Init(id snowflake.ID, email string) Account {
	now := time.Now().UTC()
	return Account{
		ID:          id,
		Email:       SanitizeEmail(email),
		AccessToken: generateAccessToken(),
		CountryCode: "FR",
		ExpiredAt:   now.AddDate(0, 1, 0),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SanitizeEmail normalizes an email address before lookup or storage.
func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate collects human-readable error messages for invalid fields.
func (a Account) Validate() ValidationErrors {
	var errs ValidationErrors
	if a.Email == "" {
		errs = append(errs, "L’adresse courriel est obligatoire.")
	} else if !emailPattern.MatchString(a.Email) {
		errs = append(errs, "L’adresse courriel est invalide.")
	}
	if a.CountryCode != "" && len(a.CountryCode) != 2 {
		errs = append(errs, "Le pays est invalide.")
	}
	return errs
}

// CheckAccess verifies the access token against the stored credential in
// constant time.
func (a Account) CheckAccess(token string) bool {
	if a.AccessToken == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.AccessToken), []byte(token)) == 1
}

// HasAddress reports whether a street address is on file.
func (a Account) HasAddress() bool {
	return a.Address1 != ""
}

func generateAccessToken() string {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		panic(err)
	}
	return hex.EncodeToString(raw)
}
