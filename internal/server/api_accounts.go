package server

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	accountdomain "github.com/flusio/soutenir/internal/account/domain"
	"github.com/gin-gonic/gin"
)

// APIShowAccount returns the account id matching an email, creating the
// account when it does not exist yet. The endpoint is reserved to trusted
// callers holding the configured private key and is idempotent.
func (s *Server) APIShowAccount(c *gin.Context) {
	authToken := c.GetHeader("Authorization")
	if s.cfg.APIPrivateKey == "" ||
		subtle.ConstantTimeCompare([]byte(s.cfg.APIPrivateKey), []byte(authToken)) != 1 {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	email := c.Query("email")

	// expired_at is transitional, it allows migrating existing expirations.
	var expiredAt *time.Time
	if raw := c.Query("expired_at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
		expiredAt = &parsed
	}

	account, err := s.accountSvc.Provision(c.Request.Context(), email, expiredAt)
	if err != nil {
		var validationErrs accountdomain.ValidationErrors
		if errors.As(err, &validationErrs) {
			c.String(http.StatusBadRequest, validationErrs.Error())
			return
		}
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": account.ID})
}
