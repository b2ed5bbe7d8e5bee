package server

import (
	"errors"
	"net/http"

	accountdomain "github.com/flusio/soutenir/internal/account/domain"
	invoicedomain "github.com/flusio/soutenir/internal/invoice/domain"
	paymentdomain "github.com/flusio/soutenir/internal/payment/domain"
	potdomain "github.com/flusio/soutenir/internal/pot/domain"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	var accountValidation accountdomain.ValidationErrors
	var potValidation potdomain.ValidationErrors

	switch {
	case errors.As(err, &accountValidation):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: accountValidation.Error(),
		}
	case errors.As(err, &potValidation):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: potValidation.Error(),
		}
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_request",
			Message: "invalid request",
		}
	case errors.Is(err, accountdomain.ErrInvalidAccessToken):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_access_token",
			Message: "invalid access token",
		}
	case errors.Is(err, potdomain.ErrInsufficientFunds):
		return http.StatusBadRequest, errorPayload{
			Type:    "insufficient_funds",
			Message: "la cagnotte commune ne contient pas assez d’argent",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, accountdomain.ErrNotFound),
		errors.Is(err, paymentdomain.ErrNotFound),
		errors.Is(err, invoicedomain.ErrAccountMissing),
		errors.Is(err, invoicedomain.ErrCreditedPaymentMissing),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}
