package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound           = errors.New("account not found")
	ErrInvalidAccessToken = errors.New("invalid access token")
	ErrInvalidID          = errors.New("invalid account id")
)

// ValidationErrors carries the collected validation messages of an account.
// The messages are user-facing and joined into a single line when rendered.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, " ")
}
