package domain

import (
	"errors"
	"strings"
)

var ErrInsufficientFunds = errors.New("common pot balance is insufficient")

// ValidationErrors carries the collected validation messages of a pot usage.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, " ")
}
