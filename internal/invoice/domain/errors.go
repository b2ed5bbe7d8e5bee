package domain

import "errors"

// An invoice without its billing party, or a credit invoice without the
// payment it reverses, is meaningless; construction aborts on both.
var (
	ErrAccountMissing         = errors.New("invoice account does not exist")
	ErrCreditedPaymentMissing = errors.New("credited payment does not exist")
)
