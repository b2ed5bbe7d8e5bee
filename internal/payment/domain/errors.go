package domain

import "errors"

var ErrNotFound = errors.New("payment not found")
