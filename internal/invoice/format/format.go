// Package format renders dates and amounts the way they appear on invoices.
package format

import (
	"fmt"
	"strconv"
	"time"
)

var months = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// Date formats a date in French long form, e.g. "03 février 2026".
func Date(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), months[t.Month()-1], t.Year())
}

// Amount formats an amount of cents as euros, trimming trailing zeros,
// e.g. 1050 -> "10.5 €".
func Amount(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', -1, 64) + " €"
}
