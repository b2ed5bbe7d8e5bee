package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	assert.Equal(t, "03 février 2026", Date(time.Date(2026, time.February, 3, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "17 août 2025", Date(time.Date(2025, time.August, 17, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31 décembre 2024", Date(time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC)))
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "10 €", Amount(1000))
	assert.Equal(t, "10.5 €", Amount(1050))
	assert.Equal(t, "3.99 €", Amount(399))
	assert.Equal(t, "120 €", Amount(12000))
	assert.Equal(t, "0 €", Amount(0))
}
