package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodesMatchesTable(t *testing.T) {
	codes := Codes()
	assert.Len(t, codes, 27)
	assert.Equal(t, "AT", codes[0])
	assert.Equal(t, "SK", codes[len(codes)-1])

	for _, code := range codes {
		assert.True(t, IsSupported(code), "code %s should be supported", code)
	}
}

func TestCodeToLabelCoversEveryCode(t *testing.T) {
	for _, code := range Codes() {
		label, ok := CodeToLabel(code)
		assert.True(t, ok, "label lookup failed for %s", code)
		assert.NotEmpty(t, label)
	}
}

func TestCodeToLabelUnknownCode(t *testing.T) {
	label, ok := CodeToLabel("US")
	assert.False(t, ok)
	assert.Empty(t, label)
	assert.False(t, IsSupported("US"))
	assert.False(t, IsSupported(""))
}

func TestCodeToLabelValues(t *testing.T) {
	label, ok := CodeToLabel("FR")
	assert.True(t, ok)
	assert.Equal(t, "France", label)

	label, ok = CodeToLabel("CZ")
	assert.True(t, ok)
	assert.Equal(t, "République tchèque", label)
}
