// internal/domain/checkout/card_test.go
package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCardBrand(t *testing.T) {
	tests := []struct {
		number string
		brand  string
	}{
		{"4111 1111 1111 1111", "visa"},
		{"4000000000000000", "visa"},
		{"5100 0000 0000 0000", "mastercard"},
		{"5500000000000000", "mastercard"},
		{"2221000000000000", "mastercard"},
		{"2720990000000000", "mastercard"},
		{"3400 000000 00000", "amex"},
		{"371449635398431", "amex"},
		{"6011000000000000", "discover"},
		{"9999000000000000", "unknown"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.brand, DetectCardBrand(tt.number), "number %q", tt.number)
	}
}

func TestDetectCardBrand_5600IsNotMastercard(t *testing.T) {
	// 56-59 fall outside the 51-55 range.
	assert.Equal(t, CardBrandUnknown, DetectCardBrand("5600000000000000"))
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "**** **** **** 1111", maskCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "**** **** **** 8431", maskCardNumber("371449635398431"))
	assert.Equal(t, "**** **** **** 123", maskCardNumber("123"))
	assert.Equal(t, "**** **** **** ", maskCardNumber(""))
}
