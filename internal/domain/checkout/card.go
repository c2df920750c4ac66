// internal/domain/checkout/card.go
package checkout

import (
	"regexp"
	"strings"
)

// CardBrandUnknown is returned when no rule matches
const CardBrandUnknown = "unknown"

// cardBrandRules is the ordered prefix-rule table for card brand display.
// First match wins. Classification is decorative only and never gates
// submission.
var cardBrandRules = []struct {
	brand   string
	pattern *regexp.Regexp
}{
	{"visa", regexp.MustCompile(`^4`)},
	{"mastercard", regexp.MustCompile(`^5[1-5]`)},
	{"mastercard", regexp.MustCompile(`^2(22[1-9]|2[3-9]|[3-6]|7[0-1]|720)`)},
	{"amex", regexp.MustCompile(`^3[47]`)},
	{"discover", regexp.MustCompile(`^6`)},
}

// DetectCardBrand classifies a card number by its numeric prefix after
// stripping spaces: 4 is visa, 51-55 and 2221-2720 are mastercard, 34 and
// 37 are amex, 6 is discover.
func DetectCardBrand(cardNumber string) string {
	number := strings.ReplaceAll(cardNumber, " ", "")
	for _, rule := range cardBrandRules {
		if rule.pattern.MatchString(number) {
			return rule.brand
		}
	}
	return CardBrandUnknown
}

// maskCardNumber reduces a card number to its display form keeping only the
// last four digits
func maskCardNumber(cardNumber string) string {
	number := strings.ReplaceAll(cardNumber, " ", "")
	if len(number) <= 4 {
		return "**** **** **** " + number
	}
	return "**** **** **** " + number[len(number)-4:]
}
