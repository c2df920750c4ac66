// internal/domain/pricing/pricing.go

// Package pricing derives display prices, discounts and taxes from a
// product and a configuration snapshot. Every function is pure; callers
// pass the snapshot they want prices computed against.
package pricing

import (
	"math"
	"strconv"

	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/domain/catalog"
)

// IsOnSale reports whether the product carries an active discount
func IsOnSale(p *catalog.Product) bool {
	return p.Sale != nil && p.Sale.DiscountPercentage > 0
}

// OriginalPrice returns the base price before any discount
func OriginalPrice(p *catalog.Product) float64 {
	return p.Price
}

// FinalPrice returns the price to charge: the base price, or the discounted
// price rounded half-up at the configured decimal places
func FinalPrice(p *catalog.Product, cfg appconfig.Snapshot) float64 {
	if !IsOnSale(p) {
		return p.Price
	}

	discount := p.Price * (p.Sale.DiscountPercentage / 100)
	return roundTo(p.Price-discount, cfg.Pricing.DecimalPlaces)
}

// Savings returns the amount saved against the base price; zero when the
// product is not on sale
func Savings(p *catalog.Product, cfg appconfig.Snapshot) float64 {
	if !IsOnSale(p) {
		return 0
	}
	return roundTo(p.Price-FinalPrice(p, cfg), cfg.Pricing.DecimalPlaces)
}

// IsPremium reports whether the base price reaches the configured premium
// threshold
func IsPremium(p *catalog.Product, cfg appconfig.Snapshot) bool {
	return p.Price >= cfg.Pricing.PremiumThreshold
}

// FormatPrice renders an amount fixed to the configured decimal places with
// the currency symbol appended
func FormatPrice(amount float64, cfg appconfig.Snapshot) string {
	return strconv.FormatFloat(amount, 'f', cfg.Pricing.DecimalPlaces, 64) + cfg.Pricing.CurrencySymbol
}

// Tax returns the tax due on an amount at the configured rate
func Tax(amount float64, cfg appconfig.Snapshot) float64 {
	return amount * cfg.Tax.DefaultTaxRate
}

// TotalWithTax returns an amount plus its tax
func TotalWithTax(amount float64, cfg appconfig.Snapshot) float64 {
	return amount + Tax(amount, cfg)
}

// TaxRate returns the configured tax rate
func TaxRate(cfg appconfig.Snapshot) float64 {
	return cfg.Tax.DefaultTaxRate
}

// TaxDisplayName returns the configured tax label, e.g. "IVA (21%)"
func TaxDisplayName(cfg appconfig.Snapshot) string {
	return cfg.Tax.TaxDisplayName
}

// RoundAmount rounds an amount half-up at the configured decimal places
func RoundAmount(amount float64, cfg appconfig.Snapshot) float64 {
	return roundTo(amount, cfg.Pricing.DecimalPlaces)
}

// roundTo rounds half-up at the given number of decimal places
func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
