// internal/appconfig/stock.go
package appconfig

// StockLevel classifies a quantity against the configured thresholds
type StockLevel string

const (
	StockLevelOut    StockLevel = "out_of_stock"
	StockLevelLow    StockLevel = "low"
	StockLevelMedium StockLevel = "medium"
	StockLevelHigh   StockLevel = "high"
)

// IsOutOfStock reports whether quantity is at or below the out-of-stock bar
func (s Snapshot) IsOutOfStock(quantity int) bool {
	return quantity <= s.Stock.OutOfStockThreshold
}

// IsLowStock reports whether quantity sits in the low band
func (s Snapshot) IsLowStock(quantity int) bool {
	return quantity > s.Stock.OutOfStockThreshold && quantity <= s.Stock.LowStockThreshold
}

// IsMediumStock reports whether quantity sits in the medium band. The medium
// band spans one to two times the low-stock threshold.
func (s Snapshot) IsMediumStock(quantity int) bool {
	return quantity > s.Stock.LowStockThreshold && quantity <= s.Stock.LowStockThreshold*2
}

// IsHighStock reports whether quantity sits above the medium band
func (s Snapshot) IsHighStock(quantity int) bool {
	return quantity > s.Stock.LowStockThreshold*2
}

// StockLevelFor classifies a quantity
func (s Snapshot) StockLevelFor(quantity int) StockLevel {
	switch {
	case s.IsOutOfStock(quantity):
		return StockLevelOut
	case s.IsLowStock(quantity):
		return StockLevelLow
	case s.IsMediumStock(quantity):
		return StockLevelMedium
	default:
		return StockLevelHigh
	}
}

// StockColor returns the display color token for a quantity
func (s Snapshot) StockColor(quantity int) string {
	switch s.StockLevelFor(quantity) {
	case StockLevelOut:
		return s.UI.StockColors.OutOfStock
	case StockLevelLow:
		return s.UI.StockColors.Low
	case StockLevelMedium:
		return s.UI.StockColors.Medium
	default:
		return s.UI.StockColors.High
	}
}

// StockGradient returns the display gradient for a quantity. Out-of-stock
// shares the low gradient, matching the storefront meter.
func (s Snapshot) StockGradient(quantity int) string {
	switch s.StockLevelFor(quantity) {
	case StockLevelOut, StockLevelLow:
		return s.UI.StockGradients.Low
	case StockLevelMedium:
		return s.UI.StockGradients.Medium
	default:
		return s.UI.StockGradients.High
	}
}

// StockBarPercent returns the stock meter fill as a 0-100 percentage
func (s Snapshot) StockBarPercent(quantity int) float64 {
	if s.Stock.MaxStockForVisualizaton <= 0 {
		return 0
	}
	percent := float64(quantity) / float64(s.Stock.MaxStockForVisualizaton) * 100
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}
