// internal/infrastructure/settings/settings.go
package settings

// StockSettings controls stock display thresholds
type StockSettings struct {
	LowStockThreshold       int `json:"low_stock_threshold"`
	MaxStockForVisualizaton int `json:"max_stock_for_visualization"`
	OutOfStockThreshold     int `json:"out_of_stock_threshold"`
}

// TaxSettings controls tax calculation and display
type TaxSettings struct {
	DefaultTaxRate float64 `json:"default_tax_rate"`
	TaxName        string  `json:"tax_name"`
	TaxDisplayName string  `json:"tax_display_name"`
}

// PricingSettings controls currency formatting and premium classification
type PricingSettings struct {
	Currency         string  `json:"currency"`
	CurrencySymbol   string  `json:"currency_symbol"`
	DecimalPlaces    int     `json:"decimal_places"`
	PremiumThreshold float64 `json:"premium_threshold"`
}

// StockColors maps stock levels to display color tokens
type StockColors struct {
	High       string `json:"high"`
	Medium     string `json:"medium"`
	Low        string `json:"low"`
	OutOfStock string `json:"out_of_stock"`
}

// StockGradients maps stock levels to display gradients
type StockGradients struct {
	High   string `json:"high"`
	Medium string `json:"medium"`
	Low    string `json:"low"`
}

// AnimationDurations holds UI animation timings in milliseconds
type AnimationDurations struct {
	Fast   int `json:"fast"`
	Medium int `json:"medium"`
	Slow   int `json:"slow"`
}

// UISettings controls storefront presentation metadata
type UISettings struct {
	StockColors        StockColors        `json:"stock_colors"`
	StockGradients     StockGradients     `json:"stock_gradients"`
	AnimationDurations AnimationDurations `json:"animation_durations"`
}

// BusinessSettings holds company metadata shown on invoices and marketing pages
type BusinessSettings struct {
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyPhone   string `json:"company_phone"`
	CompanyEmail   string `json:"company_email"`
	CompanyWebsite string `json:"company_website"`
}

// StoreTypeSettings holds per-store-type overrides
type StoreTypeSettings struct {
	Stock            StockSettings `json:"stock"`
	PremiumThreshold float64       `json:"premium_threshold"`
}

// SeasonSettings holds seasonal overrides
type SeasonSettings struct {
	PremiumThreshold float64     `json:"premium_threshold"`
	StockColors      StockColors `json:"stock_colors"`
}
