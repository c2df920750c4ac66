// internal/infrastructure/settings/data.go
package settings

// Built-in settings tables. These stand in for the remote settings database;
// the Source serves lookups from them through the cache layer.

var stockData = StockSettings{
	LowStockThreshold:       5,
	MaxStockForVisualizaton: 30,
	OutOfStockThreshold:     0,
}

var taxData = TaxSettings{
	DefaultTaxRate: 0.21,
	TaxName:        "IVA",
	TaxDisplayName: "IVA (21%)",
}

var pricingData = PricingSettings{
	Currency:         "EUR",
	CurrencySymbol:   "€",
	DecimalPlaces:    2,
	PremiumThreshold: 150,
}

var uiData = UISettings{
	StockColors: StockColors{
		High:       "text-green-600",
		Medium:     "text-yellow-600",
		Low:        "text-orange-600",
		OutOfStock: "text-red-600",
	},
	StockGradients: StockGradients{
		High:   "linear-gradient(90deg, #10b981 0%, #34d399 100%)",
		Medium: "linear-gradient(90deg, #f59e0b 0%, #fbbf24 100%)",
		Low:    "linear-gradient(90deg, #ea580c 0%, #fb923c 100%)",
	},
	AnimationDurations: AnimationDurations{
		Fast:   200,
		Medium: 300,
		Slow:   500,
	},
}

var businessData = BusinessSettings{
	CompanyName:    "KRAKEN Freediving Store",
	CompanyAddress: "Calle del Mar Profundo, 42\n28001 Madrid, España",
	CompanyPhone:   "+34 91 234 56 78",
	CompanyEmail:   "info@krakenfreediving.com",
	CompanyWebsite: "www.krakenfreediving.com",
}

// Regional tax and currency overrides keyed by region code.
var regionalTaxData = map[string]TaxSettings{
	"ES": {DefaultTaxRate: 0.21, TaxName: "IVA", TaxDisplayName: "IVA (21%)"},
	"FR": {DefaultTaxRate: 0.20, TaxName: "TVA", TaxDisplayName: "TVA (20%)"},
	"US": {DefaultTaxRate: 0.08, TaxName: "Sales Tax", TaxDisplayName: "Sales Tax (8%)"},
}

var regionalPricingData = map[string]PricingSettings{
	"ES": {Currency: "EUR", CurrencySymbol: "€", DecimalPlaces: 2, PremiumThreshold: pricingData.PremiumThreshold},
	"FR": {Currency: "EUR", CurrencySymbol: "€", DecimalPlaces: 2, PremiumThreshold: pricingData.PremiumThreshold},
	"US": {Currency: "USD", CurrencySymbol: "$", DecimalPlaces: 2, PremiumThreshold: pricingData.PremiumThreshold},
}

// Store-type overrides for stock thresholds and premium classification.
var storeTypeData = map[string]StoreTypeSettings{
	"retail": {
		Stock:            StockSettings{LowStockThreshold: 5, MaxStockForVisualizaton: 30, OutOfStockThreshold: 0},
		PremiumThreshold: 150,
	},
	"wholesale": {
		Stock:            StockSettings{LowStockThreshold: 20, MaxStockForVisualizaton: 100, OutOfStockThreshold: 0},
		PremiumThreshold: 500,
	},
	"outlet": {
		Stock:            StockSettings{LowStockThreshold: 2, MaxStockForVisualizaton: 20, OutOfStockThreshold: 0},
		PremiumThreshold: 75,
	},
}

// Seasonal overrides. The premium threshold drops in high season.
var seasonalData = map[string]SeasonSettings{
	"summer": {
		PremiumThreshold: 120,
		StockColors: StockColors{
			High:       "text-blue-600",
			Medium:     "text-cyan-600",
			Low:        "text-orange-600",
			OutOfStock: "text-red-600",
		},
	},
	"winter": {
		PremiumThreshold: 180,
		StockColors: StockColors{
			High:       "text-green-600",
			Medium:     "text-yellow-600",
			Low:        "text-orange-600",
			OutOfStock: "text-red-600",
		},
	},
}
