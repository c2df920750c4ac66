// internal/appconfig/manager.go
package appconfig

import (
	"context"
	"fmt"
	"sync"

	"github.com/kraken-dive/storefront-backend/internal/infrastructure/settings"
	"github.com/sirupsen/logrus"
)

// Options selects which settings variants to load
type Options struct {
	Region    string
	Season    string
	StoreType string
}

// Snapshot is an immutable view of the resolved application configuration.
// Pricing and checkout read from a snapshot so a refresh mid-request can
// never produce a partially updated view.
type Snapshot struct {
	Stock    settings.StockSettings
	Tax      settings.TaxSettings
	Pricing  settings.PricingSettings
	UI       settings.UISettings
	Business settings.BusinessSettings
}

// Manager owns the resolved application configuration. It is constructed
// once at startup and passed by reference to whichever component needs it;
// refresh is explicit.
type Manager struct {
	source *settings.Source
	logger *logrus.Logger

	mu       sync.RWMutex
	snapshot Snapshot
	loaded   bool
}

// New creates a manager bound to a settings source
func New(source *settings.Source, logger *logrus.Logger) *Manager {
	return &Manager{
		source: source,
		logger: logger,
	}
}

// Load resolves all configuration sections. On any lookup failure it
// installs the built-in defaults and logs a warning; configuration never
// blocks the storefront.
func (m *Manager) Load(ctx context.Context, opts Options) error {
	snapshot, err := m.resolve(ctx, opts)
	if err != nil {
		m.logger.WithError(err).Warn("settings lookup failed, using default configuration")
		snapshot = Defaults()
	}

	m.mu.Lock()
	m.snapshot = snapshot
	m.loaded = true
	m.mu.Unlock()

	m.logger.WithFields(logrus.Fields{
		"region":     opts.Region,
		"season":     opts.Season,
		"store_type": opts.StoreType,
		"currency":   snapshot.Pricing.Currency,
		"tax_rate":   snapshot.Tax.DefaultTaxRate,
	}).Info("application configuration loaded")

	return err
}

// Refresh invalidates the settings cache and reloads all sections
func (m *Manager) Refresh(ctx context.Context, opts Options) error {
	m.source.Invalidate(ctx)
	return m.Load(ctx, opts)
}

// Current returns the active configuration snapshot. Before the first Load
// it returns the built-in defaults.
func (m *Manager) Current() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.loaded {
		return Defaults()
	}
	return m.snapshot
}

func (m *Manager) resolve(ctx context.Context, opts Options) (Snapshot, error) {
	stock, err := m.source.Stock(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("stock settings: %w", err)
	}

	tax, err := m.source.Tax(ctx, opts.Region)
	if err != nil {
		return Snapshot{}, fmt.Errorf("tax settings: %w", err)
	}

	pricing, err := m.source.Pricing(ctx, opts.Region)
	if err != nil {
		return Snapshot{}, fmt.Errorf("pricing settings: %w", err)
	}

	ui, err := m.source.UI(ctx, opts.Season)
	if err != nil {
		return Snapshot{}, fmt.Errorf("ui settings: %w", err)
	}

	business, err := m.source.Business(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("business settings: %w", err)
	}

	// Store-type overrides replace the stock thresholds and premium bar.
	if opts.StoreType != "" {
		st, err := m.source.StoreType(ctx, opts.StoreType)
		if err != nil {
			return Snapshot{}, fmt.Errorf("store type settings: %w", err)
		}
		stock = st.Stock
		if st.PremiumThreshold > 0 {
			pricing.PremiumThreshold = st.PremiumThreshold
		}
	}

	// Seasonal overrides win over store-type ones for the premium bar.
	if seasonal, ok := m.source.Season(opts.Season); ok && seasonal.PremiumThreshold > 0 {
		pricing.PremiumThreshold = seasonal.PremiumThreshold
	}

	return Snapshot{
		Stock:    stock,
		Tax:      tax,
		Pricing:  pricing,
		UI:       ui,
		Business: business,
	}, nil
}

// Defaults returns the built-in fallback configuration
func Defaults() Snapshot {
	return Snapshot{
		Stock: settings.StockSettings{
			LowStockThreshold:       5,
			MaxStockForVisualizaton: 30,
			OutOfStockThreshold:     0,
		},
		Tax: settings.TaxSettings{
			DefaultTaxRate: 0.21,
			TaxName:        "IVA",
			TaxDisplayName: "IVA (21%)",
		},
		Pricing: settings.PricingSettings{
			Currency:         "EUR",
			CurrencySymbol:   "€",
			DecimalPlaces:    2,
			PremiumThreshold: 150,
		},
		UI: settings.UISettings{
			StockColors: settings.StockColors{
				High:       "text-green-600",
				Medium:     "text-yellow-600",
				Low:        "text-orange-600",
				OutOfStock: "text-red-600",
			},
			StockGradients: settings.StockGradients{
				High:   "linear-gradient(90deg, #10b981 0%, #34d399 100%)",
				Medium: "linear-gradient(90deg, #f59e0b 0%, #fbbf24 100%)",
				Low:    "linear-gradient(90deg, #ea580c 0%, #fb923c 100%)",
			},
			AnimationDurations: settings.AnimationDurations{
				Fast:   200,
				Medium: 300,
				Slow:   500,
			},
		},
		Business: settings.BusinessSettings{
			CompanyName:    "KRAKEN Freediving Store",
			CompanyAddress: "Calle del Mar Profundo, 42\n28001 Madrid, España",
			CompanyPhone:   "+34 91 234 56 78",
			CompanyEmail:   "info@krakenfreediving.com",
			CompanyWebsite: "www.krakenfreediving.com",
		},
	}
}
