// internal/interfaces/http/handlers/views.go
package handlers

import (
	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/domain/cart"
	"github.com/kraken-dive/storefront-backend/internal/domain/catalog"
	"github.com/kraken-dive/storefront-backend/internal/domain/pricing"
)

// PricingView is the per-product pricing block returned with catalog
// responses
type PricingView struct {
	OriginalPrice          float64 `json:"original_price"`
	FinalPrice             float64 `json:"final_price"`
	Savings                float64 `json:"savings"`
	OnSale                 bool    `json:"on_sale"`
	Premium                bool    `json:"premium"`
	DiscountPercentage     float64 `json:"discount_percentage,omitempty"`
	FormattedFinalPrice    string  `json:"formatted_final_price"`
	FormattedOriginalPrice string  `json:"formatted_original_price"`
	FormattedSavings       string  `json:"formatted_savings,omitempty"`
}

// StockView is the stock presentation block for the storefront meter
type StockView struct {
	Level      appconfig.StockLevel `json:"level"`
	Color      string               `json:"color"`
	Gradient   string               `json:"gradient"`
	BarPercent float64              `json:"bar_percent"`
}

// ProductView decorates a product with its derived pricing and stock
// presentation
type ProductView struct {
	catalog.Product
	Pricing PricingView `json:"pricing"`
	Stock   StockView   `json:"stock"`
}

// CartItemView decorates a cart line with its derived prices
type CartItemView struct {
	cart.Item
	UnitPrice          float64 `json:"unit_price"`
	LineTotal          float64 `json:"line_total"`
	FormattedLineTotal string  `json:"formatted_line_total"`
}

// CartView is the cart response payload
type CartView struct {
	Items          []CartItemView `json:"items"`
	Total          float64        `json:"total"`
	ItemCount      int            `json:"item_count"`
	FormattedTotal string         `json:"formatted_total"`
	IsOpen         bool           `json:"is_open"`
}

func newPricingView(p *catalog.Product, cfg appconfig.Snapshot) PricingView {
	view := PricingView{
		OriginalPrice:          pricing.OriginalPrice(p),
		FinalPrice:             pricing.FinalPrice(p, cfg),
		Savings:                pricing.Savings(p, cfg),
		OnSale:                 pricing.IsOnSale(p),
		Premium:                pricing.IsPremium(p, cfg),
		FormattedOriginalPrice: pricing.FormatPrice(pricing.OriginalPrice(p), cfg),
	}
	view.FormattedFinalPrice = pricing.FormatPrice(view.FinalPrice, cfg)
	if view.OnSale {
		view.DiscountPercentage = p.Sale.DiscountPercentage
		view.FormattedSavings = pricing.FormatPrice(view.Savings, cfg)
	}
	return view
}

func newStockView(quantity int, cfg appconfig.Snapshot) StockView {
	return StockView{
		Level:      cfg.StockLevelFor(quantity),
		Color:      cfg.StockColor(quantity),
		Gradient:   cfg.StockGradient(quantity),
		BarPercent: cfg.StockBarPercent(quantity),
	}
}

func newProductView(p *catalog.Product, cfg appconfig.Snapshot) ProductView {
	return ProductView{
		Product: *p,
		Pricing: newPricingView(p, cfg),
		Stock:   newStockView(p.StockQuantity, cfg),
	}
}

func newProductViews(products []catalog.Product, cfg appconfig.Snapshot) []ProductView {
	views := make([]ProductView, len(products))
	for i := range products {
		views[i] = newProductView(&products[i], cfg)
	}
	return views
}

func newCartView(items []cart.Item, totals cart.Totals, isOpen bool, cfg appconfig.Snapshot) CartView {
	view := CartView{
		Items:          make([]CartItemView, len(items)),
		Total:          totals.Total,
		ItemCount:      totals.ItemCount,
		FormattedTotal: pricing.FormatPrice(totals.Total, cfg),
		IsOpen:         isOpen,
	}
	for i := range items {
		unit := pricing.FinalPrice(&items[i].Product, cfg)
		line := unit * float64(items[i].Quantity)
		view.Items[i] = CartItemView{
			Item:               items[i],
			UnitPrice:          unit,
			LineTotal:          line,
			FormattedLineTotal: pricing.FormatPrice(line, cfg),
		}
	}
	return view
}
