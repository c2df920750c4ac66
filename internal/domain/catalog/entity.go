// internal/domain/catalog/entity.go
package catalog

// Category is the fixed set of product categories
type Category string

const (
	CategoryFins        Category = "fins"
	CategoryMasks       Category = "masks"
	CategorySnorkels    Category = "snorkels"
	CategoryWetsuits    Category = "wetsuits"
	CategoryAccessories Category = "accessories"
)

// Categories lists every known category in display order
func Categories() []Category {
	return []Category{
		CategoryFins,
		CategoryMasks,
		CategorySnorkels,
		CategoryWetsuits,
		CategoryAccessories,
	}
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryFins, CategoryMasks, CategorySnorkels, CategoryWetsuits, CategoryAccessories:
		return true
	}
	return false
}

// Sale describes an active promotion on a product
type Sale struct {
	DiscountPercentage float64 `json:"discount_percentage"`
}

// Variant represents a product variant (color option). The stock flag and
// quantity are independent fields; the flag drives display while the
// quantity drives the stock meter.
type Variant struct {
	ID            int    `json:"id"`
	Color         string `json:"color"`
	ColorName     string `json:"color_name"`
	Image         string `json:"image"`
	InStock       bool   `json:"in_stock"`
	StockQuantity int    `json:"stock_quantity"`
}

// Product represents a catalog product
type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Sale          *Sale     `json:"in_sale,omitempty"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	Category      Category  `json:"category"`
	InStock       bool      `json:"in_stock"`
	StockQuantity int       `json:"stock_quantity"`
	Rating        float64   `json:"rating,omitempty"`
	Reviews       int       `json:"reviews,omitempty"`
	Variants      []Variant `json:"variants,omitempty"`
}

// VariantAt returns the variant at index, or nil when index is nil or out
// of range
func (p *Product) VariantAt(index *int) *Variant {
	if index == nil || *index < 0 || *index >= len(p.Variants) {
		return nil
	}
	return &p.Variants[*index]
}

// AvailableQuantity returns the tracked stock for the product or, when a
// variant index is given, for that variant
func (p *Product) AvailableQuantity(variantIndex *int) int {
	if v := p.VariantAt(variantIndex); v != nil {
		return v.StockQuantity
	}
	return p.StockQuantity
}
