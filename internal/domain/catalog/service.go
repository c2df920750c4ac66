// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// ErrProductNotFound is returned when no product matches the given id
var ErrProductNotFound = fmt.Errorf("product not found")

// SortOption orders catalog listings
type SortOption string

const (
	SortByName      SortOption = "name"
	SortByPriceLow  SortOption = "price-low"
	SortByPriceHigh SortOption = "price-high"
)

// Filters narrows and orders a catalog listing
type Filters struct {
	Category        string // category name or "all"
	SortBy          SortOption
	ShowInStockOnly bool
}

// Service serves the fixed product catalog
type Service struct {
	products []Product
	byID     map[int]*Product
}

// NewService builds the catalog service from the seed data
func NewService() (*Service, error) {
	return newService(seedProducts())
}

func newService(products []Product) (*Service, error) {
	byID := make(map[int]*Product, len(products))
	for i := range products {
		p := &products[i]
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d: negative price %.2f", p.ID, p.Price)
		}
		if p.StockQuantity < 0 {
			return nil, fmt.Errorf("product %d: negative stock %d", p.ID, p.StockQuantity)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("product %d: unknown category %q", p.ID, p.Category)
		}
		if p.Sale != nil && (p.Sale.DiscountPercentage <= 0 || p.Sale.DiscountPercentage > 100) {
			return nil, fmt.Errorf("product %d: discount percentage %.2f out of range (0, 100]", p.ID, p.Sale.DiscountPercentage)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		byID[p.ID] = p
	}

	return &Service{
		products: products,
		byID:     byID,
	}, nil
}

// List returns the products matching the filters, ordered per SortBy
func (s *Service) List(filters Filters) []Product {
	result := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if filters.Category != "" && filters.Category != "all" && string(p.Category) != filters.Category {
			continue
		}
		if filters.ShowInStockOnly && !p.InStock {
			continue
		}
		result = append(result, p)
	}

	switch filters.SortBy {
	case SortByName:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Name < result[j].Name
		})
	case SortByPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortByPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	}

	return result
}

// Get returns the product with the given id
func (s *Service) Get(id int) (*Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}
	return p, nil
}

// Search matches query against product names and descriptions
func (s *Service) Search(query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var result []Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			result = append(result, p)
		}
	}
	return result
}

// Count returns the catalog size
func (s *Service) Count() int {
	return len(s.products)
}
