// internal/domain/cart/store.go

// Package cart holds the line items for a single storefront session.
// Mutations go through the store's operations only; derived totals are
// recomputed from scratch after every change so they can never drift.
package cart

import (
	"fmt"
	"sync"

	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/domain/catalog"
	"github.com/kraken-dive/storefront-backend/internal/domain/pricing"
)

// ErrInsufficientStock is returned when the overselling policy rejects a
// quantity above the tracked stock
var ErrInsufficientStock = fmt.Errorf("insufficient stock")

// Item is a cart line. The product snapshot is stored at add time; the cart
// identity key is (product id, selected variant index).
type Item struct {
	Product         catalog.Product `json:"product"`
	Quantity        int             `json:"quantity"`
	SelectedVariant *int            `json:"selected_variant,omitempty"`
}

// Totals are the derived cart aggregates
type Totals struct {
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// Policy controls cart stock enforcement
type Policy struct {
	// AllowOverselling permits quantities above the tracked stock. The
	// storefront historically allowed it; stock is a display concern.
	AllowOverselling bool
}

// Store is the per-session cart state container
type Store struct {
	config *appconfig.Manager
	policy Policy

	mu     sync.Mutex
	items  []Item
	totals Totals
	open   bool
}

// NewStore creates an empty cart
func NewStore(config *appconfig.Manager, policy Policy) *Store {
	return &Store{
		config: config,
		policy: policy,
	}
}

// AddItem adds one unit of (product, variant) to the cart. If the key is
// already present its quantity is incremented instead of a second line being
// appended.
func (s *Store) AddItem(product catalog.Product, variantIndex *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].matches(product.ID, variantIndex) {
			if err := s.checkStock(&product, variantIndex, s.items[i].Quantity+1); err != nil {
				return err
			}
			s.items[i].Quantity++
			s.recompute()
			return nil
		}
	}

	if err := s.checkStock(&product, variantIndex, 1); err != nil {
		return err
	}

	s.items = append(s.items, Item{
		Product:         product,
		Quantity:        1,
		SelectedVariant: copyIndex(variantIndex),
	})
	s.recompute()
	return nil
}

// RemoveItem deletes the line matching (productID, variantIndex). Removing
// an absent key is a no-op.
func (s *Store) RemoveItem(productID int, variantIndex *int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].matches(productID, variantIndex) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.recompute()
			return
		}
	}
}

// SetQuantity sets the quantity of the line matching (productID,
// variantIndex). A quantity of zero or less removes the line. Setting an
// absent key is a no-op.
func (s *Store) SetQuantity(productID int, quantity int, variantIndex *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if !s.items[i].matches(productID, variantIndex) {
			continue
		}

		if quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.recompute()
			return nil
		}

		if err := s.checkStock(&s.items[i].Product, variantIndex, quantity); err != nil {
			return err
		}
		s.items[i].Quantity = quantity
		s.recompute()
		return nil
	}

	return nil
}

// Clear resets the cart to the empty state
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.recompute()
}

// ToggleOpen flips the cart panel visibility flag and returns the new value.
// Items are unaffected.
func (s *Store) ToggleOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open = !s.open
	return s.open
}

// IsOpen reports the cart panel visibility flag
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Items returns a copy of the cart lines in insertion order
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItems()
}

// Totals returns the derived aggregates
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

// Len returns the number of cart lines
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Snapshot returns the lines and totals as one consistent view, for
// checkout to capture
func (s *Store) Snapshot() ([]Item, Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItems(), s.totals
}

func (s *Store) copyItems() []Item {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	for i := range items {
		items[i].SelectedVariant = copyIndex(items[i].SelectedVariant)
	}
	return items
}

// recompute rebuilds the derived totals from the lines. Caller holds the
// lock. The total is sale-aware: each line contributes its final price.
func (s *Store) recompute() {
	cfg := s.config.Current()

	var totals Totals
	for i := range s.items {
		totals.Total += pricing.FinalPrice(&s.items[i].Product, cfg) * float64(s.items[i].Quantity)
		totals.ItemCount += s.items[i].Quantity
	}
	s.totals = totals
}

func (s *Store) checkStock(product *catalog.Product, variantIndex *int, wanted int) error {
	if s.policy.AllowOverselling {
		return nil
	}

	available := product.AvailableQuantity(variantIndex)
	if wanted > available {
		return fmt.Errorf("%w: product %d, available %d, wanted %d",
			ErrInsufficientStock, product.ID, available, wanted)
	}
	return nil
}

func (i *Item) matches(productID int, variantIndex *int) bool {
	if i.Product.ID != productID {
		return false
	}
	if i.SelectedVariant == nil || variantIndex == nil {
		return i.SelectedVariant == nil && variantIndex == nil
	}
	return *i.SelectedVariant == *variantIndex
}

func copyIndex(index *int) *int {
	if index == nil {
		return nil
	}
	v := *index
	return &v
}
