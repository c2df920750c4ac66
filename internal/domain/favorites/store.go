// internal/domain/favorites/store.go

// Package favorites holds the set of liked products for a session,
// independent of the cart.
package favorites

import (
	"sync"

	"github.com/kraken-dive/storefront-backend/internal/domain/catalog"
)

// Store is an insertion-ordered set of products keyed by product id
type Store struct {
	mu       sync.Mutex
	products []catalog.Product
}

// NewStore creates an empty favorites set
func NewStore() *Store {
	return &Store{}
}

// Add inserts a product. Adding a product already present is a no-op.
func (s *Store) Add(product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(product.ID) >= 0 {
		return
	}
	s.products = append(s.products, product)
}

// Remove deletes the product with the given id. Removing an absent id is a
// no-op.
func (s *Store) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		s.products = append(s.products[:i], s.products[i+1:]...)
	}
}

// Toggle adds the product if absent and removes it if present. It returns
// true when the product is a favorite after the call.
func (s *Store) Toggle(product catalog.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(product.ID); i >= 0 {
		s.products = append(s.products[:i], s.products[i+1:]...)
		return false
	}
	s.products = append(s.products, product)
	return true
}

// Contains reports whether the product id is a favorite
func (s *Store) Contains(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(productID) >= 0
}

// List returns the favorites in insertion order
func (s *Store) List() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the number of favorites
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

// indexOf returns the position of productID, or -1. Caller holds the lock.
func (s *Store) indexOf(productID int) int {
	for i := range s.products {
		if s.products[i].ID == productID {
			return i
		}
	}
	return -1
}
