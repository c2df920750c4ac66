// internal/domain/quickview/store.go

// Package quickview holds the transient "currently previewed" product for a
// session: at most one product plus an open flag.
package quickview

import (
	"sync"

	"github.com/kraken-dive/storefront-backend/internal/domain/catalog"
)

// Store holds zero-or-one previewed product
type Store struct {
	mu      sync.Mutex
	product *catalog.Product
	open    bool
}

// NewStore creates a closed, empty quick view
func NewStore() *Store {
	return &Store{}
}

// Open sets the previewed product and the open flag atomically. Opening a
// second product while one is shown simply replaces it; there is no history.
func (s *Store) Open(product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := product
	s.product = &p
	s.open = true
}

// Close clears the product and the open flag atomically
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.product = nil
	s.open = false
}

// Current returns the previewed product (nil when closed) and the open flag
func (s *Store) Current() (*catalog.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.product == nil {
		return nil, s.open
	}
	p := *s.product
	return &p, s.open
}
