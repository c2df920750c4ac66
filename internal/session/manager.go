// internal/session/manager.go

// Package session keeps per-browser storefront state in memory: each
// session owns its cart, favorites, quick view and at most one checkout
// flow. Nothing is persisted; state is lost on restart, and idle sessions
// are swept out.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/domain/cart"
	"github.com/kraken-dive/storefront-backend/internal/domain/checkout"
	"github.com/kraken-dive/storefront-backend/internal/domain/favorites"
	"github.com/kraken-dive/storefront-backend/internal/domain/quickview"
)

// Session bundles the per-browser stores
type Session struct {
	ID        string
	Cart      *cart.Store
	Favorites *favorites.Store
	QuickView *quickview.Store

	mu       sync.Mutex
	checkout *checkout.Flow
	lastSeen time.Time
}

// Checkout returns the session's active checkout flow, nil when none
func (s *Session) Checkout() *checkout.Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout
}

// SetCheckout installs a new checkout flow. A flow still in progress is
// only replaced once it has reached a terminal state.
func (s *Session) SetCheckout(flow *checkout.Flow) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.checkout != nil && !s.checkout.State().Terminal() {
		return false
	}
	s.checkout = flow
	return true
}

// ClearCheckout drops the session's checkout flow
func (s *Session) ClearCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkout = nil
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Manager owns all live sessions
type Manager struct {
	config *appconfig.Manager
	policy cart.Policy
	ttl    time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session registry. ttl bounds how long an idle
// session is kept.
func NewManager(config *appconfig.Manager, policy cart.Policy, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		config:   config,
		policy:   policy,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// NewID generates a fresh session identifier
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Get returns the session for id, creating it on first touch. An empty id
// gets a fresh session under a new identifier.
func (m *Manager) Get(id string) *Session {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if s, ok := m.sessions[id]; ok {
			s.touch(now)
			return s
		}
	} else {
		id = uuid.NewString()
	}

	s := &Session{
		ID:        id,
		Cart:      cart.NewStore(m.config, m.policy),
		Favorites: favorites.NewStore(),
		QuickView: quickview.NewStore(),
		lastSeen:  now,
	}
	m.sessions[id] = s
	return s
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep removes sessions idle longer than the ttl and returns how many
// were dropped
func (m *Manager) Sweep() int {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.idleSince(now) > m.ttl {
			// A pending checkout dies with its session.
			if flow := s.Checkout(); flow != nil {
				flow.Discard()
			}
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on the given interval until stop is closed
func (m *Manager) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Sweep()
			case <-stop:
				return
			}
		}
	}()
}
