// internal/session/manager_test.go
package session

import (
	"testing"
	"time"

	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/domain/cart"
	"github.com/kraken-dive/storefront-backend/internal/domain/catalog"
	"github.com/kraken-dive/storefront-backend/internal/domain/checkout"
	"github.com/kraken-dive/storefront-backend/internal/infrastructure/settings"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppConfig() *appconfig.Manager {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return appconfig.New(settings.NewSource(nil, logger), logger)
}

func testManager(ttl time.Duration) *Manager {
	return NewManager(testAppConfig(), cart.Policy{AllowOverselling: true}, ttl)
}

func TestGet_CreatesOnFirstTouch(t *testing.T) {
	m := testManager(time.Hour)

	s := m.Get("")
	require.NotNil(t, s)
	assert.NotEmpty(t, s.ID)
	assert.NotNil(t, s.Cart)
	assert.NotNil(t, s.Favorites)
	assert.NotNil(t, s.QuickView)
	assert.Nil(t, s.Checkout())
	assert.Equal(t, 1, m.Len())
}

func TestGet_ReturnsSameSession(t *testing.T) {
	m := testManager(time.Hour)

	s1 := m.Get("")
	require.NoError(t, s1.Cart.AddItem(catalog.Product{ID: 1, Price: 10, Category: catalog.CategoryFins}, nil))

	s2 := m.Get(s1.ID)
	assert.Same(t, s1, s2)
	assert.Equal(t, 1, s2.Cart.Len())
	assert.Equal(t, 1, m.Len())
}

func TestGet_UnknownIDCreatesFresh(t *testing.T) {
	m := testManager(time.Hour)

	s := m.Get("not-a-known-id")
	assert.Equal(t, "not-a-known-id", s.ID)
	assert.Equal(t, 0, s.Cart.Len())
}

func TestSetCheckout_RefusesToReplaceActiveFlow(t *testing.T) {
	m := testManager(time.Hour)
	s := m.Get("")
	require.NoError(t, s.Cart.AddItem(catalog.Product{ID: 1, Price: 10, Category: catalog.CategoryFins}, nil))

	flow, err := checkout.NewFlow(checkout.Deps{Cart: s.Cart, Config: testAppConfig()})
	require.NoError(t, err)
	assert.True(t, s.SetCheckout(flow))

	second, err := checkout.NewFlow(checkout.Deps{Cart: s.Cart, Config: testAppConfig()})
	require.NoError(t, err)
	assert.False(t, s.SetCheckout(second))

	// An aborted flow can be replaced.
	require.NoError(t, flow.Abort())
	assert.True(t, s.SetCheckout(second))

	s.ClearCheckout()
	assert.Nil(t, s.Checkout())
}

func TestSweep_RemovesIdleSessions(t *testing.T) {
	m := testManager(time.Millisecond)

	s := m.Get("")
	require.NoError(t, s.Cart.AddItem(catalog.Product{ID: 1, Price: 10, Category: catalog.CategoryFins}, nil))

	flow, err := checkout.NewFlow(checkout.Deps{Cart: s.Cart, Config: testAppConfig()})
	require.NoError(t, err)
	require.True(t, s.SetCheckout(flow))

	time.Sleep(5 * time.Millisecond)

	removed := m.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, checkout.StateAborted, flow.State())
}

func TestSweep_KeepsFreshSessions(t *testing.T) {
	m := testManager(time.Hour)
	m.Get("")

	assert.Equal(t, 0, m.Sweep())
	assert.Equal(t, 1, m.Len())
}
