// internal/domain/checkout/flow_test.go
package checkout

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/domain/cart"
	"github.com/kraken-dive/storefront-backend/internal/domain/catalog"
	"github.com/kraken-dive/storefront-backend/internal/infrastructure/settings"
	"github.com/kraken-dive/storefront-backend/internal/pkg/device"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *appconfig.Manager {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return appconfig.New(settings.NewSource(nil, logger), logger)
}

func testCart(t *testing.T, manager *appconfig.Manager) *cart.Store {
	t.Helper()

	store := cart.NewStore(manager, cart.Policy{AllowOverselling: true})
	require.NoError(t, store.AddItem(catalog.Product{
		ID:            1,
		Name:          "Carbon Fins",
		Price:         100,
		Category:      catalog.CategoryFins,
		InStock:       true,
		StockQuantity: 5,
	}, nil))
	require.NoError(t, store.AddItem(catalog.Product{
		ID:            2,
		Name:          "Low Volume Mask",
		Price:         50,
		Sale:          &catalog.Sale{DiscountPercentage: 20},
		Category:      catalog.CategoryMasks,
		InStock:       true,
		StockQuantity: 5,
	}, nil))
	return store
}

func testDeps(t *testing.T) Deps {
	manager := testManager()
	return Deps{
		Cart:            testCart(t, manager),
		Config:          manager,
		SettlementDelay: time.Hour, // settle is driven by hand in tests
	}
}

func testPayment() PaymentData {
	return PaymentData{
		CardNumber:     "4111 1111 1111 1111",
		ExpiryDate:     "12/27",
		CVV:            "123",
		CardholderName: "Ana García",
		BillingAddress: BillingAddress{
			FullName:   "Ana García",
			Email:      "ana@example.com",
			Street:     "Calle Mayor 1",
			City:       "Madrid",
			PostalCode: "28001",
			Country:    "España",
		},
	}
}

func testSignature() Signature {
	return Signature{
		SignatureData: "data:image/png;base64,iVBOR",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		IPAddress:     "83.45.112.9",
		UserAgent:     "test-agent",
	}
}

func TestTotals(t *testing.T) {
	manager := testManager()
	store := cart.NewStore(manager, cart.Policy{AllowOverselling: true})

	a := catalog.Product{ID: 1, Name: "A", Price: 10, Category: catalog.CategoryFins, InStock: true, StockQuantity: 9}
	b := catalog.Product{ID: 2, Name: "B", Price: 5, Sale: &catalog.Sale{DiscountPercentage: 20}, Category: catalog.CategoryMasks, InStock: true, StockQuantity: 9}
	require.NoError(t, store.AddItem(a, nil))
	require.NoError(t, store.AddItem(a, nil))
	require.NoError(t, store.AddItem(b, nil))

	f, err := NewFlow(Deps{Cart: store, Config: manager})
	require.NoError(t, err)

	totals := f.Totals()
	assert.Equal(t, 24.0, totals.Subtotal)
	assert.Equal(t, 5.04, totals.Tax)
	assert.Equal(t, 29.04, totals.Total)
}

func TestNewFlow_RejectsEmptyCart(t *testing.T) {
	manager := testManager()
	_, err := NewFlow(Deps{
		Cart:   cart.NewStore(manager, cart.Policy{}),
		Config: manager,
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestFlow_HappyPath(t *testing.T) {
	deps := testDeps(t)
	var completed *Invoice
	deps.OnComplete = func(inv *Invoice) { completed = inv }

	f, err := NewFlow(deps)
	require.NoError(t, err)
	assert.Equal(t, StatePayment, f.State())

	require.NoError(t, f.SubmitPayment(testPayment()))
	assert.Equal(t, StateSignature, f.State())

	f.SetDeviceInfo(device.Info{UserAgent: "test-agent", Platform: "macOS"})
	require.NoError(t, f.SubmitSignature(testSignature()))
	assert.Equal(t, StateProcessing, f.State())

	f.settle()
	assert.Equal(t, StateComplete, f.State())

	invoice, err := f.Invoice()
	require.NoError(t, err)
	assert.Same(t, completed, invoice)

	// 100 + 50*0.8 = 140, plus 21% IVA.
	assert.Equal(t, 140.0, invoice.Subtotal)
	assert.Equal(t, 29.4, invoice.Tax)
	assert.Equal(t, 169.4, invoice.Total)

	assert.Equal(t, "**** **** **** 1111", invoice.PaymentMethod)
	assert.NotContains(t, invoice.PaymentMethod, "4111 1111")
	assert.Equal(t, "Ana García", invoice.CustomerInfo.Name)
	assert.Equal(t, "macOS", invoice.DeviceInfo.Platform)
	assert.Equal(t, device.Unknown, invoice.DeviceInfo.Timezone)
	assert.Len(t, invoice.Items, 2)

	assert.True(t, strings.HasPrefix(invoice.ID, "INV-"))
	assert.True(t, strings.HasPrefix(invoice.OrderNumber, "ORD-"))

	// Completion clears the cart.
	items, _ := deps.Cart.Snapshot()
	assert.Empty(t, items)
}

func TestFlow_StateGuards(t *testing.T) {
	f, err := NewFlow(testDeps(t))
	require.NoError(t, err)

	assert.ErrorIs(t, f.SubmitSignature(testSignature()), ErrWrongState)
	_, err = f.Invoice()
	assert.ErrorIs(t, err, ErrWrongState)

	require.NoError(t, f.SubmitPayment(testPayment()))
	assert.ErrorIs(t, f.SubmitPayment(testPayment()), ErrWrongState)
}

func TestFlow_AssemblyFailureReturnsToSignature(t *testing.T) {
	deps := testDeps(t)
	probeDown := true
	deps.CollectDevice = func() (device.Info, error) {
		if probeDown {
			return device.Info{}, fmt.Errorf("probe unavailable")
		}
		return device.Info{UserAgent: "test-agent"}, nil
	}
	var failure error
	deps.OnFailure = func(err error) { failure = err }

	f, err := NewFlow(deps)
	require.NoError(t, err)
	require.NoError(t, f.SubmitPayment(testPayment()))
	require.NoError(t, f.SubmitSignature(testSignature()))

	f.settle()

	assert.Equal(t, StateSignature, f.State())
	assert.NotEmpty(t, f.LastError())
	assert.Error(t, failure)

	// The cart survives a failed attempt.
	items, _ := deps.Cart.Snapshot()
	assert.Len(t, items, 2)

	// Payment data is retained; a fresh signature completes the flow.
	probeDown = false
	require.NoError(t, f.SubmitSignature(testSignature()))
	f.settle()

	assert.Equal(t, StateComplete, f.State())
	assert.Empty(t, f.LastError())
}

func TestFlow_Abort(t *testing.T) {
	deps := testDeps(t)
	f, err := NewFlow(deps)
	require.NoError(t, err)
	require.NoError(t, f.SubmitPayment(testPayment()))

	require.NoError(t, f.Abort())
	assert.Equal(t, StateAborted, f.State())
	assert.Nil(t, f.payment)
	assert.Nil(t, f.signature)

	// Aborting keeps the cart intact.
	items, _ := deps.Cart.Snapshot()
	assert.Len(t, items, 2)

	// Terminal states reject everything.
	assert.ErrorIs(t, f.Abort(), ErrWrongState)
	assert.ErrorIs(t, f.SubmitPayment(testPayment()), ErrWrongState)
}

func TestFlow_AbortRejectedWhileProcessing(t *testing.T) {
	f, err := NewFlow(testDeps(t))
	require.NoError(t, err)
	require.NoError(t, f.SubmitPayment(testPayment()))
	require.NoError(t, f.SubmitSignature(testSignature()))

	assert.ErrorIs(t, f.Abort(), ErrWrongState)
	assert.Equal(t, StateProcessing, f.State())

	f.Discard()
}

func TestFlow_DiscardStopsPendingSettlement(t *testing.T) {
	deps := testDeps(t)
	deps.SettlementDelay = 10 * time.Millisecond
	var completed bool
	deps.OnComplete = func(*Invoice) { completed = true }

	f, err := NewFlow(deps)
	require.NoError(t, err)
	require.NoError(t, f.SubmitPayment(testPayment()))
	f.SetDeviceInfo(device.Info{UserAgent: "test-agent"})
	require.NoError(t, f.SubmitSignature(testSignature()))

	f.Discard()
	assert.Equal(t, StateAborted, f.State())

	time.Sleep(30 * time.Millisecond)
	assert.False(t, completed)
	items, _ := deps.Cart.Snapshot()
	assert.Len(t, items, 2)
}

func TestFlow_SettlementTimerFires(t *testing.T) {
	deps := testDeps(t)
	deps.SettlementDelay = 5 * time.Millisecond
	done := make(chan *Invoice, 1)
	deps.OnComplete = func(inv *Invoice) { done <- inv }

	f, err := NewFlow(deps)
	require.NoError(t, err)
	require.NoError(t, f.SubmitPayment(testPayment()))
	f.SetDeviceInfo(device.Info{UserAgent: "test-agent"})
	require.NoError(t, f.SubmitSignature(testSignature()))

	select {
	case inv := <-done:
		assert.Equal(t, StateComplete, f.State())
		assert.NotNil(t, inv)
	case <-time.After(time.Second):
		t.Fatal("settlement timer did not fire")
	}
}
