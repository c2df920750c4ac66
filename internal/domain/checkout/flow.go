// internal/domain/checkout/flow.go

// Package checkout drives the mock payment lifecycle: payment form, digital
// signature, a simulated settlement delay, then invoice assembly. A Flow is
// short lived and owns its pending settlement timer, so aborting the flow
// always cancels the timer.
package checkout

import (
	"fmt"
	"sync"
	"time"

	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/domain/cart"
	"github.com/kraken-dive/storefront-backend/internal/domain/pricing"
	"github.com/kraken-dive/storefront-backend/internal/pkg/device"
	"github.com/sirupsen/logrus"
)

var (
	// ErrEmptyCart is returned when starting checkout with nothing to buy
	ErrEmptyCart = fmt.Errorf("cart is empty")
	// ErrWrongState is returned when an operation is not valid in the
	// flow's current state
	ErrWrongState = fmt.Errorf("operation not valid in current state")
)

// Cart is the slice of the cart store the flow consumes
type Cart interface {
	Snapshot() ([]cart.Item, cart.Totals)
	Clear()
}

// DeviceCollector produces the device info recorded on the invoice. An
// error aborts invoice assembly and sends the flow back to the signature
// step.
type DeviceCollector func() (device.Info, error)

// Deps are the collaborators a flow needs
type Deps struct {
	Cart   Cart
	Config *appconfig.Manager
	// CollectDevice overrides the per-flow device info recorded via
	// SetDeviceInfo. Optional.
	CollectDevice   DeviceCollector
	SettlementDelay time.Duration
	Logger          *logrus.Logger

	// OnComplete receives the invoice after a successful settlement.
	OnComplete func(*Invoice)
	// OnFailure receives assembly errors; the flow is back in the
	// signature state when it fires.
	OnFailure func(error)
}

// Flow is a single checkout attempt
type Flow struct {
	deps Deps

	mu         sync.Mutex
	state      State
	payment    *PaymentData
	signature  *Signature
	deviceInfo *device.Info
	timer      *time.Timer
	invoice    *Invoice
	lastError  string
}

// NewFlow starts a checkout attempt over a non-empty cart
func NewFlow(deps Deps) (*Flow, error) {
	items, _ := deps.Cart.Snapshot()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if deps.SettlementDelay <= 0 {
		deps.SettlementDelay = time.Second
	}

	return &Flow{
		deps:  deps,
		state: StatePayment,
	}, nil
}

// State returns the flow's current state
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Totals computes the checkout pricing breakdown over the current cart.
// The subtotal charges each item's sale-aware final price.
func (f *Flow) Totals() Totals {
	items, _ := f.deps.Cart.Snapshot()
	return f.totalsFor(items)
}

// SubmitPayment stores the validated payment form and moves the flow from
// payment to signature
func (f *Flow) SubmitPayment(data PaymentData) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StatePayment {
		return fmt.Errorf("%w: submit payment in state %s", ErrWrongState, f.state)
	}

	f.payment = &data
	f.state = StateSignature
	f.lastError = ""
	return nil
}

// SubmitSignature stores the captured signature, moves the flow to
// processing and schedules the settlement. Valid from the signature state,
// including after a failed assembly attempt.
func (f *Flow) SubmitSignature(sig Signature) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateSignature {
		return fmt.Errorf("%w: submit signature in state %s", ErrWrongState, f.state)
	}

	f.signature = &sig
	f.state = StateProcessing
	f.lastError = ""
	f.timer = time.AfterFunc(f.deps.SettlementDelay, f.settle)
	return nil
}

// SetDeviceInfo records the client device details reported with the most
// recent submission. Used as the collector input when no custom
// DeviceCollector is configured.
func (f *Flow) SetDeviceInfo(info device.Info) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deviceInfo = &info
}

// Abort cancels the flow from the payment or signature state, discarding
// the captured payment and signature data. The cart is untouched. Aborting
// while processing or after completion is rejected.
func (f *Flow) Abort() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StatePayment, StateSignature:
	default:
		return fmt.Errorf("%w: abort in state %s", ErrWrongState, f.state)
	}

	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.payment = nil
	f.signature = nil
	f.state = StateAborted
	return nil
}

// Discard tears the flow down regardless of state, stopping any pending
// settlement timer. Used when the owning session goes away; a completed
// flow keeps its invoice.
func (f *Flow) Discard() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	if !f.state.Terminal() {
		f.payment = nil
		f.signature = nil
		f.state = StateAborted
	}
}

// Invoice returns the assembled invoice once the flow is complete
func (f *Flow) Invoice() (*Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateComplete || f.invoice == nil {
		return nil, fmt.Errorf("%w: invoice in state %s", ErrWrongState, f.state)
	}
	return f.invoice, nil
}

// LastError returns the user-facing message of the most recent assembly
// failure, empty when none
func (f *Flow) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastError
}

// settle fires when the settlement delay expires: collect device info,
// assemble the invoice, clear the cart and hand the invoice to the caller.
// Any failure returns the flow to the signature state with the payment data
// intact so the user can resubmit.
func (f *Flow) settle() {
	f.mu.Lock()

	if f.state != StateProcessing {
		// The flow was discarded while the timer was in flight.
		f.mu.Unlock()
		return
	}
	f.timer = nil

	invoice, err := f.assemble()
	if err != nil {
		f.state = StateSignature
		f.signature = nil
		f.lastError = "Error procesando el pago. Por favor, inténtalo de nuevo."
		onFailure := f.deps.OnFailure
		f.mu.Unlock()

		if f.deps.Logger != nil {
			f.deps.Logger.WithError(err).Warn("invoice assembly failed, returning to signature")
		}
		if onFailure != nil {
			onFailure(err)
		}
		return
	}

	f.invoice = invoice
	f.state = StateComplete
	f.payment = nil
	onComplete := f.deps.OnComplete
	f.mu.Unlock()

	f.deps.Cart.Clear()

	if f.deps.Logger != nil {
		f.deps.Logger.WithFields(logrus.Fields{
			"invoice_id":   invoice.ID,
			"order_number": invoice.OrderNumber,
			"total":        invoice.Total,
		}).Info("checkout completed")
	}
	if onComplete != nil {
		onComplete(invoice)
	}
}

// assemble builds the invoice from the cart snapshot, the masked payment
// data, the signature and the device info. Caller holds the lock.
func (f *Flow) assemble() (*Invoice, error) {
	if f.payment == nil {
		return nil, fmt.Errorf("no payment data captured")
	}
	if f.signature == nil {
		return nil, fmt.Errorf("no signature captured")
	}

	info, err := f.collectDevice()
	if err != nil {
		return nil, fmt.Errorf("failed to collect device info: %w", err)
	}

	items, _ := f.deps.Cart.Snapshot()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	totals := f.totalsFor(items)

	now := time.Now()
	return &Invoice{
		ID:          generateInvoiceID(now),
		OrderNumber: generateOrderNumber(now),
		Date:        formatInvoiceDate(now),
		Items:       items,
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		Total:       totals.Total,
		// Only the last four digits survive onto the invoice.
		PaymentMethod: maskCardNumber(f.payment.CardNumber),
		CustomerInfo: CustomerInfo{
			Name:           f.payment.BillingAddress.FullName,
			Email:          f.payment.BillingAddress.Email,
			BillingAddress: f.payment.BillingAddress,
		},
		Signature:  *f.signature,
		DeviceInfo: info.Normalize(),
	}, nil
}

// collectDevice resolves the invoice device block: the configured collector
// when one is set, otherwise the info recorded via SetDeviceInfo. Caller
// holds the lock.
func (f *Flow) collectDevice() (device.Info, error) {
	if f.deps.CollectDevice != nil {
		return f.deps.CollectDevice()
	}
	if f.deviceInfo == nil {
		return device.Info{}, fmt.Errorf("no device info recorded")
	}
	return *f.deviceInfo, nil
}

func (f *Flow) totalsFor(items []cart.Item) Totals {
	cfg := f.deps.Config.Current()

	var subtotal float64
	for i := range items {
		subtotal += pricing.FinalPrice(&items[i].Product, cfg) * float64(items[i].Quantity)
	}
	subtotal = pricing.RoundAmount(subtotal, cfg)
	tax := pricing.RoundAmount(pricing.Tax(subtotal, cfg), cfg)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    pricing.RoundAmount(subtotal+tax, cfg),
	}
}
