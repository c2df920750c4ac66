// internal/domain/checkout/entity.go
package checkout

import (
	"github.com/kraken-dive/storefront-backend/internal/domain/cart"
	"github.com/kraken-dive/storefront-backend/internal/pkg/device"
)

// State identifies where a checkout flow is in its lifecycle
type State string

const (
	StatePayment    State = "payment"
	StateSignature  State = "signature"
	StateProcessing State = "processing"
	StateComplete   State = "complete"
	StateAborted    State = "aborted"
)

// Terminal reports whether the state admits no further transitions
func (s State) Terminal() bool {
	return s == StateComplete || s == StateAborted
}

// BillingAddress is the customer's billing address as entered in the
// payment form
type BillingAddress struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

// PaymentData is the validated payment form. It lives only inside an active
// flow; the CVV and the full card number are never copied onto the invoice.
type PaymentData struct {
	CardNumber     string         `json:"card_number" binding:"required"`
	ExpiryDate     string         `json:"expiry_date" binding:"required"`
	CVV            string         `json:"cvv" binding:"required"`
	CardholderName string         `json:"cardholder_name" binding:"required"`
	BillingAddress BillingAddress `json:"billing_address" binding:"required"`
}

// Signature is a captured digital signature. Created once per checkout
// attempt; immutable.
type Signature struct {
	SignatureData string `json:"signature_data"` // opaque image blob reference
	Timestamp     string `json:"timestamp"`      // ISO capture time
	IPAddress     string `json:"ip_address"`
	UserAgent     string `json:"user_agent"`
}

// CustomerInfo is the invoice's customer block
type CustomerInfo struct {
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	BillingAddress BillingAddress `json:"billing_address"`
}

// Totals is the checkout pricing breakdown. The subtotal is sale-aware.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Invoice is produced exactly once per completed checkout and is immutable
// after creation. PaymentMethod carries only the last four card digits.
type Invoice struct {
	ID            string       `json:"id"`
	OrderNumber   string       `json:"order_number"`
	Date          string       `json:"date"`
	Items         []cart.Item  `json:"items"`
	Subtotal      float64      `json:"subtotal"`
	Tax           float64      `json:"tax"`
	Total         float64      `json:"total"`
	PaymentMethod string       `json:"payment_method"`
	CustomerInfo  CustomerInfo `json:"customer_info"`
	Signature     Signature    `json:"signature"`
	DeviceInfo    device.Info  `json:"device_info"`
}
