// internal/interfaces/http/handlers/checkout_test.go
package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentBody() map[string]interface{} {
	return map[string]interface{}{
		"card_number":     "4111 1111 1111 1111",
		"expiry_date":     "12/27",
		"cvv":             "123",
		"cardholder_name": "Ana García",
		"billing_address": map[string]interface{}{
			"full_name":   "Ana García",
			"email":       "ana@example.com",
			"street":      "Calle Mayor 1",
			"city":        "Madrid",
			"postal_code": "28001",
			"country":     "España",
		},
	}
}

func signatureBody() map[string]interface{} {
	return map[string]interface{}{
		"signature_data":    "data:image/png;base64,iVBOR",
		"screen_resolution": "2560x1440",
		"timezone":          "Europe/Madrid",
		"platform":          "macOS",
	}
}

// startCheckout seeds a cart and opens a checkout flow, returning the
// session id
func startCheckout(t *testing.T, engine *gin.Engine) string {
	t.Helper()

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", "", map[string]interface{}{"product_id": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	sessionID := rec.Header().Get("X-Session-ID")

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/checkout", sessionID, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "payment", decodeData(t, rec)["state"])
	return sessionID
}

// waitForState polls the checkout endpoint until the flow reaches want
func waitForState(t *testing.T, engine *gin.Engine, sessionID, want string) map[string]interface{} {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		rec := doJSON(t, engine, http.MethodGet, "/api/v1/checkout", sessionID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeData(t, rec)
		if data["state"] == want {
			return data
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("checkout never reached state %q", want)
	return nil
}

func TestStartCheckout_EmptyCart(t *testing.T) {
	engine := newRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/checkout", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_NoFlow(t *testing.T) {
	engine := newRouter(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/v1/checkout", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckout_HappyPath(t *testing.T) {
	engine := newRouter(t)
	sessionID := startCheckout(t, engine)

	// Totals are sale-aware: 79.99 at 20% off is 63.99, plus 21% IVA.
	rec := doJSON(t, engine, http.MethodGet, "/api/v1/checkout", sessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	totals := decodeData(t, rec)["totals"].(map[string]interface{})
	assert.InDelta(t, 63.99, totals["subtotal"].(float64), 0.001)
	assert.InDelta(t, 13.44, totals["tax"].(float64), 0.001)
	assert.InDelta(t, 77.43, totals["total"].(float64), 0.001)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/checkout/payment", sessionID, paymentBody())
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "signature", data["state"])
	assert.Equal(t, "visa", data["card_brand"])

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/checkout/signature", sessionID, signatureBody())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "processing", decodeData(t, rec)["state"])

	waitForState(t, engine, sessionID, "complete")

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/checkout/invoice", sessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	invoice := decodeData(t, rec)
	assert.Equal(t, "**** **** **** 1111", invoice["payment_method"])
	assert.InDelta(t, 77.43, invoice["total"].(float64), 0.001)

	signature := invoice["signature"].(map[string]interface{})
	assert.Equal(t, "192.168.1.1", signature["ip_address"])

	deviceInfo := invoice["device_info"].(map[string]interface{})
	assert.Equal(t, "2560x1440", deviceInfo["screen_resolution"])
	assert.Equal(t, "Europe/Madrid", deviceInfo["timezone"])

	// Completion empties the cart.
	rec = doJSON(t, engine, http.MethodGet, "/api/v1/cart", sessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decodeData(t, rec)["item_count"])
}

func TestCheckout_InvalidPayment(t *testing.T) {
	engine := newRouter(t)
	sessionID := startCheckout(t, engine)

	body := paymentBody()
	delete(body, "cvv")
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/checkout/payment", sessionID, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Bad input leaves the flow in the payment state.
	rec = doJSON(t, engine, http.MethodGet, "/api/v1/checkout", sessionID, nil)
	assert.Equal(t, "payment", decodeData(t, rec)["state"])
}

func TestCheckout_SignatureBeforePayment(t *testing.T) {
	engine := newRouter(t)
	sessionID := startCheckout(t, engine)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/checkout/signature", sessionID, signatureBody())
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCheckout_Abort(t *testing.T) {
	engine := newRouter(t)
	sessionID := startCheckout(t, engine)

	rec := doJSON(t, engine, http.MethodDelete, "/api/v1/checkout", sessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The flow is gone; the cart is not.
	rec = doJSON(t, engine, http.MethodGet, "/api/v1/checkout", sessionID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/cart", sessionID, nil)
	assert.Equal(t, float64(1), decodeData(t, rec)["item_count"])
}

func TestCheckout_SecondFlowRejectedWhileActive(t *testing.T) {
	engine := newRouter(t)
	sessionID := startCheckout(t, engine)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/checkout", sessionID, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCheckout_InvoiceBeforeComplete(t *testing.T) {
	engine := newRouter(t)
	sessionID := startCheckout(t, engine)

	rec := doJSON(t, engine, http.MethodGet, "/api/v1/checkout/invoice", sessionID, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCheckout_DownloadInvoice(t *testing.T) {
	engine := newRouter(t)
	sessionID := startCheckout(t, engine)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/checkout/payment", sessionID, paymentBody())
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, engine, http.MethodPost, "/api/v1/checkout/signature", sessionID, signatureBody())
	require.Equal(t, http.StatusOK, rec.Code)
	waitForState(t, engine, sessionID, "complete")

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/checkout/invoice/download", sessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Body.String(), "KRAKEN Freediving Store")
	assert.Contains(t, rec.Body.String(), "**** **** **** 1111")
}
