// internal/domain/checkout/ids.go
package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// generateInvoiceID returns a globally unique invoice identifier,
// e.g. INV-1756710000000-3FA8C1
func generateInvoiceID(now time.Time) string {
	return fmt.Sprintf("INV-%d-%s", now.UnixMilli(), randomSuffix(6))
}

// generateOrderNumber returns a globally unique order number,
// e.g. ORD-1756710000000-3FA8
func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), randomSuffix(4))
}

// formatInvoiceDate renders the invoice date in day/month/year order
func formatInvoiceDate(now time.Time) string {
	return now.Format("02/01/2006")
}

func randomSuffix(length int) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:length])
}
