// internal/pkg/export/export.go

// Package export is the boundary to the invoice rendering collaborator.
// The storefront hands a completed invoice over this interface; print and
// PDF rendering live on the other side of it.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kraken-dive/storefront-backend/internal/domain/checkout"
	"github.com/kraken-dive/storefront-backend/internal/infrastructure/settings"
)

// Exporter renders a completed invoice to a writer
type Exporter interface {
	Export(w io.Writer, invoice *checkout.Invoice, business settings.BusinessSettings) error
	ContentType() string
	FileName(invoice *checkout.Invoice) string
}

// JSONExporter writes the invoice as an indented JSON document with the
// company block attached
type JSONExporter struct{}

// NewJSONExporter creates a JSON invoice exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

type jsonDocument struct {
	Company settings.BusinessSettings `json:"company"`
	Invoice *checkout.Invoice         `json:"invoice"`
}

// Export writes the invoice document to w
func (e *JSONExporter) Export(w io.Writer, invoice *checkout.Invoice, business settings.BusinessSettings) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonDocument{Company: business, Invoice: invoice}); err != nil {
		return fmt.Errorf("failed to encode invoice %s: %w", invoice.ID, err)
	}
	return nil
}

// ContentType returns the MIME type of the exported document
func (e *JSONExporter) ContentType() string {
	return "application/json"
}

// FileName returns the download file name for the invoice
func (e *JSONExporter) FileName(invoice *checkout.Invoice) string {
	return fmt.Sprintf("%s.json", invoice.ID)
}
