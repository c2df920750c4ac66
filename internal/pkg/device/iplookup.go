// internal/pkg/device/iplookup.go
package device

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// IPLookup resolves the caller's public IP address through an external
// service. Every failure path degrades to the configured fallback address;
// Lookup never returns an error.
type IPLookup struct {
	url      string
	fallback string
	client   *http.Client
	logger   *logrus.Logger
}

// NewIPLookup creates a lookup against url with the given fallback address
func NewIPLookup(url, fallback string, client *http.Client, logger *logrus.Logger) *IPLookup {
	if client == nil {
		client = http.DefaultClient
	}
	return &IPLookup{
		url:      url,
		fallback: fallback,
		client:   client,
		logger:   logger,
	}
}

// Lookup returns the public IP address, or the fallback on any failure
func (l *IPLookup) Lookup(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		l.warn(err)
		return l.fallback
	}

	resp, err := l.client.Do(req)
	if err != nil {
		l.warn(err)
		return l.fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.warn(fmt.Errorf("unexpected status %d", resp.StatusCode))
		return l.fallback
	}

	var payload struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		l.warn(err)
		return l.fallback
	}

	if payload.IP == "" {
		return l.fallback
	}
	return payload.IP
}

func (l *IPLookup) warn(err error) {
	if l.logger != nil {
		l.logger.WithError(err).Warn("ip lookup failed, using fallback address")
	}
}
