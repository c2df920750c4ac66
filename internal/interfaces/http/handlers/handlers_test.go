// internal/interfaces/http/handlers/handlers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/config"
	"github.com/kraken-dive/storefront-backend/internal/domain/cart"
	"github.com/kraken-dive/storefront-backend/internal/domain/catalog"
	"github.com/kraken-dive/storefront-backend/internal/infrastructure/settings"
	"github.com/kraken-dive/storefront-backend/internal/interfaces/http/middleware"
	"github.com/kraken-dive/storefront-backend/internal/interfaces/http/routes"
	"github.com/kraken-dive/storefront-backend/internal/pkg/device"
	"github.com/kraken-dive/storefront-backend/internal/pkg/export"
	"github.com/kraken-dive/storefront-backend/internal/session"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cfg := &config.Config{
		App: config.AppConfig{
			Name:        "KRAKEN Storefront Backend",
			Version:     "test",
			Environment: "test",
		},
		Store: config.StoreConfig{
			Region:           "ES",
			StoreType:        "retail",
			AllowOverselling: true,
			SessionTTL:       time.Hour,
		},
		Checkout: config.CheckoutConfig{
			SettlementDelay: 5 * time.Millisecond,
		},
		External: config.ExternalConfig{
			// Unroutable on purpose; the lookup degrades to the fallback.
			IPLookupURL:     "http://127.0.0.1:1",
			IPLookupTimeout: 50 * time.Millisecond,
			IPFallback:      "192.168.1.1",
		},
	}

	appConfig := appconfig.New(settings.NewSource(nil, logger), logger)

	catalogService, err := catalog.NewService()
	require.NoError(t, err)

	sessions := session.NewManager(appConfig, cart.Policy{AllowOverselling: true}, time.Hour)

	engine := gin.New()
	api := engine.Group("/api/v1")
	api.Use(middleware.Session(sessions))

	routes.SetupRoutes(api, routes.Deps{
		Config:    cfg,
		AppConfig: appConfig,
		Catalog:   catalogService,
		IPLookup:  device.NewIPLookup(cfg.External.IPLookupURL, cfg.External.IPFallback, &http.Client{Timeout: cfg.External.IPLookupTimeout}, logger),
		Exporter:  export.NewJSONExporter(),
		Logger:    logger,
	})
	return engine
}

// doJSON performs a request with an optional JSON body and session id and
// returns the recorder
func doJSON(t *testing.T, engine *gin.Engine, method, path, sessionID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

// decodeData unwraps the response envelope's data block
func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}
