// internal/interfaces/http/handlers/store.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/config"
)

// StoreHandler exposes the resolved store configuration
type StoreHandler struct {
	config    *config.Config
	appConfig *appconfig.Manager
}

// NewStoreHandler creates a new store configuration handler
func NewStoreHandler(cfg *config.Config, appConfig *appconfig.Manager) *StoreHandler {
	return &StoreHandler{
		config:    cfg,
		appConfig: appConfig,
	}
}

// GetConfig handles GET /store/config
func (h *StoreHandler) GetConfig(c *gin.Context) {
	cfg := h.appConfig.Current()

	c.JSON(http.StatusOK, gin.H{
		"message": "Store configuration retrieved successfully",
		"data": gin.H{
			"region":     h.config.Store.Region,
			"season":     h.config.Store.Season,
			"store_type": h.config.Store.StoreType,
			"stock":      cfg.Stock,
			"tax":        cfg.Tax,
			"pricing":    cfg.Pricing,
			"ui":         cfg.UI,
			"business":   cfg.Business,
		},
	})
}

// RefreshConfig handles POST /store/config/refresh
func (h *StoreHandler) RefreshConfig(c *gin.Context) {
	opts := appconfig.Options{
		Region:    h.config.Store.Region,
		Season:    h.config.Store.Season,
		StoreType: h.config.Store.StoreType,
	}

	if err := h.appConfig.Refresh(c.Request.Context(), opts); err != nil {
		// Refresh already fell back to the defaults; report it.
		c.JSON(http.StatusOK, gin.H{
			"message": "Store configuration refresh fell back to defaults",
			"data": gin.H{
				"fallback": true,
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Store configuration refreshed successfully",
		"data": gin.H{
			"fallback": false,
		},
	})
}
