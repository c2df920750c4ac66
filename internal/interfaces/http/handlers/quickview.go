// internal/interfaces/http/handlers/quickview.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/domain/catalog"
	"github.com/kraken-dive/storefront-backend/internal/interfaces/http/middleware"
)

// QuickViewHandler handles quick view endpoints
type QuickViewHandler struct {
	catalog   *catalog.Service
	appConfig *appconfig.Manager
}

// NewQuickViewHandler creates a new quick view handler
func NewQuickViewHandler(catalogService *catalog.Service, appConfig *appconfig.Manager) *QuickViewHandler {
	return &QuickViewHandler{
		catalog:   catalogService,
		appConfig: appConfig,
	}
}

// GetQuickView handles GET /quickview
func (h *QuickViewHandler) GetQuickView(c *gin.Context) {
	s := middleware.GetSession(c)

	product, open := s.QuickView.Current()
	data := gin.H{
		"is_open": open,
	}
	if product != nil {
		data["product"] = newProductView(product, h.appConfig.Current())
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Quick view retrieved successfully",
		"data":    data,
	})
}

// OpenQuickView handles POST /quickview/:id
func (h *QuickViewHandler) OpenQuickView(c *gin.Context) {
	s := middleware.GetSession(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, err := h.catalog.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	s.QuickView.Open(*product)
	c.JSON(http.StatusOK, gin.H{
		"message": "Quick view opened successfully",
		"data": gin.H{
			"is_open": true,
			"product": newProductView(product, h.appConfig.Current()),
		},
	})
}

// CloseQuickView handles DELETE /quickview
func (h *QuickViewHandler) CloseQuickView(c *gin.Context) {
	s := middleware.GetSession(c)
	s.QuickView.Close()

	c.JSON(http.StatusOK, gin.H{
		"message": "Quick view closed successfully",
		"data": gin.H{
			"is_open": false,
		},
	})
}
