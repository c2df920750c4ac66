// internal/interfaces/http/handlers/favorites.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/domain/catalog"
	"github.com/kraken-dive/storefront-backend/internal/interfaces/http/middleware"
)

// FavoritesHandler handles favorites endpoints
type FavoritesHandler struct {
	catalog   *catalog.Service
	appConfig *appconfig.Manager
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(catalogService *catalog.Service, appConfig *appconfig.Manager) *FavoritesHandler {
	return &FavoritesHandler{
		catalog:   catalogService,
		appConfig: appConfig,
	}
}

// GetFavorites handles GET /favorites
func (h *FavoritesHandler) GetFavorites(c *gin.Context) {
	s := middleware.GetSession(c)

	products := s.Favorites.List()
	c.JSON(http.StatusOK, gin.H{
		"message": "Favorites retrieved successfully",
		"data": gin.H{
			"products": newProductViews(products, h.appConfig.Current()),
			"total":    len(products),
		},
	})
}

// ToggleFavorite handles POST /favorites/:id/toggle
func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
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

	favorite := s.Favorites.Toggle(*product)
	c.JSON(http.StatusOK, gin.H{
		"message": "Favorite toggled successfully",
		"data": gin.H{
			"product_id": product.ID,
			"favorite":   favorite,
			"total":      s.Favorites.Len(),
		},
	})
}

// RemoveFavorite handles DELETE /favorites/:id
func (h *FavoritesHandler) RemoveFavorite(c *gin.Context) {
	s := middleware.GetSession(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	s.Favorites.Remove(id)
	c.JSON(http.StatusOK, gin.H{
		"message": "Favorite removed successfully",
		"data": gin.H{
			"product_id": id,
			"total":      s.Favorites.Len(),
		},
	})
}
