// internal/interfaces/http/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/domain/catalog"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	catalog   *catalog.Service
	appConfig *appconfig.Manager
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogService *catalog.Service, appConfig *appconfig.Manager) *ProductHandler {
	return &ProductHandler{
		catalog:   catalogService,
		appConfig: appConfig,
	}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	filters := catalog.Filters{
		Category:        c.DefaultQuery("category", "all"),
		SortBy:          catalog.SortOption(c.DefaultQuery("sort", string(catalog.SortByName))),
		ShowInStockOnly: c.Query("in_stock") == "true",
	}

	switch filters.SortBy {
	case catalog.SortByName, catalog.SortByPriceLow, catalog.SortByPriceHigh:
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sort option",
		})
		return
	}

	if filters.Category != "all" && !catalog.Category(filters.Category).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category",
		})
		return
	}

	cfg := h.appConfig.Current()
	products := h.catalog.List(filters)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": newProductViews(products, cfg),
			"total":    len(products),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, err := h.catalog.Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve product",
		})
		return
	}

	view := newProductView(product, h.appConfig.Current())
	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    view,
	})
}

// SearchProducts handles GET /products/search
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Search query is required",
		})
		return
	}

	cfg := h.appConfig.Current()
	products := h.catalog.Search(query)

	c.JSON(http.StatusOK, gin.H{
		"message": "Search completed successfully",
		"data": gin.H{
			"products": newProductViews(products, cfg),
			"total":    len(products),
			"query":    query,
		},
	})
}

// GetCategories handles GET /products/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data": gin.H{
			"categories": catalog.Categories(),
		},
	})
}
