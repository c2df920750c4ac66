// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/domain/cart"
	"github.com/kraken-dive/storefront-backend/internal/domain/catalog"
	"github.com/kraken-dive/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	catalog   *catalog.Service
	appConfig *appconfig.Manager
}

// NewCartHandler creates a new cart handler
func NewCartHandler(catalogService *catalog.Service, appConfig *appconfig.Manager) *CartHandler {
	return &CartHandler{
		catalog:   catalogService,
		appConfig: appConfig,
	}
}

// AddToCartRequest is the add-to-cart payload
type AddToCartRequest struct {
	ProductID    int  `json:"product_id" binding:"required"`
	VariantIndex *int `json:"variant_index"`
}

// UpdateCartItemRequest is the quantity update payload
type UpdateCartItemRequest struct {
	Quantity     int  `json:"quantity" binding:"min=0"`
	VariantIndex *int `json:"variant_index"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	s := middleware.GetSession(c)

	items, totals := s.Cart.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    newCartView(items, totals, s.Cart.IsOpen(), h.appConfig.Current()),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	s := middleware.GetSession(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	if req.VariantIndex != nil {
		if *req.VariantIndex < 0 || *req.VariantIndex >= len(product.Variants) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid variant index",
			})
			return
		}
	}

	if err := s.Cart.AddItem(*product, req.VariantIndex); err != nil {
		if errors.Is(err, cart.ErrInsufficientStock) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Insufficient stock",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	items, totals := s.Cart.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    newCartView(items, totals, s.Cart.IsOpen(), h.appConfig.Current()),
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	s := middleware.GetSession(c)

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := s.Cart.SetQuantity(productID, req.Quantity, req.VariantIndex); err != nil {
		if errors.Is(err, cart.ErrInsufficientStock) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Insufficient stock",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart item",
		})
		return
	}

	items, totals := s.Cart.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    newCartView(items, totals, s.Cart.IsOpen(), h.appConfig.Current()),
	})
}

// RemoveCartItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	s := middleware.GetSession(c)

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var variantIndex *int
	if raw := c.Query("variant_index"); raw != "" {
		idx, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid variant index",
			})
			return
		}
		variantIndex = &idx
	}

	s.Cart.RemoveItem(productID, variantIndex)

	items, totals := s.Cart.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    newCartView(items, totals, s.Cart.IsOpen(), h.appConfig.Current()),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	s := middleware.GetSession(c)
	s.Cart.Clear()

	items, totals := s.Cart.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    newCartView(items, totals, s.Cart.IsOpen(), h.appConfig.Current()),
	})
}

// ToggleCart handles POST /cart/toggle
func (h *CartHandler) ToggleCart(c *gin.Context) {
	s := middleware.GetSession(c)
	open := s.Cart.ToggleOpen()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart visibility toggled successfully",
		"data": gin.H{
			"is_open": open,
		},
	})
}
