// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/config"
	"github.com/kraken-dive/storefront-backend/internal/domain/catalog"
	"github.com/kraken-dive/storefront-backend/internal/interfaces/http/handlers"
	"github.com/kraken-dive/storefront-backend/internal/pkg/device"
	"github.com/kraken-dive/storefront-backend/internal/pkg/export"
	"github.com/sirupsen/logrus"
)

// Deps carries the shared collaborators the route handlers need
type Deps struct {
	Config    *config.Config
	AppConfig *appconfig.Manager
	Catalog   *catalog.Service
	IPLookup  *device.IPLookup
	Exporter  export.Exporter
	Logger    *logrus.Logger
}

// SetupRoutes wires all storefront routes onto the API group. The session
// middleware must already be installed on rg.
func SetupRoutes(rg *gin.RouterGroup, deps Deps) {
	SetupProductRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupFavoritesRoutes(rg, deps)
	SetupQuickViewRoutes(rg, deps)
	SetupCheckoutRoutes(rg, deps)
	SetupStoreRoutes(rg, deps)
}

// SetupProductRoutes sets up catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, deps Deps) {
	productHandler := handlers.NewProductHandler(deps.Catalog, deps.AppConfig)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/search", productHandler.SearchProducts)
		products.GET("/categories", productHandler.GetCategories)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart routes
func SetupCartRoutes(rg *gin.RouterGroup, deps Deps) {
	cartHandler := handlers.NewCartHandler(deps.Catalog, deps.AppConfig)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/toggle", cartHandler.ToggleCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveCartItem)
	}
}

// SetupFavoritesRoutes sets up favorites routes
func SetupFavoritesRoutes(rg *gin.RouterGroup, deps Deps) {
	favoritesHandler := handlers.NewFavoritesHandler(deps.Catalog, deps.AppConfig)

	favorites := rg.Group("/favorites")
	{
		favorites.GET("", favoritesHandler.GetFavorites)
		favorites.POST("/:id/toggle", favoritesHandler.ToggleFavorite)
		favorites.DELETE("/:id", favoritesHandler.RemoveFavorite)
	}
}

// SetupQuickViewRoutes sets up quick view routes
func SetupQuickViewRoutes(rg *gin.RouterGroup, deps Deps) {
	quickViewHandler := handlers.NewQuickViewHandler(deps.Catalog, deps.AppConfig)

	quickview := rg.Group("/quickview")
	{
		quickview.GET("", quickViewHandler.GetQuickView)
		quickview.POST("/:id", quickViewHandler.OpenQuickView)
		quickview.DELETE("", quickViewHandler.CloseQuickView)
	}
}

// SetupCheckoutRoutes sets up checkout lifecycle routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, deps Deps) {
	checkoutHandler := handlers.NewCheckoutHandler(deps.Config, deps.AppConfig, deps.IPLookup, deps.Exporter, deps.Logger)

	checkout := rg.Group("/checkout")
	{
		checkout.POST("", checkoutHandler.StartCheckout)
		checkout.GET("", checkoutHandler.GetCheckout)
		checkout.DELETE("", checkoutHandler.AbortCheckout)
		checkout.POST("/payment", checkoutHandler.SubmitPayment)
		checkout.POST("/signature", checkoutHandler.SubmitSignature)
		checkout.GET("/invoice", checkoutHandler.GetInvoice)
		checkout.GET("/invoice/download", checkoutHandler.DownloadInvoice)
	}
}

// SetupStoreRoutes sets up store configuration routes
func SetupStoreRoutes(rg *gin.RouterGroup, deps Deps) {
	storeHandler := handlers.NewStoreHandler(deps.Config, deps.AppConfig)

	store := rg.Group("/store")
	{
		store.GET("/config", storeHandler.GetConfig)
		store.POST("/config/refresh", storeHandler.RefreshConfig)
	}
}
