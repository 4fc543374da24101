// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/retail-insights/internal/config"
	"github.com/your-org/retail-insights/internal/dataset"
	"github.com/your-org/retail-insights/internal/domain/cart"
	"github.com/your-org/retail-insights/internal/interfaces/http/handlers"
	"github.com/your-org/retail-insights/internal/interfaces/http/middleware"
)

// SetupRoutes wires all /api/v1 routes
func SetupRoutes(rg *gin.RouterGroup, store *dataset.Store, cartStore cart.Store, cfg *config.Config) {
	statusHandler := handlers.NewStatusHandler(store)
	analyticsHandler := handlers.NewAnalyticsHandler(store, cfg)
	orderHandler := handlers.NewOrderHandler(store)
	productHandler := handlers.NewProductHandler(store, cfg)
	customerHandler := handlers.NewCustomerHandler(store, cfg)
	returnHandler := handlers.NewReturnHandler(store, cfg)
	cartHandler := handlers.NewCartHandler(cart.NewService(cartStore, store))
	authHandler := handlers.NewAuthHandler(cfg)

	// Dataset load status (clients poll this while data loads)
	rg.GET("/status", statusHandler.GetStatus)

	// Auth flag endpoints
	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/session", authHandler.GetSession)
		}
	}

	// Dashboard analytics endpoints. Optional auth attaches the session
	// when a token is present without gating the data.
	dashboard := rg.Group("")
	dashboard.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		dashboard.GET("/overview", analyticsHandler.GetOverview)
		dashboard.GET("/revenue", analyticsHandler.GetRevenueReport)
		dashboard.GET("/returns", returnHandler.GetReturnStats)
		dashboard.GET("/customers", customerHandler.GetCustomers)
		dashboard.GET("/orders", orderHandler.GetOrders)
		dashboard.GET("/products", productHandler.GetProducts)
		dashboard.GET("/analytics/sales", analyticsHandler.GetSalesReport)
		dashboard.GET("/analytics/sales/export", analyticsHandler.ExportSalesReport)
	}

	// Public storefront endpoints
	rg.GET("/catalog", productHandler.GetCatalog)

	cartRoutes := rg.Group("/cart")
	cartRoutes.Use(middleware.CartSession())
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.POST("/items", cartHandler.AddItem)
		cartRoutes.PUT("/items/:product_id", cartHandler.UpdateItem)
		cartRoutes.DELETE("/items/:product_id", cartHandler.RemoveItem)
		cartRoutes.DELETE("", cartHandler.ClearCart)
		cartRoutes.POST("/checkout", cartHandler.Checkout)
	}
}
