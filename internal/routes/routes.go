package routes

import (
	"freshmart_back_end/internal/auth"
	"freshmart_back_end/internal/handlers/admin"
	"freshmart_back_end/internal/handlers/product"
	"freshmart_back_end/internal/handlers/user"
	"freshmart_back_end/internal/middleware"
	"freshmart_back_end/internal/notify"
	"freshmart_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, s *store.Store, hub *notify.Hub, users *auth.Registry) {
	authHandler := &user.AuthHandler{Users: users}
	cartHandler := &user.CartHandler{Store: s}
	wishlistHandler := &user.WishlistHandler{Store: s}
	orderHandler := &user.OrderHandler{Store: s}
	notifHandler := &user.NotificationsHandler{Hub: hub}
	productHandler := &product.Handler{Store: s}
	inventoryHandler := &product.InventoryHandler{Store: s}
	adminOrders := &admin.OrderHandler{Store: s}
	adminAnalytics := &admin.AnalyticsHandler{Store: s}

	api := r.Group("/api")

	// Catalogue public, aucun token requis
	api.GET("/products", productHandler.List)
	api.GET("/products/search", productHandler.Search)
	api.GET("/products/suggestions", productHandler.Suggestions)
	api.GET("/products/:id", productHandler.GetByID)
	api.GET("/categories", productHandler.Categories)
	api.GET("/orders/slots", orderHandler.GetPickupSlots)

	// Auth, protégée par les limiteurs anti brute-force
	api.POST("/auth/register", middleware.RegisterRateLimit(), authHandler.Register)
	api.POST("/auth/login", middleware.LoginRateLimit(), authHandler.Login)

	// Tout ce qui suit exige un JWT valide
	authed := api.Group("")
	authed.Use(middleware.AuthRequired())
	{
		authed.GET("/auth/me", authHandler.Me)
		authed.GET("/products/recommended", productHandler.Recommended)

		authed.GET("/cart", cartHandler.GetCart)
		authed.POST("/cart/add", cartHandler.AddToCart)
		authed.PATCH("/cart/:productId", cartHandler.UpdateQuantity)
		authed.DELETE("/cart/:productId", cartHandler.RemoveFromCart)
		authed.DELETE("/cart", cartHandler.ClearCart)

		authed.GET("/wishlist", wishlistHandler.GetWishlist)
		authed.POST("/wishlist/add", wishlistHandler.AddToWishlist)
		authed.DELETE("/wishlist/:productId", wishlistHandler.RemoveFromWishlist)
		authed.DELETE("/wishlist", wishlistHandler.ClearWishlist)

		authed.POST("/orders/checkout", orderHandler.Checkout)
		authed.GET("/orders", orderHandler.GetMyOrders)
		authed.GET("/orders/:id", orderHandler.GetOrderByID)
		authed.GET("/orders/:id/qr", orderHandler.GetPickupQR)

		authed.GET("/notifications", notifHandler.List)
		authed.PATCH("/notifications/:id/read", notifHandler.MarkRead)
		authed.POST("/notifications/read-all", notifHandler.MarkAllRead)
		authed.GET("/notifications/stream", notifHandler.Stream)
	}

	// Back-office, réservé au rôle admin
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthRequired(), middleware.RequireAdmin)
	{
		adminGroup.POST("/products", inventoryHandler.Create)
		adminGroup.PATCH("/products/:id", inventoryHandler.Update)
		adminGroup.DELETE("/products/:id", inventoryHandler.Delete)
		adminGroup.POST("/products/bulk", inventoryHandler.BulkUpdate)
		adminGroup.GET("/products/low-stock", inventoryHandler.LowStock)

		adminGroup.GET("/orders", adminOrders.List)
		adminGroup.PATCH("/orders/:id/status", adminOrders.UpdateStatus)

		adminGroup.GET("/analytics", adminAnalytics.Dashboard)
	}
}
