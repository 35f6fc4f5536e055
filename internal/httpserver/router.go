package httpserver

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"mavazimarket/internal/auth"
	"mavazimarket/internal/service/catalog"
	"mavazimarket/internal/service/order"
	"mavazimarket/internal/service/session"
)

// Deps carries everything the router needs.
type Deps struct {
	Catalog     *catalog.Service
	Orders      *order.Service
	Sessions    *session.Manager
	Verifier    auth.TokenVerifier
	AdminAPIKey string
	CORSOrigins []string
	Logger      zerolog.Logger
	DB          *pgxpool.Pool
}

func buildRouter(deps Deps) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(deps.Logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Device-ID", "X-API-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if allowAllOrigins(deps.CORSOrigins) {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = deps.CORSOrigins
	}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.DB))

	api := router.Group("/api")
	{
		api.GET("/categories", listCategoriesHandler(deps.Catalog))
		api.GET("/categories/:slug", getCategoryHandler(deps.Catalog))
		api.GET("/products", listProductsHandler(deps.Catalog))
		api.GET("/products/:slug", getProductHandler(deps.Catalog))

		authed := api.Group("")
		authed.Use(sessionMiddleware(deps.Sessions, deps.Verifier, deps.Logger))
		{
			authed.GET("/cart", getCartHandler())
			authed.POST("/cart/items", addCartItemHandler(deps.Catalog))
			authed.PATCH("/cart/items/:itemID", updateCartItemHandler())
			authed.DELETE("/cart/items/:itemID", removeCartItemHandler())
			authed.DELETE("/cart", clearCartHandler())

			authed.GET("/wishlist", getWishlistHandler())
			authed.PUT("/wishlist/:productID", addWishlistHandler())
			authed.DELETE("/wishlist/:productID", removeWishlistHandler())

			authed.POST("/checkout", checkoutHandler(deps.Orders))
			authed.GET("/orders", listOrdersHandler(deps.Orders))
			authed.GET("/orders/:orderID", getOrderHandler(deps.Orders))
		}

		admin := api.Group("/admin")
		admin.Use(adminAuthMiddleware(deps.AdminAPIKey))
		{
			admin.POST("/products", upsertProductHandler(deps.Catalog))
			admin.DELETE("/products/:id", deleteProductHandler(deps.Catalog))
			admin.POST("/categories", upsertCategoryHandler(deps.Catalog))
			admin.DELETE("/categories/:slug", deleteCategoryHandler(deps.Catalog))
			admin.GET("/orders", adminListOrdersHandler(deps.Orders))
			admin.PATCH("/orders/:orderID/status", adminUpdateOrderStatusHandler(deps.Orders))
		}
	}

	return router, nil
}

func allowAllOrigins(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
