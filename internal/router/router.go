package router

import (
	"context"
	"net/http"
	"time"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/auth"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/category"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/location"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/middleware"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/product"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/review"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/search"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/shop"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every route handler the API mounts.
type Handlers struct {
	Auth     *auth.Handler
	Shop     *shop.Handler
	Product  *product.Handler
	Category *category.Handler
	Review   *review.Handler
	Search   *search.Handler
	Location *location.Handler
}

// HealthCheck pings one backing store.
type HealthCheck func(ctx context.Context) error

func New(h Handlers, checks map[string]HealthCheck) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", healthHandler(checks))

	// Public surface
	r.POST("/auth/register", h.Auth.Register)
	r.POST("/auth/login", h.Auth.Login)

	r.GET("/search", h.Search.Search)
	r.GET("/catalog/search", h.Search.CatalogSearch)
	r.GET("/location/resolve", h.Location.Resolve)

	r.GET("/shops/search", h.Search.Search)
	r.GET("/shops/:id", h.Shop.GetShopDetails)
	r.GET("/shops/:id/reviews", h.Review.ListShopReviews)

	r.GET("/products", h.Product.ListProducts)
	r.GET("/products/:id", h.Product.GetProduct)

	r.GET("/categories", h.Category.ListCategories)
	r.GET("/categories/:id", h.Category.GetCategory)

	// Authenticated surface
	authed := r.Group("/", middleware.AuthMiddleware())

	shopkeeper := authed.Group("/", middleware.RequireRole(auth.RoleShopkeeper, auth.RoleAdmin))
	shopkeeper.POST("/shops", h.Shop.CreateShop)
	shopkeeper.GET("/shops/my-shops", h.Shop.ListMyShops)
	shopkeeper.POST("/products", h.Product.CreateProduct)

	authed.PUT("/shops/:id", h.Shop.UpdateShop)
	authed.DELETE("/shops/:id", h.Shop.DeleteShop)
	authed.POST("/shops/:id/images", h.Shop.UploadImages)

	authed.PUT("/products/:id", h.Product.UpdateProduct)
	authed.DELETE("/products/:id", h.Product.DeleteProduct)

	authed.POST("/reviews", h.Review.CreateReview)
	authed.PUT("/reviews/:id", h.Review.UpdateReview)
	authed.DELETE("/reviews/:id", h.Review.DeleteReview)
	authed.PUT("/reviews/:id/response", h.Review.RespondToReview)

	admin := authed.Group("/", middleware.RequireRole(auth.RoleAdmin))
	admin.POST("/categories", h.Category.CreateCategory)
	admin.PUT("/categories/:id", h.Category.UpdateCategory)
	admin.DELETE("/categories/:id", h.Category.DeleteCategory)

	return r
}

// healthHandler reports the API plus per-store reachability. The endpoint
// answers 200 even when a store is down; the payload carries the detail.
func healthHandler(checks map[string]HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		stores := gin.H{}
		for name, check := range checks {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			if err := check(ctx); err != nil {
				stores[name] = "down"
			} else {
				stores[name] = "ok"
			}
			cancel()
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"stores": stores,
		})
	}
}
