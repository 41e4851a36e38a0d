package storefront_routes

import (
	"time"

	store_category "github.com/cyrano21/ewebsite2-sub000/controllers/storefront/category_controller"
	store_filter "github.com/cyrano21/ewebsite2-sub000/controllers/storefront/filter_controller"
	store_product "github.com/cyrano21/ewebsite2-sub000/controllers/storefront/product_controller"
	"github.com/cyrano21/ewebsite2-sub000/middleware"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")
	store.Use(middleware.RateLimiter(300, time.Minute))

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts) // List with filters
		products.GET("/:id", store_product.GetStorefrontProductByID)
	}

	// Category routes
	categories := store.Group("/categories")
	{
		categories.GET("", store_category.GetCategories)
		categories.GET("/:slug", store_category.GetCategoryBySlug)
	}

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)
}
