// @title Storefront Catalog API
// @version 1.0
// @description Faceted product filter, sort and pagination engine for the storefront catalog
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	result_cache "github.com/cyrano21/ewebsite2-sub000/cache"
	"github.com/cyrano21/ewebsite2-sub000/config"
	"github.com/cyrano21/ewebsite2-sub000/controllers/storefront/category_controller"
	"github.com/cyrano21/ewebsite2-sub000/controllers/storefront/filter_controller"
	"github.com/cyrano21/ewebsite2-sub000/controllers/storefront/product_controller"
	_ "github.com/cyrano21/ewebsite2-sub000/docs"
	"github.com/cyrano21/ewebsite2-sub000/routes/storefront_routes"
	"github.com/cyrano21/ewebsite2-sub000/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis is optional: result memoization and rate limiting degrade
	// gracefully without it
	config.ConnectRedis()

	// Catalog snapshot source
	catalogProvider := buildCatalogProvider()
	catalog := services.NewCatalogService(catalogProvider)
	ctx, cancel := config.WithTimeout()
	defer cancel()
	if err := catalog.Refresh(ctx); err != nil {
		// Serve the empty state rather than refusing to start: the storefront
		// shows an inline error and recovers on the next successful refresh.
		log.Printf("⚠️  initial catalog fetch failed, starting with empty catalog: %v", err)
	} else {
		products, version, maxPrice := catalog.Snapshot()
		log.Printf("✅ Catalog loaded: %d products (snapshot v%d, max price %d)", len(products), version, maxPrice)
	}

	if refresh := os.Getenv("CATALOG_REFRESH"); refresh != "" {
		if interval, err := time.ParseDuration(refresh); err == nil {
			catalog.StartRefreshing(context.Background(), interval)
			log.Printf("✅ Catalog refresh every %s", interval)
		} else {
			log.Printf("⚠️  invalid CATALOG_REFRESH %q, refresh disabled", refresh)
		}
	}

	// Category provider with local derivation fallback
	var categoryProvider services.CategoryProvider
	if url := os.Getenv("CATEGORY_URL"); url != "" {
		categoryProvider = &services.HTTPCategoryProvider{URL: url}
		log.Println("✅ Category provider:", url)
	} else {
		log.Println("⚠️  CATEGORY_URL not set, categories derived from catalog")
	}
	categoryService := services.NewCategoryService(categoryProvider, catalog)

	// Result memoization keyed by (snapshot version, canonical query)
	resultCache := result_cache.New(config.RedisClient)

	// Wire controllers
	product_controller.Init(catalog, categoryService, resultCache)
	category_controller.Init(catalog, categoryService)
	filter_controller.Init(catalog, categoryService)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if config.GetEnv("APP_ENV", "development") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	storefront_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := config.GetEnv("PORT", "8081")
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}

// buildCatalogProvider picks the snapshot source: a remote catalog endpoint
// when CATALOG_URL is set, a JSON fixture otherwise (see cmd/seed).
func buildCatalogProvider() services.CatalogProvider {
	if url := os.Getenv("CATALOG_URL"); url != "" {
		log.Println("✅ Catalog provider:", url)
		return &services.HTTPCatalogProvider{URL: url, Client: &http.Client{Timeout: 10 * time.Second}}
	}
	path := config.GetEnv("CATALOG_FILE", "catalog.json")
	log.Println("✅ Catalog provider: file", path)
	return &services.FileCatalogProvider{Path: path}
}
