package product_controller

import (
	result_cache "github.com/cyrano21/ewebsite2-sub000/cache"
	"github.com/cyrano21/ewebsite2-sub000/services"
)

var (
	catalogSvc  *services.CatalogService
	categorySvc *services.CategoryService
	resultCache *result_cache.ResultCache
)

// Init wires the shared services into the controller package. Must be called
// once at startup before the routes are registered.
func Init(catalog *services.CatalogService, categories *services.CategoryService, cache *result_cache.ResultCache) {
	catalogSvc = catalog
	categorySvc = categories
	resultCache = cache
}
