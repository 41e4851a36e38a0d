package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyrano21/ewebsite2-sub000/models"
	"github.com/cyrano21/ewebsite2-sub000/services"
)

var (
	catalogSvc  *services.CatalogService
	categorySvc *services.CategoryService
)

// Init wires the shared services into the controller package.
func Init(catalog *services.CatalogService, categories *services.CategoryService) {
	catalogSvc = catalog
	categorySvc = categories
}

// GetCategories godoc
// @Summary Get storefront categories
// @Description Get all categories with product counts. Served by the external category provider when available, derived from the catalog otherwise.
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	products, _, _ := catalogSvc.Snapshot()

	counts := map[string]int{}
	for i := range products {
		counts[products[i].Category]++
	}

	categories := categorySvc.Categories(c.Request.Context())
	result := make([]models.CategoryWithCount, 0, len(categories))
	for _, cat := range categories {
		result = append(result, models.CategoryWithCount{
			CategoryRef:  cat,
			ProductCount: counts[cat.Name],
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", result))
}
