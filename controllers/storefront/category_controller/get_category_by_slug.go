package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyrano21/ewebsite2-sub000/models"
)

// GetCategoryBySlug godoc
// @Summary Resolve a category slug
// @Description Resolve a URL-safe category slug to its category. Unknown slugs are reported as not found; category navigation treats that as a no-op.
// @Tags Storefront - Categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} models.ApiResponse{data=models.CategoryRef}
// @Failure 404 {object} models.ApiResponse
// @Router /store/categories/{slug} [get]
func GetCategoryBySlug(c *gin.Context) {
	slug := c.Param("slug")

	cat, ok := categorySvc.BySlug(c.Request.Context(), slug)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", cat))
}
