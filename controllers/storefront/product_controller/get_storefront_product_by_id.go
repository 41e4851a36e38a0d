package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cyrano21/ewebsite2-sub000/models"
)

// GetStorefrontProductByID godoc
// @Summary Get a single storefront product
// @Description Retrieve one product from the current catalog snapshot by its ID
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	products, _, _ := catalogSvc.Snapshot()
	for i := range products {
		if products[i].ID == id {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", products[i]))
			return
		}
	}

	c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
}
