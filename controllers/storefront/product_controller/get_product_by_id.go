package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// GetProductByID godoc
// @Summary Get a single product
// @Description Retrieve one product with its full description by ID.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{id} [get]
func GetProductByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	for _, product := range config.Catalog.Snapshot() {
		if product.ID == id {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
			return
		}
	}

	c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
}
