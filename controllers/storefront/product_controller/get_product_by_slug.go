package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// GetProductBySlug godoc
// @Summary Get a single product by slug
// @Description Retrieve one product by its URL slug.
// @Tags Storefront - Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/slug/{slug} [get]
func GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	for _, product := range config.Catalog.Snapshot() {
		if product.Slug == slug {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
			return
		}
	}

	c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
}
