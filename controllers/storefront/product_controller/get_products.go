package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// GetProducts godoc
// @Summary List storefront products
// @Description Retrieve the product catalog with optional keyword search, category, sales/featured flags, price range or price presets, paginated 8 per page.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Keyword search (whitespace-separated, any keyword matches)"
// @Param category query string false "Category filter (case-insensitive substring match)"
// @Param sales query bool false "Only discounted products"
// @Param featured query bool false "Only featured products"
// @Param minPrice query int false "Minimum price (Ft)" default(0)
// @Param maxPrice query int false "Maximum price (Ft)" default(10000)
// @Param preset query []string false "Checked price presets as min-max (repeatable); overrides the slider range"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	view := buildViewFromQuery(c)

	page := view.Page()
	products := make([]models.StorefrontProductResponse, 0, len(page))
	for i := range page {
		products = append(products, page[i].ToStorefrontResponse())
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		products,
		view.Meta(),
	))
}
