package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/catalog"
	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
	"github.com/Desertfoxking25/szakdoga-viragweb/utils"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Creates a product. The slug is normalized and must be unique; a duplicate is rejected with 409. Storefront snapshots are invalidated on success.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ProductRequest true "Product data"
// @Success 201 {object} models.ApiResponse "Product created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Slug already in use"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	slug, err := utils.NormalizeSlug(req.Slug)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var count int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		log.Printf("[admin.product] slug check failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Slug already in use"))
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImgURL:      req.ImgURL,
		Sales:       req.Sales,
		Featured:    req.Featured,
		Slug:        slug,
	}
	if err := config.Gorm.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[admin.product] failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	catalog.PublishInvalidation(config.Ctx, config.RedisClient, "product created: "+product.ID.String())

	log.Printf("[admin.product] product created: %s (%s)", product.Name, product.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
