package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Desertfoxking25/szakdoga-viragweb/catalog"
	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
	"github.com/Desertfoxking25/szakdoga-viragweb/utils"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Partial update; only provided fields change. Slug changes are re-normalized and checked for uniqueness.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse "Product updated successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 409 {object} models.ApiResponse "Slug already in use"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[admin.product] failed to fetch product %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = models.CategoryList(*req.Category)
	}
	if req.ImgURL != nil {
		updates["img_url"] = *req.ImgURL
	}
	if req.Sales != nil {
		updates["sales"] = *req.Sales
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Slug != nil {
		slug, err := utils.NormalizeSlug(*req.Slug)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		var count int64
		if err := config.Gorm.WithContext(ctx).
			Model(&models.Product{}).
			Where("slug = ? AND id <> ?", slug, id).
			Count(&count).Error; err != nil {
			log.Printf("[admin.product] slug check failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Slug already in use"))
			return
		}
		updates["slug"] = slug
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nothing to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&product).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.product] failed to update product %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error; err != nil {
		log.Printf("[admin.product] failed to reload product %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	catalog.PublishInvalidation(config.Ctx, config.RedisClient, "product updated: "+id.String())

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}
