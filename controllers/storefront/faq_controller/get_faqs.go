package faq_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// GetFaqs godoc
// @Summary List FAQ entries
// @Tags Storefront - FAQ
// @Produce json
// @Success 200 {object} models.ApiResponse "FAQ entries fetched successfully"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/faqs [get]
func GetFaqs(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	faqs := make([]models.Faq, 0)
	if err := config.Gorm.WithContext(ctx).Find(&faqs).Error; err != nil {
		log.Printf("[faq] failed to fetch faqs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch FAQ entries"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "FAQ entries fetched successfully", faqs))
}
