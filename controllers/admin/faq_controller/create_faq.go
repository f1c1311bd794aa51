package faq_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// CreateFaq godoc
// @Summary Create an FAQ entry
// @Tags Admin - FAQ
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.FaqRequest true "Question and answer"
// @Success 201 {object} models.ApiResponse "FAQ entry created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/faqs [post]
func CreateFaq(c *gin.Context) {
	var req models.FaqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	faq := models.Faq{
		Question: req.Question,
		Answer:   req.Answer,
	}
	if err := config.Gorm.WithContext(ctx).Create(&faq).Error; err != nil {
		log.Printf("[admin.faq] failed to create faq: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create FAQ entry"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "FAQ entry created successfully", faq))
}
