package tip_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/middleware"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// CreateTip godoc
// @Summary Create a gardening tip
// @Tags Admin - Tips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.TipRequest true "Tip data"
// @Success 201 {object} models.ApiResponse "Tip created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/tips [post]
func CreateTip(c *gin.Context) {
	authorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	tip := models.Tip{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	}
	if err := config.Gorm.WithContext(ctx).Create(&tip).Error; err != nil {
		log.Printf("[admin.tip] failed to create tip: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create tip"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Tip created successfully", tip))
}
