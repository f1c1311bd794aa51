package tip_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// GetTips godoc
// @Summary List gardening tips
// @Description Returns all tips, newest first.
// @Tags Storefront - Tips
// @Produce json
// @Success 200 {object} models.ApiResponse "Tips fetched successfully"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/tips [get]
func GetTips(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	tips := make([]models.Tip, 0)
	if err := config.Gorm.WithContext(ctx).
		Order("created_at DESC").
		Find(&tips).Error; err != nil {
		log.Printf("[tip] failed to fetch tips: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch tips"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Tips fetched successfully", tips))
}
