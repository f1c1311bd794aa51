package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/middleware"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// GetMe godoc
// @Summary Get the authenticated user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "User fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/me [get]
func GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		log.Printf("[auth] failed to fetch user %s: %v", userID, err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "User not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "User fetched successfully", user.ToResponse()))
}
