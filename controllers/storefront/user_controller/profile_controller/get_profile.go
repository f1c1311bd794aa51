package profile_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/middleware"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// GetProfile godoc
// @Summary Get the current user's profile
// @Tags Storefront - Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Profile fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /user/profile [get]
func GetProfile(c *gin.Context) {
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
		log.Printf("[profile] failed to fetch user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile fetched successfully", user.ToResponse()))
}
