package profile_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/middleware"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Description Partial update; only provided fields change. Email and admin flag cannot be changed here.
// @Tags Storefront - Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse "Profile updated successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /user/profile [patch]
func UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	updates := map[string]interface{}{}
	if req.Firstname != nil {
		updates["firstname"] = *req.Firstname
	}
	if req.Lastname != nil {
		updates["lastname"] = *req.Lastname
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nothing to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.Gorm.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		log.Printf("[profile] failed to update user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}

	var user models.User
	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		log.Printf("[profile] failed to reload user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile updated successfully", user.ToResponse()))
}
