package profile_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/middleware"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
	"github.com/Desertfoxking25/szakdoga-viragweb/services"
)

const maxAvatarSize = 5 << 20 // 5 MB

// UploadAvatar godoc
// @Summary Upload a profile avatar
// @Description Uploads the image to Cloudinary and stores the returned URL on the profile.
// @Tags Storefront - Profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Avatar image (max 5 MB)"
// @Success 200 {object} models.ApiResponse "Avatar updated successfully"
// @Failure 400 {object} models.ApiResponse "Invalid file"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /user/profile/avatar [post]
func UploadAvatar(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Avatar file is required"))
		return
	}
	if fileHeader.Size > maxAvatarSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Avatar file too large (max 5 MB)"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read avatar file"))
		return
	}
	defer file.Close()

	url, err := services.Cloudinary.UploadImage(c.Request.Context(), file, fmt.Sprintf("avatar-%s", userID), "avatars")
	if err != nil {
		log.Printf("[profile] avatar upload failed for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload avatar"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.Gorm.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		log.Printf("[profile] failed to save avatar URL for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save avatar"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Avatar updated successfully", gin.H{
		"avatarUrl": url,
	}))
}
