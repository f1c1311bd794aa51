package auth_controller

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

func createOrUpdateGoogleUser(
	googleUser *models.GoogleUserInfo,
	googleID string,
	emailVerified bool,
) (*models.User, error) {
	var user models.User

	// Try to find existing user by email
	result := config.Gorm.
		Where("email = ?", googleUser.Email).
		First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google login, create user
			user = models.User{
				Email:         googleUser.Email,
				Firstname:     googleUser.GivenName,
				Lastname:      googleUser.FamilyName,
				GoogleID:      googleID,
				Provider:      "google",
				EmailVerified: emailVerified,
				AvatarURL:     &googleUser.Picture,
			}

			if err := config.Gorm.Create(&user).Error; err != nil {
				return nil, err
			}

			return &user, nil
		}

		return nil, result.Error
	}

	// Existing user: update safe fields only
	updates := map[string]interface{}{
		"avatar_url":     googleUser.Picture,
		"email_verified": emailVerified,
	}

	// Only set names if the user never had any
	if user.Firstname == "" && user.Lastname == "" {
		updates["firstname"] = googleUser.GivenName
		updates["lastname"] = googleUser.FamilyName
	}

	// Attach Google account if not already linked
	if user.GoogleID == "" {
		updates["google_id"] = googleID
		updates["provider"] = "google"
	}

	if err := config.Gorm.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	// Sync struct with DB updates
	if user.Firstname == "" && user.Lastname == "" {
		user.Firstname = googleUser.GivenName
		user.Lastname = googleUser.FamilyName
	}
	user.AvatarURL = &googleUser.Picture
	user.EmailVerified = emailVerified

	return &user, nil
}

// setAuthCookie writes the HTTP-only session cookie.
func setAuthCookie(c *gin.Context, jwtToken string) {
	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"auth_token",
		jwtToken,
		24*60*60, // 24 hours
		"/",
		"",
		isProd,
		true, // httpOnly
	)
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
