package auth_controller

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// GoogleLogin godoc
// @Summary Start Google OAuth login
// @Description Generates a CSRF state token, stores it in a short-lived cookie and redirects to Google's consent screen.
// @Tags Auth - Google OAuth
// @Success 307 "Redirect to Google"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/google/login [get]
func GoogleLogin(c *gin.Context) {
	stateBytes := make([]byte, 32)
	if _, err := rand.Read(stateBytes); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate state token"))
		return
	}
	state := base64.URLEncoding.EncodeToString(stateBytes)

	isProd := os.Getenv("ENV") == "production"
	c.SetCookie("oauth_state", state, 600, "/", "", isProd, true)

	url := config.GoogleOAuthConfig.AuthCodeURL(state)
	c.Redirect(http.StatusTemporaryRedirect, url)
}
