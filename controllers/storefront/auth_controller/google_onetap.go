package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
	"github.com/Desertfoxking25/szakdoga-viragweb/utils"
)

type oneTapRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// GoogleOneTap godoc
// @Summary Google One Tap login
// @Description Verifies the One Tap ID token against Google's OIDC keys, creates/updates the user and issues the session cookie.
// @Tags Auth - Google OAuth
// @Accept json
// @Produce json
// @Param request body oneTapRequest true "Google ID token"
// @Success 200 {object} models.ApiResponse "Login successful"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Invalid ID token"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/google/onetap [post]
func GoogleOneTap(c *gin.Context) {
	var req oneTapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	idToken, err := config.OIDCVerifier.Verify(c.Request.Context(), req.Credential)
	if err != nil {
		log.Printf("[auth] one tap token verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid ID token"))
		return
	}

	var claims struct {
		Sub           string `json:"sub"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
		GivenName     string `json:"given_name"`
		FamilyName    string `json:"family_name"`
		Picture       string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		log.Printf("[auth] one tap claims decode failed: %v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid ID token"))
		return
	}

	googleUser := models.GoogleUserInfo{
		Sub:           claims.Sub,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
		Name:          claims.Name,
		GivenName:     claims.GivenName,
		FamilyName:    claims.FamilyName,
		Picture:       claims.Picture,
	}

	user, err := createOrUpdateGoogleUser(&googleUser, claims.Sub, claims.EmailVerified)
	if err != nil {
		log.Printf("[auth] one tap DB error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	if err := utils.LogLoginEvent(c, user.ID); err != nil {
		log.Printf("[auth] failed to log login event: %v", err)
	}

	jwtToken, err := utils.GenerateJWT(user.ID, user.Email, user.Name())
	if err != nil {
		log.Printf("[auth] JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}
	setAuthCookie(c, jwtToken)

	log.Printf("✅ One Tap login successful: %s", user.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", user.ToResponse()))
}
