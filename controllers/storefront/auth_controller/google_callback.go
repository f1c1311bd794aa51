package auth_controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
	"github.com/Desertfoxking25/szakdoga-viragweb/utils"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Verifies the state token, exchanges the authorization code, creates/updates the user, issues the session cookie and redirects back to the frontend.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Redirect to frontend after successful login"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("❌ State mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		log.Printf("❌ No code")
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("❌ Exchange failed: %v", err)
		redirectToFrontendWithError(c, "Failed to exchange token")
		return
	}

	client := config.GoogleOAuthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		log.Printf("❌ Failed to get user info: %v", err)
		redirectToFrontendWithError(c, "Failed to get user info")
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("❌ Failed to read response: %v", err)
		redirectToFrontendWithError(c, "Failed to read user info")
		return
	}

	var googleUser models.GoogleUserInfo
	if err := json.Unmarshal(body, &googleUser); err != nil {
		log.Printf("❌ Decode failed: %v", err)
		redirectToFrontendWithError(c, "Failed to decode user info")
		return
	}

	googleID := googleUser.Sub
	if googleID == "" {
		googleID = googleUser.ID
	}
	if googleID == "" {
		log.Printf("❌ No Google ID")
		redirectToFrontendWithError(c, "Google ID not found")
		return
	}

	emailVerified := googleUser.EmailVerified || googleUser.VerifiedEmail
	log.Printf("✅ Got user: %s (Google ID: %s, Verified: %v)", googleUser.Email, googleID, emailVerified)

	user, err := createOrUpdateGoogleUser(&googleUser, googleID, emailVerified)
	if err != nil {
		log.Printf("❌ DB error: %v", err)
		redirectToFrontendWithError(c, fmt.Sprintf("Database error: %v", err))
		return
	}

	// Log login event
	if err := utils.LogLoginEvent(c, user.ID); err != nil {
		log.Printf("⚠️  Failed to log login event: %v", err)
	}

	// Generate JWT token
	jwtToken, err := utils.GenerateJWT(user.ID, user.Email, user.Name())
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		redirectToFrontendWithError(c, "Failed to generate token")
		return
	}

	setAuthCookie(c, jwtToken)

	// Set temporary cookie with user data (for popup to read)
	isProd := os.Getenv("ENV") == "production"
	userJSON, _ := json.Marshal(user.ToResponse())
	c.SetCookie(
		"user_data",
		string(userJSON),
		60, // 1 minute (just for transfer)
		"/",
		"",
		isProd,
		false, // NOT httpOnly (popup needs to read it)
	)

	log.Printf("✅ Login successful: %s (verified: %v)", user.Email, emailVerified)

	// Redirect to frontend callback (NO token in URL)
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth-popup", frontendURL)

	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
