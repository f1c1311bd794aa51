package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
	"github.com/Desertfoxking25/szakdoga-viragweb/utils"
)

// Login godoc
// @Summary Log in with email and password
// @Description Verifies credentials, issues the session cookie and returns the user.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse "Login successful"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Invalid email or password"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.Gorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&user).Error; err != nil {
		// Same message for unknown email and bad password
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if user.PasswordHash == "" {
		// Google-only account without a password
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
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

	log.Printf("[auth] user logged in: %s", user.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", user.ToResponse()))
}
