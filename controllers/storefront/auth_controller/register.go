package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
	"github.com/Desertfoxking25/szakdoga-viragweb/utils"
)

// Register godoc
// @Summary Register with email and password
// @Description Creates a new account, issues the session cookie and returns the user.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.ApiResponse "Registration successful"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Reject duplicate emails up front for a clean 409
	var existing models.User
	err := config.Gorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email already registered"))
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("[auth] register lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Registration failed"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[auth] password hashing failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Registration failed"))
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Provider:     "password",
	}
	if err := config.Gorm.WithContext(ctx).Create(&user).Error; err != nil {
		log.Printf("[auth] failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Registration failed"))
		return
	}

	jwtToken, err := utils.GenerateJWT(user.ID, user.Email, user.Name())
	if err != nil {
		log.Printf("[auth] JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Registration failed"))
		return
	}
	setAuthCookie(c, jwtToken)

	log.Printf("[auth] user registered: %s", user.Email)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Registration successful", user.ToResponse()))
}
