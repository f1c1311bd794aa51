package auth_controller

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse "Logout successful"
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	isProd := os.Getenv("ENV") == "production"
	c.SetCookie("auth_token", "", -1, "/", "", isProd, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
