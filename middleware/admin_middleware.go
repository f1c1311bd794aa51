package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// AdminMiddleware runs after AuthMiddleware and requires the user's
// profile admin flag. The flag is advisory, written only by the admin
// back-office, and a failed lookup denies instead of retrying.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no user in context"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		var user models.User
		if err := config.Gorm.WithContext(ctx).
			Select("admin").
			Where("id = ?", userID).
			First(&user).Error; err != nil {
			log.Printf("[auth] failed to fetch admin flag for %s: %v", userID, err)
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - admin access required"))
			c.Abort()
			return
		}

		if !user.Admin {
			log.Printf("[auth] non-admin %s attempted admin action", userID)
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - admin access required"))
			c.Abort()
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
