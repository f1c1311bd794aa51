package tip_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// DeleteTip godoc
// @Summary Delete a gardening tip
// @Tags Admin - Tips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tip ID"
// @Success 200 {object} models.ApiResponse "Tip deleted successfully"
// @Failure 400 {object} models.ApiResponse "Invalid tip ID"
// @Failure 404 {object} models.ApiResponse "Tip not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/tips/{id} [delete]
func DeleteTip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid tip ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.Gorm.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Tip{})
	if result.Error != nil {
		log.Printf("[admin.tip] failed to delete tip %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete tip"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Tip not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Tip deleted successfully", nil))
}
