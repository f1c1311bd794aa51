package faq_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// DeleteFaq godoc
// @Summary Delete an FAQ entry
// @Tags Admin - FAQ
// @Produce json
// @Security BearerAuth
// @Param id path string true "FAQ ID"
// @Success 200 {object} models.ApiResponse "FAQ entry deleted successfully"
// @Failure 400 {object} models.ApiResponse "Invalid FAQ ID"
// @Failure 404 {object} models.ApiResponse "FAQ entry not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/faqs/{id} [delete]
func DeleteFaq(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid FAQ ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.Gorm.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Faq{})
	if result.Error != nil {
		log.Printf("[admin.faq] failed to delete faq %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete FAQ entry"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "FAQ entry not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "FAQ entry deleted successfully", nil))
}
