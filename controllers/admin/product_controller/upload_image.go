package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/models"
	"github.com/Desertfoxking25/szakdoga-viragweb/services"
)

const maxImageSize = 10 << 20 // 10 MB

// UploadImage godoc
// @Summary Upload a product image
// @Description Uploads the image to Cloudinary and returns the secure URL to store on the product.
// @Tags Admin - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Product image (max 10 MB)"
// @Success 200 {object} models.ApiResponse "Image uploaded successfully"
// @Failure 400 {object} models.ApiResponse "Invalid file"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/products/image [post]
func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file too large (max 10 MB)"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read image file"))
		return
	}
	defer file.Close()

	url, err := services.Cloudinary.UploadImage(c.Request.Context(), file, "", "products")
	if err != nil {
		log.Printf("[admin.product] image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image uploaded successfully", gin.H{
		"imgUrl": url,
	}))
}
