package order_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// DownloadInvoice godoc
// @Summary Download an order invoice PDF
// @Description Generates the invoice in memory and streams it as a PDF download.
// @Tags Admin - Orders
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {file} file "Invoice PDF"
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/orders/{id}/invoice [get]
func DownloadInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, customer, err := fetchOrderWithCustomer(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order] failed to fetch order %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	pdfBuffer := generateOrderInvoicePDF(order, customer.Name, customer.Email)
	if pdfBuffer.Len() == 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, order.ID))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
