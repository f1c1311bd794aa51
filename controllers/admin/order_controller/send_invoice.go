package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
	"github.com/Desertfoxking25/szakdoga-viragweb/services"
)

// SendInvoice godoc
// @Summary Email an order invoice to the customer
// @Description Generates the invoice PDF and sends it to the customer's email asynchronously.
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse "Invoice email sent to customer"
// @Failure 400 {object} models.ApiResponse "Invalid order ID or missing customer email"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/orders/{id}/send-invoice [post]
func SendInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}
	log.Printf("[admin.order] send-invoice request for order: %s", id)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, customer, err := fetchOrderWithCustomer(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order] failed to fetch order %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send invoice"))
		return
	}

	if customer.Email == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Customer email not found"))
		return
	}

	// Generate PDF in memory
	pdfBuffer := generateOrderInvoicePDF(order, customer.Name, customer.Email)

	// Convert order items to service format
	serviceItems := make([]services.OrderInvoiceItem, len(order.Items))
	for i, item := range order.Items {
		serviceItems[i] = services.OrderInvoiceItem{
			ProductName: item.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Price * item.Quantity,
		}
	}

	// Send invoice email asynchronously
	go func() {
		resendClient := services.NewResendClient()

		emailData := services.OrderInvoiceEmailData{
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
			OrderID:       order.ID.String(),
			OrderDate:     order.CreatedAt.Format("2006.01.02"),
			Items:         serviceItems,
			TotalPrice:    order.TotalPrice,
			PDFContent:    pdfBuffer.Bytes(),
		}

		if err := resendClient.SendOrderInvoiceEmail(emailData); err != nil {
			log.Printf("[admin.order] failed to send invoice email for order %s: %v", order.ID, err)
		}
	}()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Invoice email sent to customer", gin.H{
		"order_id":       order.ID,
		"customer_email": customer.Email,
	}))
}
