package invoiceControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storely/storefront-api/models"
)

// OrderProvider fetches orders with their line items.
type OrderProvider interface {
	GetOrderByID(id uint) (*models.Order, error)
}

// GET /invoice/:orderID/
//
// Streams the invoice PDF as an attachment. A render failure is a server
// error; nothing is written to the response before the PDF is fully built,
// so the client never receives a truncated document.
func Download(repo OrderProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("orderID"), 10, 32)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		order, err := repo.GetOrderByID(uint(id))
		if err != nil {
			if errors.Is(err, models.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}

		pdf, err := BuildInvoicePDF(*order)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating PDF"})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice_%d.pdf"`, order.ID))
		c.Data(http.StatusOK, "application/pdf", pdf)
	}
}
