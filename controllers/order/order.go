package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storely/storefront-api/models"
)

// OrderProvider is the read surface of the order repository used by the
// admin handlers.
type OrderProvider interface {
	GetAllOrders() ([]models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
}

// GET /admin/orders
func GetAllOrders(repo OrderProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := repo.GetAllOrders()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders/:orderID
func GetOrderByID(repo OrderProvider) gin.HandlerFunc {
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
		c.JSON(http.StatusOK, order)
	}
}
