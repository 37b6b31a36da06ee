package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/storely/storefront-api/controllers/admin"
	orderControllers "github.com/storely/storefront-api/controllers/order"
	"github.com/storely/storefront-api/middleware"
	"github.com/storely/storefront-api/models"
)

// SetupAdminRoutes wires catalog administration and order reporting behind
// the API key middleware.
func SetupAdminRoutes(r *gin.Engine, catalog *models.CatalogRepository, orders *models.OrderRepository) {
	admin := r.Group("/admin", middleware.ValidateAPIKey)
	{
		admin.POST("/categories", adminControllers.CreateCategory(catalog))
		admin.DELETE("/categories/:id", adminControllers.DeleteCategory(catalog))

		admin.POST("/products", adminControllers.CreateProduct(catalog))
		admin.DELETE("/products/:id", adminControllers.DeleteProduct(catalog))

		admin.GET("/orders", orderControllers.GetAllOrders(orders))
		admin.GET("/orders/export", orderControllers.ExportOrdersToExcel(orders))
		admin.GET("/orders/:orderID", orderControllers.GetOrderByID(orders))
	}
}
