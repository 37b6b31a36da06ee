package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/storely/storefront-api/controllers/order"
)

// SetupOrderRoutes wires the real-time order feed.
func SetupOrderRoutes(r *gin.Engine) {
	// websocket endpoint for real-time order updates
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
}
