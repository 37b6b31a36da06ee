package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/storely/storefront-api/controllers/cart"
	catalogControllers "github.com/storely/storefront-api/controllers/catalog"
	checkoutControllers "github.com/storely/storefront-api/controllers/checkout"
	invoiceControllers "github.com/storely/storefront-api/controllers/invoice"
	"github.com/storely/storefront-api/middleware"
	"github.com/storely/storefront-api/models"
	"github.com/storely/storefront-api/session"
)

// SetupStoreRoutes wires the public storefront surface: browsing, the
// session cart, checkout, and invoice download.
func SetupStoreRoutes(r *gin.Engine, catalog *models.CatalogRepository, orders *models.OrderRepository, store session.Store) {
	// Browsing needs no session.
	r.GET("/", catalogControllers.Home(catalog))
	r.GET("/category/:slug/", catalogControllers.CategoryView(catalog))
	r.GET("/products/:id", catalogControllers.GetProductByID(catalog))

	// Cart and checkout are session-scoped.
	s := r.Group("/", middleware.EnsureSession)
	{
		s.GET("/cart/", cartControllers.GetCart(store, catalog))
		s.POST("/add-to-cart/:productID/", cartControllers.AddToCart(store))
		s.POST("/remove-from-cart/:productID/", cartControllers.RemoveFromCart(store))

		s.GET("/checkout/", checkoutControllers.Review(store, catalog))
		s.POST("/checkout/", checkoutControllers.PlaceOrder(store, orders))
	}

	r.GET("/invoice/:orderID/", invoiceControllers.Download(orders))
}
