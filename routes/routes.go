package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storely/storefront-api/models"
	"github.com/storely/storefront-api/session"
)

// SetupRoutes is the single entry-point that wires up the storefront, order,
// and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store session.Store) {
	catalog := models.NewCatalogRepository(db)
	orders := models.NewOrderRepository(db)

	SetupStoreRoutes(r, catalog, orders, store)

	SetupOrderRoutes(r)

	SetupAdminRoutes(r, catalog, orders)
}
