package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storely/storefront-api/middleware"
	"github.com/storely/storefront-api/models"
	"github.com/storely/storefront-api/session"
)

// GET /cart/
func GetCart(store session.Store, lookup models.ProductLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not established"})
			return
		}

		cart, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		lines, total, err := cart.Snapshot(lookup)
		if err != nil {
			if errors.Is(err, models.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "A product in the cart no longer exists"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": lines,
			"total": total,
		})
	}
}

// POST /add-to-cart/:productID/
//
// Increments the quantity by one. There is deliberately no catalog check
// here; a stale product id surfaces as not-found when the cart is viewed.
func AddToCart(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not established"})
			return
		}

		productID, err := parseProductID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		cart, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		cart.Add(productID)
		if err := store.Save(c.Request.Context(), sessionID, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		c.Redirect(http.StatusSeeOther, "/cart/")
	}
}

// POST /remove-from-cart/:productID/
//
// Removes the entry entirely; removing a product that is not in the cart is
// a no-op.
func RemoveFromCart(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not established"})
			return
		}

		productID, err := parseProductID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		cart, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		cart.Remove(productID)
		if err := store.Save(c.Request.Context(), sessionID, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		c.Redirect(http.StatusSeeOther, "/cart/")
	}
}

func parseProductID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("productID"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
