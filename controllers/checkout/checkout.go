package checkoutControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/storely/storefront-api/controllers/order"
	"github.com/storely/storefront-api/middleware"
	"github.com/storely/storefront-api/models"
	"github.com/storely/storefront-api/session"
)

// CheckoutRequest is the checkout form. Works for both form-encoded and JSON
// bodies; gin's binding runs the validation.
type CheckoutRequest struct {
	FullName string `form:"full_name" json:"full_name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Phone    string `form:"phone" json:"phone" binding:"required"`
	Address  string `form:"address" json:"address" binding:"required"`
}

// OrderPlacer persists a checkout atomically.
type OrderPlacer interface {
	PlaceOrder(customer models.CustomerInfo, cart models.Cart) (*models.Order, error)
}

// GET /checkout/
//
// Renders the cart for review, same payload as the cart view.
func Review(store session.Store, lookup models.ProductLookup) gin.HandlerFunc {
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

// POST /checkout/
//
// Validates the customer fields, places the order in a single transaction,
// clears the session cart, and redirects to the invoice. Validation failure
// or an aborted transaction persists nothing.
func PlaceOrder(store session.Store, placer OrderPlacer) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not established"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid checkout details",
				"fields": fieldErrors(err),
			})
			return
		}

		cart, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		placed, err := placer.PlaceOrder(models.CustomerInfo{
			FullName: req.FullName,
			Email:    req.Email,
			Phone:    req.Phone,
			Address:  req.Address,
		}, cart)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.Is(err, models.ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "A product in the cart no longer exists"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		// The order is committed; a failed cart clear must not fail the
		// checkout. The stale cart expires with the session.
		if err := store.Clear(c.Request.Context(), sessionID); err != nil {
			log.Printf("failed to clear cart for session %s: %v", sessionID, err)
		}

		orderControllers.BroadcastNewOrder(*placed)

		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/invoice/%d/", placed.ID))
	}
}

// fieldErrors flattens validator errors into a field → message map so the
// client can re-render the form with per-field messages.
func fieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_"] = err.Error()
		return fields
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[formName(fe.Field())] = "This field is required"
		case "email":
			fields[formName(fe.Field())] = "Must be a valid email address"
		default:
			fields[formName(fe.Field())] = "Invalid value"
		}
	}
	return fields
}

func formName(structField string) string {
	switch structField {
	case "FullName":
		return "full_name"
	case "Email":
		return "email"
	case "Phone":
		return "phone"
	case "Address":
		return "address"
	}
	return structField
}
