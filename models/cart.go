package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Cart maps a product id to the desired quantity. It is a plain value held in
// per-session storage, never written to the database.
type Cart map[uint]int

// NewCart returns an empty cart.
func NewCart() Cart {
	return make(Cart)
}

// Add increments the quantity for productID by one, creating the entry when
// the product is not in the cart yet. It never consults the catalog; a stale
// id surfaces later when the cart is resolved.
func (c Cart) Add(productID uint) {
	c[productID]++
}

// Remove drops the product from the cart entirely. Removing a product that is
// not in the cart is a no-op.
func (c Cart) Remove(productID uint) {
	delete(c, productID)
}

// Quantity returns the quantity for productID, zero when absent.
func (c Cart) Quantity(productID uint) int {
	return c[productID]
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// CartLine is one resolved cart entry with its subtotal.
type CartLine struct {
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// ProductLookup resolves a product id against the catalog.
type ProductLookup interface {
	GetProductByID(id uint) (*Product, error)
}

// Snapshot resolves every cart entry against the catalog and computes the
// per-line subtotals and the running total. A product that no longer exists
// fails the whole snapshot; the lookup error is returned as-is so callers can
// distinguish a vanished product from a storage failure.
func (c Cart) Snapshot(lookup ProductLookup) ([]CartLine, decimal.Decimal, error) {
	ids := make([]uint, 0, len(c))
	for productID := range c {
		ids = append(ids, productID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	lines := make([]CartLine, 0, len(c))
	total := decimal.Zero
	for _, productID := range ids {
		quantity := c[productID]
		product, err := lookup.GetProductByID(productID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
		lines = append(lines, CartLine{
			Product:  *product,
			Quantity: quantity,
			Subtotal: subtotal,
		})
		total = total.Add(subtotal)
	}
	return lines, total, nil
}
