package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when an order id is unknown.
var ErrOrderNotFound = errors.New("order not found")

// ErrEmptyCart is returned when checkout is attempted with no cart entries.
var ErrEmptyCart = errors.New("cart is empty")

// CustomerInfo carries the checkout form fields, validated by the caller.
type CustomerInfo struct {
	FullName string
	Email    string
	Phone    string
	Address  string
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// PlaceOrder turns a cart into a persisted order. Everything happens in one
// transaction: each product is re-fetched inside it, the line items snapshot
// the current name and price, and the order is created together with its
// items and final total. A product that vanished since the cart was built
// aborts the whole checkout; a failed checkout leaves no rows behind.
func (r *OrderRepository) PlaceOrder(customer CustomerInfo, cart Cart) (*Order, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	var order Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		lines, total, err := cart.Snapshot(NewCatalogRepository(tx))
		if err != nil {
			return err
		}

		items := make([]OrderItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, OrderItem{
				ProductID:   line.Product.ID,
				ProductName: line.Product.Name,
				UnitPrice:   line.Product.Price,
				Quantity:    line.Quantity,
			})
		}

		order = Order{
			FullName:    customer.FullName,
			Email:       customer.Email,
			Phone:       customer.Phone,
			Address:     customer.Address,
			TotalAmount: total,
			Items:       items,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderByID fetches an order with its line items.
func (r *OrderRepository) GetOrderByID(id uint) (*Order, error) {
	var order Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetAllOrders lists orders newest first with items preloaded.
func (r *OrderRepository) GetAllOrders() ([]Order, error) {
	var orders []Order
	if err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ItemsTotal sums the subtotals of the order's items.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
