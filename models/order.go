package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the persisted result of a checkout. TotalAmount is computed from
// the line items and written together with them in one transaction; there is
// no observable state where the order exists with a pending total.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	FullName    string          `gorm:"not null" json:"full_name"`
	Email       string          `gorm:"not null" json:"email"`
	Phone       string          `gorm:"not null" json:"phone"`
	Address     string          `gorm:"not null" json:"address"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
}

// OrderItem snapshots the product name and unit price at checkout time, so
// invoices stay correct even if the product is later edited or deleted.
// ProductID is kept for reference only and carries no foreign key constraint.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"index" json:"order_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `gorm:"not null" json:"product_name"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Quantity    int             `gorm:"not null;default:1" json:"quantity"`
}

// Subtotal is UnitPrice multiplied by Quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
