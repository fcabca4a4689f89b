package models

import "time"

// OrderLineItem is one product line on an order. Weight stays null until
// the item goes over the scale; re-weighing is allowed until the order is
// delivered.
type OrderLineItem struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	OrderID          uint      `gorm:"index;not null" json:"order_id"`
	ProductID        uint      `gorm:"index;not null" json:"product_id"`
	ProductName      string    `gorm:"not null" json:"product_name"`
	Quantity         int       `gorm:"not null" json:"quantity"`
	SpecialUnitPrice *Money    `gorm:"type:decimal(20,2)" json:"special_unit_price,omitempty"`
	WeightKg         *Weight   `gorm:"type:decimal(20,2)" json:"weight_kg,omitempty"`
	LineNo           int       `gorm:"not null" json:"line_no"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (OrderLineItem) TableName() string {
	return "order_line_items"
}
