package models

import "time"

// Order is one customer order moving through the weighing and delivery
// pipeline. ApprovalStatus and FulfillmentStatus are independent: an order
// can be weighed while still awaiting approval.
type Order struct {
	ID                uint       `gorm:"primarykey" json:"id"`
	CustomerID        uint       `gorm:"index;not null" json:"customer_id"`
	CustomerName      string     `gorm:"index;not null" json:"customer_name"`
	RequestedDate     *time.Time `gorm:"index" json:"requested_date,omitempty"`
	DeliveryMode      string     `gorm:"type:varchar(20);not null" json:"delivery_mode"`
	Invoice           bool       `gorm:"not null;default:false" json:"invoice"`
	PriceTier         string     `gorm:"type:varchar(20);not null" json:"price_tier"`
	Brand             string     `gorm:"type:varchar(60)" json:"brand,omitempty"`
	Notes             string     `gorm:"type:varchar(500)" json:"notes,omitempty"`
	ApprovalStatus    string     `gorm:"type:varchar(20);index;not null" json:"approval_status"`
	FulfillmentStatus string     `gorm:"type:varchar(30);index;not null" json:"fulfillment_status"`
	CreatedBy         string     `gorm:"type:varchar(100)" json:"created_by,omitempty"`
	CreatedAt         time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	Items []OrderLineItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
