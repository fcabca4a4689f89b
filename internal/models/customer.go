package models

import "time"

// Customer is a buyer account. Customers created by non-admin staff start
// pending and must be approved before their orders can be approved.
type Customer struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Name           string    `gorm:"uniqueIndex;not null" json:"name"`
	NameKey        string    `gorm:"uniqueIndex;not null" json:"-"` // lowercased trimmed match key
	TaxIDType      string    `gorm:"type:varchar(20);not null;default:'cuit'" json:"tax_id_type"`
	TaxIDNumber    string    `gorm:"type:varchar(20);index;not null" json:"tax_id_number"`
	Address        string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	Phone          string    `gorm:"type:varchar(40)" json:"phone,omitempty"`
	Category       string    `gorm:"type:varchar(40);index;not null;default:'other'" json:"category"`
	Active         bool      `gorm:"not null;default:true" json:"active"`
	ApprovalStatus string    `gorm:"type:varchar(20);index;not null" json:"approval_status"`
	CreatedBy      string    `gorm:"type:varchar(100)" json:"created_by,omitempty"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (Customer) TableName() string {
	return "customers"
}
