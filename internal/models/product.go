package models

import "time"

// Product is a catalog entry (cut/variant) orders reference by name.
type Product struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Unit      string    `gorm:"type:varchar(20);not null;default:'kg'" json:"unit"`
	Active    bool      `gorm:"index;not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
