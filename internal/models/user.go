package models

import "time"

// User is a staff account. Role gates which panels and lifecycle
// operations the account may use.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	DisplayName  string    `gorm:"type:varchar(100)" json:"display_name,omitempty"`
	PasswordHash string    `gorm:"type:varchar(200);not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);index;not null" json:"role"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	TokenVersion uint64    `gorm:"not null;default:0" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
