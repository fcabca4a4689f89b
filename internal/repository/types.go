package repository

import "time"

// CustomerListFilter filters customer listings.
type CustomerListFilter struct {
	Page           int
	PageSize       int
	Search         string
	Category       string
	ApprovalStatus string
	OnlyActive     bool
}

// OrderListFilter filters order listings.
type OrderListFilter struct {
	Page              int
	PageSize          int
	CustomerID        uint
	ApprovalStatus    string
	FulfillmentStatus string
	DeliveryMode      string
	CreatedFrom       *time.Time
	CreatedTo         *time.Time
}

// ProductListFilter filters catalog listings.
type ProductListFilter struct {
	Page       int
	PageSize   int
	Search     string
	OnlyActive bool
}

// EventLogListFilter filters audit trail listings.
type EventLogListFilter struct {
	Page        int
	PageSize    int
	Username    string
	Station     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// UserListFilter filters staff account listings.
type UserListFilter struct {
	Page     int
	PageSize int
	Role     string
	Keyword  string
}
