package models

import "time"

// EventLog is one append-only audit trail entry. Writes are best-effort:
// a failed insert never blocks the operation that produced it.
type EventLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"type:varchar(100);index" json:"username,omitempty"`
	Station   string    `gorm:"type:varchar(60);index" json:"station,omitempty"`
	Message   string    `gorm:"type:varchar(500);not null" json:"message"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (EventLog) TableName() string {
	return "event_logs"
}
