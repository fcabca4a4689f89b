package queue

import (
	"encoding/json"
	"time"

	"github.com/sara-ops/sara-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskAuditEvent appends one audit trail entry.
	TaskAuditEvent = constants.TaskAuditEvent
)

// AuditEventPayload carries one audit trail entry.
type AuditEventPayload struct {
	Username  string    `json:"username,omitempty"`
	Station   string    `json:"station,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAuditEventTask builds the audit event task.
func NewAuditEventTask(payload AuditEventPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAuditEvent, body), nil
}
