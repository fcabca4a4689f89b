package worker

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/sara-ops/sara-api/internal/logger"
	"github.com/sara-ops/sara-api/internal/models"
	"github.com/sara-ops/sara-api/internal/provider"
	"github.com/sara-ops/sara-api/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles queued tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register binds task handlers onto the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskAuditEvent, c.handleAuditEvent)
}

func (c *Consumer) handleAuditEvent(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_audit_event_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.AuditEventPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_audit_event_unmarshal_failed", "error", err)
		return err
	}
	message := strings.TrimSpace(payload.Message)
	if message == "" {
		logger.Debugw("worker_audit_event_skip_empty_message")
		return nil
	}
	createdAt := payload.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	entry := &models.EventLog{
		Username:  payload.Username,
		Station:   payload.Station,
		Message:   message,
		CreatedAt: createdAt,
	}
	if err := c.EventLogRepo.Create(entry); err != nil {
		logger.Warnw("worker_audit_event_write_failed", "error", err, "message", message)
		return err
	}
	return nil
}
