package service

import (
	"fmt"
	"time"

	"github.com/sara-ops/sara-api/internal/logger"
	"github.com/sara-ops/sara-api/internal/models"
	"github.com/sara-ops/sara-api/internal/queue"
	"github.com/sara-ops/sara-api/internal/repository"
)

// AuditService appends entries to the audit trail. Recording is
// best-effort: entries go through the queue when it is enabled, fall back
// to a direct insert otherwise, and failures are logged and swallowed so
// the triggering operation never fails because of its audit entry.
type AuditService struct {
	eventLogRepo repository.EventLogRepository
	queueClient  *queue.Client
}

// NewAuditService creates the audit service.
func NewAuditService(eventLogRepo repository.EventLogRepository, queueClient *queue.Client) *AuditService {
	return &AuditService{
		eventLogRepo: eventLogRepo,
		queueClient:  queueClient,
	}
}

// Record appends one audit entry attributed to the session.
func (s *AuditService) Record(session SessionContext, format string, args ...any) {
	if s == nil {
		return
	}
	message := fmt.Sprintf(format, args...)
	now := time.Now()
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueAuditEvent(queue.AuditEventPayload{
			Username:  session.ActorName,
			Station:   session.Station,
			Message:   message,
			CreatedAt: now,
		})
		if err == nil {
			return
		}
		logger.Warnw("audit enqueue failed, writing inline", "error", err)
	}
	entry := &models.EventLog{
		Username:  session.ActorName,
		Station:   session.Station,
		Message:   message,
		CreatedAt: now,
	}
	if err := s.eventLogRepo.Create(entry); err != nil {
		logger.Warnw("audit write failed", "error", err, "message", message)
	}
}

// ListEvents returns audit entries, newest first.
func (s *AuditService) ListEvents(filter repository.EventLogListFilter) ([]models.EventLog, int64, error) {
	return s.eventLogRepo.List(filter)
}
