package service

import (
	"errors"
	"testing"

	"github.com/sara-ops/sara-api/internal/models"
	"github.com/sara-ops/sara-api/internal/queue"
	"github.com/sara-ops/sara-api/internal/repository"
)

type failingEventLogRepo struct{}

func (failingEventLogRepo) Create(event *models.EventLog) error {
	return errors.New("disk full")
}

func (failingEventLogRepo) List(filter repository.EventLogListFilter) ([]models.EventLog, int64, error) {
	return nil, 0, errors.New("disk full")
}

func TestAuditRecordInlineWhenQueueDisabled(t *testing.T) {
	db := newServiceTestDB(t, "audit_service_test")
	svc := newTestAuditService(db)

	svc.Record(operatorSession(), "order #%d weighed", 7)

	var events []models.EventLog
	if err := db.Find(&events).Error; err != nil {
		t.Fatalf("load events failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events want 1 got %d", len(events))
	}
	if events[0].Message != "order #7 weighed" {
		t.Fatalf("unexpected message: %q", events[0].Message)
	}
	if events[0].Username != "scale-op" || events[0].Station != "scale-1" {
		t.Fatalf("unexpected attribution: %+v", events[0])
	}
	if events[0].CreatedAt.IsZero() {
		t.Fatalf("created_at should be set")
	}
}

func TestAuditRecordSwallowsWriteFailure(t *testing.T) {
	client, _ := queue.NewClient(nil)
	svc := NewAuditService(failingEventLogRepo{}, client)

	// Must not panic or surface the storage error to the caller.
	svc.Record(adminSession(), "customer %q approved", "Acme")
}

func TestAuditListEvents(t *testing.T) {
	db := newServiceTestDB(t, "audit_list_test")
	svc := newTestAuditService(db)

	svc.Record(adminSession(), "first")
	svc.Record(operatorSession(), "second")

	events, total, err := svc.ListEvents(repository.EventLogListFilter{})
	if err != nil {
		t.Fatalf("list events failed: %v", err)
	}
	if total != 2 || len(events) != 2 {
		t.Fatalf("events want 2 got %d (total %d)", len(events), total)
	}
	// Newest first.
	if events[0].Message != "second" {
		t.Fatalf("newest-first ordering broken: %+v", events)
	}

	filtered, _, err := svc.ListEvents(repository.EventLogListFilter{Station: "scale-1"})
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Message != "second" {
		t.Fatalf("station filter broken: %+v", filtered)
	}
}
