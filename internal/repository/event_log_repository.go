package repository

import (
	"github.com/sara-ops/sara-api/internal/models"

	"gorm.io/gorm"
)

// EventLogRepository is the audit trail data access interface.
type EventLogRepository interface {
	Create(event *models.EventLog) error
	List(filter EventLogListFilter) ([]models.EventLog, int64, error)
}

// GormEventLogRepository is the GORM implementation.
type GormEventLogRepository struct {
	db *gorm.DB
}

// NewEventLogRepository creates an audit trail repository.
func NewEventLogRepository(db *gorm.DB) *GormEventLogRepository {
	return &GormEventLogRepository{db: db}
}

// Create appends one audit event.
func (r *GormEventLogRepository) Create(event *models.EventLog) error {
	if event == nil {
		return nil
	}
	return r.db.Create(event).Error
}

// List returns audit events matching the filter, newest first.
func (r *GormEventLogRepository) List(filter EventLogListFilter) ([]models.EventLog, int64, error) {
	query := r.db.Model(&models.EventLog{})
	if filter.Username != "" {
		query = query.Where("username = ?", filter.Username)
	}
	if filter.Station != "" {
		query = query.Where("station = ?", filter.Station)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	events := make([]models.EventLog, 0)
	if err := query.Order("id DESC").Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}
