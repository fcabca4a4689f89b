package repository

import (
	"errors"

	"github.com/sara-ops/sara-api/internal/constants"
	"github.com/sara-ops/sara-api/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order data access interface.
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderLineItem) error
	GetByID(id uint) (*models.Order, error)
	List(filter OrderListFilter) ([]models.Order, int64, error)
	ListPendingApproval() ([]models.Order, error)
	ListBoard(filter OrderListFilter) ([]models.Order, error)
	UpdateApproval(id uint, status string) error
	UpdateFulfillment(id uint, status string) error
	UpdateItemWeight(itemID uint, weight *models.Weight) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create inserts the order and its line items in one transaction.
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderLineItem) error {
	if order == nil {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			items[i].LineNo = i + 1
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
}

func (r *GormOrderRepository) withItems(query *gorm.DB) *gorm.DB {
	return query.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("line_no asc")
	})
}

// GetByID fetches an order with its items; nil when missing.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.withItems(r.db).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// List returns orders matching the filter, newest first.
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.ApprovalStatus != "" {
		query = query.Where("approval_status = ?", filter.ApprovalStatus)
	}
	if filter.FulfillmentStatus != "" {
		query = query.Where("fulfillment_status = ?", filter.FulfillmentStatus)
	}
	if filter.DeliveryMode != "" {
		query = query.Where("delivery_mode = ?", filter.DeliveryMode)
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

	var orders []models.Order
	if err := r.withItems(query).Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListPendingApproval returns pending orders with items, oldest first.
func (r *GormOrderRepository) ListPendingApproval() ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := r.withItems(r.db).
		Where("approval_status = ?", constants.ApprovalStatusPending).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListBoard returns approved orders for the weighing/delivery board,
// oldest first. Date-window filtering happens in the service layer since
// the window rules are calendar arithmetic, not SQL.
func (r *GormOrderRepository) ListBoard(filter OrderListFilter) ([]models.Order, error) {
	query := r.withItems(r.db).Where("approval_status = ?", constants.ApprovalStatusApproved)
	if filter.FulfillmentStatus != "" {
		query = query.Where("fulfillment_status = ?", filter.FulfillmentStatus)
	}
	orders := make([]models.Order, 0)
	if err := query.Order("created_at asc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateApproval sets the order approval status.
func (r *GormOrderRepository) UpdateApproval(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("approval_status", status).Error
}

// UpdateFulfillment sets the order fulfillment status.
func (r *GormOrderRepository) UpdateFulfillment(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("fulfillment_status", status).Error
}

// UpdateItemWeight sets one line item weight.
func (r *GormOrderRepository) UpdateItemWeight(itemID uint, weight *models.Weight) error {
	return r.db.Model(&models.OrderLineItem{}).Where("id = ?", itemID).Update("weight_kg", weight).Error
}

// Delete removes an order and cascades to its line items.
func (r *GormOrderRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderLineItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}
