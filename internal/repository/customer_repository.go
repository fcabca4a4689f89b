package repository

import (
	"errors"
	"strings"

	"github.com/sara-ops/sara-api/internal/constants"
	"github.com/sara-ops/sara-api/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicateCustomerName reports a unique-index violation on the
// customer name. The storage layer owns name uniqueness; callers map this
// to their own refusal error.
var ErrDuplicateCustomerName = errors.New("customer name already exists")

// CustomerRepository is the customer data access interface.
type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetByName(name string) (*models.Customer, error)
	List(filter CustomerListFilter) ([]models.Customer, int64, error)
	ListPendingApproval() ([]models.Customer, error)
	ApprovalByIDs(ids []uint) (map[uint]string, error)
	UpdateApproval(id uint, status string) error
	WithTx(tx *gorm.DB) *GormCustomerRepository
}

// GormCustomerRepository is the GORM implementation.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a customer repository.
func NewCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCustomerRepository) WithTx(tx *gorm.DB) *GormCustomerRepository {
	if tx == nil {
		return r
	}
	return &GormCustomerRepository{db: tx}
}

// NameKey normalizes a customer name into its case-insensitive match key.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Create inserts a customer, translating unique-index violations.
func (r *GormCustomerRepository) Create(customer *models.Customer) error {
	if customer == nil {
		return nil
	}
	customer.NameKey = NameKey(customer.Name)
	if err := r.db.Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCustomerName
		}
		return err
	}
	return nil
}

// GetByID fetches a customer by ID; nil when missing.
func (r *GormCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// GetByName fetches a customer by its case-insensitive name key.
func (r *GormCustomerRepository) GetByName(name string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("name_key = ?", NameKey(name)).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// List returns customers matching the filter.
func (r *GormCustomerRepository) List(filter CustomerListFilter) ([]models.Customer, int64, error) {
	query := r.db.Model(&models.Customer{})
	if filter.Search != "" {
		query = query.Where("name_key LIKE ?", "%"+NameKey(filter.Search)+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.ApprovalStatus != "" {
		query = query.Where("approval_status = ?", filter.ApprovalStatus)
	}
	if filter.OnlyActive {
		query = query.Where("active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var customers []models.Customer
	if err := query.Order("name asc").Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

// ListPendingApproval returns pending customers ordered by name.
func (r *GormCustomerRepository) ListPendingApproval() ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	if err := r.db.Where("approval_status = ?", constants.ApprovalStatusPending).
		Order("name asc").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// ApprovalByIDs returns the current approval status for each requested
// customer id. Unknown ids are simply absent from the result.
func (r *GormCustomerRepository) ApprovalByIDs(ids []uint) (map[uint]string, error) {
	statuses := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return statuses, nil
	}
	var customers []models.Customer
	if err := r.db.Select("id", "approval_status").
		Where("id IN ?", ids).
		Find(&customers).Error; err != nil {
		return nil, err
	}
	for _, customer := range customers {
		statuses[customer.ID] = customer.ApprovalStatus
	}
	return statuses, nil
}

// UpdateApproval sets the customer approval status.
func (r *GormCustomerRepository) UpdateApproval(id uint, status string) error {
	return r.db.Model(&models.Customer{}).Where("id = ?", id).Update("approval_status", status).Error
}
