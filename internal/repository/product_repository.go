package repository

import (
	"errors"
	"strings"

	"github.com/sara-ops/sara-api/internal/models"

	"gorm.io/gorm"
)

// ProductRepository is the catalog data access interface.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetByName(name string) (*models.Product, error)
	List(filter ProductListFilter) ([]models.Product, int64, error)
	SetActive(id uint, active bool) error
}

// GormProductRepository is the GORM implementation.
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a catalog repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create inserts a product.
func (r *GormProductRepository) Create(product *models.Product) error {
	if product == nil {
		return nil
	}
	return r.db.Create(product).Error
}

// GetByID fetches a product by ID; nil when missing.
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetByName fetches a product by exact name; nil when missing.
func (r *GormProductRepository) GetByName(name string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("name = ?", strings.TrimSpace(name)).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// List returns products matching the filter, name ascending.
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+strings.TrimSpace(filter.Search)+"%")
	}
	if filter.OnlyActive {
		query = query.Where("active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var products []models.Product
	if err := query.Order("name asc").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// SetActive toggles a product's active flag.
func (r *GormProductRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).Update("active", active).Error
}
