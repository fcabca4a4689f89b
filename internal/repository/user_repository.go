package repository

import (
	"errors"
	"strings"

	"github.com/sara-ops/sara-api/internal/models"

	"gorm.io/gorm"
)

// UserRepository is the staff account data access interface.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	List(filter UserListFilter) ([]models.User, int64, error)
	Update(user *models.User) error
	SetActive(id uint, active bool) error
}

// GormUserRepository is the GORM implementation.
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a staff account repository.
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a user.
func (r *GormUserRepository) Create(user *models.User) error {
	if user == nil {
		return nil
	}
	return r.db.Create(user).Error
}

// GetByID fetches a user by ID; nil when missing.
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByUsername fetches a user by username; nil when missing.
func (r *GormUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// List returns users matching the filter.
func (r *GormUserRepository) List(filter UserListFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Keyword != "" {
		keyword := "%" + strings.TrimSpace(filter.Keyword) + "%"
		query = query.Where("username LIKE ? OR display_name LIKE ?", keyword, keyword)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var users []models.User
	if err := query.Order("username asc").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update saves the full user record.
func (r *GormUserRepository) Update(user *models.User) error {
	if user == nil {
		return nil
	}
	return r.db.Save(user).Error
}

// SetActive toggles a staff account.
func (r *GormUserRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("active", active).Error
}
