package service

import (
	"strings"

	"github.com/sara-ops/sara-api/internal/models"
	"github.com/sara-ops/sara-api/internal/repository"
)

// CatalogService manages the product catalog.
type CatalogService struct {
	productRepo  repository.ProductRepository
	auditService *AuditService
}

// NewCatalogService creates the catalog service.
func NewCatalogService(productRepo repository.ProductRepository, auditService *AuditService) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		auditService: auditService,
	}
}

// CreateProductInput carries the fields for a new product.
type CreateProductInput struct {
	Name string
	Unit string
}

// CreateProduct adds a product to the catalog.
func (s *CatalogService) CreateProduct(session SessionContext, input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProductNameRequired
	}
	unit := strings.TrimSpace(input.Unit)
	if unit == "" {
		unit = "kg"
	}
	product := &models.Product{
		Name:   name,
		Unit:   unit,
		Active: true,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	s.auditService.Record(session, "product %q added to catalog (#%d)", product.Name, product.ID)
	return product, nil
}

// GetProduct fetches one product.
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListProducts returns catalog entries matching the filter.
func (s *CatalogService) ListProducts(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// SetProductActive toggles a catalog entry.
func (s *CatalogService) SetProductActive(session SessionContext, id uint, active bool) error {
	product, err := s.GetProduct(id)
	if err != nil {
		return err
	}
	if err := s.productRepo.SetActive(product.ID, active); err != nil {
		return err
	}
	s.auditService.Record(session, "product %q active=%t", product.Name, active)
	return nil
}
