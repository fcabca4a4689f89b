package service

import (
	"errors"
	"strings"
	"unicode"

	"github.com/sara-ops/sara-api/internal/constants"
	"github.com/sara-ops/sara-api/internal/models"
	"github.com/sara-ops/sara-api/internal/repository"
)

// CustomerService manages the customer register.
type CustomerService struct {
	customerRepo repository.CustomerRepository
	auditService *AuditService
}

// NewCustomerService creates the customer service.
func NewCustomerService(customerRepo repository.CustomerRepository, auditService *AuditService) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		auditService: auditService,
	}
}

// CreateCustomerInput carries the fields for a new customer.
type CreateCustomerInput struct {
	Name        string
	TaxIDType   string
	TaxIDNumber string
	Address     string
	Phone       string
	Category    string
}

// digitsOnly strips every non-digit rune from the tax identifier.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CreateCustomer registers a customer. Customers created by an
// administrator start approved; everyone else's start pending.
func (s *CustomerService) CreateCustomer(session SessionContext, input CreateCustomerInput) (*models.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCustomerNameRequired
	}
	taxNumber := digitsOnly(input.TaxIDNumber)
	if taxNumber == "" {
		return nil, ErrTaxIDRequired
	}

	taxType := strings.ToLower(strings.TrimSpace(input.TaxIDType))
	if taxType == "" {
		taxType = constants.TaxIDTypeCUIT
	}
	category := strings.ToLower(strings.TrimSpace(input.Category))
	if category == "" {
		category = constants.CustomerCategoryOther
	}

	approval := constants.ApprovalStatusPending
	if session.IsAdmin() {
		approval = constants.ApprovalStatusApproved
	}

	customer := &models.Customer{
		Name:           name,
		TaxIDType:      taxType,
		TaxIDNumber:    taxNumber,
		Address:        strings.TrimSpace(input.Address),
		Phone:          strings.TrimSpace(input.Phone),
		Category:       category,
		Active:         true,
		ApprovalStatus: approval,
		CreatedBy:      session.ActorName,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateCustomerName) {
			return nil, ErrCustomerNameTaken
		}
		return nil, err
	}

	s.auditService.Record(session, "customer %q registered (#%d, %s)", customer.Name, customer.ID, approval)
	return customer, nil
}

// GetCustomer fetches one customer.
func (s *CustomerService) GetCustomer(id uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// FindByName resolves a customer by its case-insensitive trimmed name.
func (s *CustomerService) FindByName(name string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// ListCustomers returns customers matching the filter.
func (s *CustomerService) ListCustomers(filter repository.CustomerListFilter) ([]models.Customer, int64, error) {
	return s.customerRepo.List(filter)
}

// ListPendingCustomers returns customers awaiting an approval decision.
func (s *CustomerService) ListPendingCustomers() ([]models.Customer, error) {
	return s.customerRepo.ListPendingApproval()
}
