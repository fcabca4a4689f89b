package staff

import (
	"strconv"
	"strings"

	"github.com/sara-ops/sara-api/internal/http/handlers/shared"
	"github.com/sara-ops/sara-api/internal/http/response"
	"github.com/sara-ops/sara-api/internal/repository"
	"github.com/sara-ops/sara-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateCustomerRequest is the customer registration payload.
type CreateCustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	TaxIDType   string `json:"tax_id_type"`
	TaxIDNumber string `json:"tax_id_number" binding:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Category    string `json:"category"`
}

// CreateCustomer registers a customer.
func (h *Handler) CreateCustomer(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name and tax id number required")
		return
	}

	customer, err := h.CustomerService.CreateCustomer(session, service.CreateCustomerInput{
		Name:        req.Name,
		TaxIDType:   req.TaxIDType,
		TaxIDNumber: req.TaxIDNumber,
		Address:     req.Address,
		Phone:       req.Phone,
		Category:    req.Category,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, customer)
}

// ListCustomers lists customers for the order form autocomplete.
func (h *Handler) ListCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	customers, total, err := h.CustomerService.ListCustomers(repository.CustomerListFilter{
		Page:           page,
		PageSize:       pageSize,
		Search:         strings.TrimSpace(c.Query("search")),
		Category:       strings.TrimSpace(c.Query("category")),
		ApprovalStatus: strings.TrimSpace(c.Query("approval_status")),
		OnlyActive:     c.Query("only_active") == "true",
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "fetch customers failed", err)
		return
	}
	response.SuccessWithPage(c, customers, shared.BuildPagination(page, pageSize, total))
}

// GetCustomer returns one customer.
func (h *Handler) GetCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid customer id")
		return
	}
	customer, err := h.CustomerService.GetCustomer(uint(id))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, customer)
}
