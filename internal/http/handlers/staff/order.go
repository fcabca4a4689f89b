package staff

import (
	"strconv"
	"strings"
	"time"

	"github.com/sara-ops/sara-api/internal/constants"
	"github.com/sara-ops/sara-api/internal/http/handlers/shared"
	"github.com/sara-ops/sara-api/internal/http/response"
	"github.com/sara-ops/sara-api/internal/models"
	"github.com/sara-ops/sara-api/internal/repository"
	"github.com/sara-ops/sara-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderItemRequest is one requested line.
type CreateOrderItemRequest struct {
	ProductID        uint          `json:"product_id" binding:"required"`
	Quantity         int           `json:"quantity" binding:"required"`
	SpecialUnitPrice *models.Money `json:"special_unit_price"`
}

// CreateOrderRequest is the order intake payload.
type CreateOrderRequest struct {
	CustomerName  string                   `json:"customer_name" binding:"required"`
	RequestedDate string                   `json:"requested_date"`
	DeliveryMode  string                   `json:"delivery_mode"`
	Invoice       bool                     `json:"invoice"`
	PriceTier     string                   `json:"price_tier"`
	Brand         string                   `json:"brand"`
	Notes         string                   `json:"notes"`
	Items         []CreateOrderItemRequest `json:"items" binding:"required"`
}

// CreateOrder registers an order.
func (h *Handler) CreateOrder(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "customer name and items required")
		return
	}

	var requestedDate *time.Time
	if raw := strings.TrimSpace(req.RequestedDate); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			response.BadRequest(c, "requested_date must be YYYY-MM-DD")
			return
		}
		requestedDate = &parsed
	}

	items := make([]service.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CreateOrderItem{
			ProductID:        item.ProductID,
			Quantity:         item.Quantity,
			SpecialUnitPrice: item.SpecialUnitPrice,
		})
	}

	order, err := h.OrderService.CreateOrder(session, service.CreateOrderInput{
		CustomerName:  req.CustomerName,
		RequestedDate: requestedDate,
		DeliveryMode:  req.DeliveryMode,
		Invoice:       req.Invoice,
		PriceTier:     req.PriceTier,
		Brand:         req.Brand,
		Notes:         req.Notes,
		Items:         items,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// ListOrders lists orders.
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	var customerID uint
	if raw := strings.TrimSpace(c.Query("customer_id")); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			customerID = uint(parsed)
		}
	}

	orders, total, err := h.OrderService.ListOrders(repository.OrderListFilter{
		Page:              page,
		PageSize:          pageSize,
		CustomerID:        customerID,
		ApprovalStatus:    strings.TrimSpace(c.Query("approval_status")),
		FulfillmentStatus: strings.TrimSpace(c.Query("fulfillment_status")),
		DeliveryMode:      strings.TrimSpace(c.Query("delivery_mode")),
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "fetch orders failed", err)
		return
	}
	response.SuccessWithPage(c, orders, shared.BuildPagination(page, pageSize, total))
}

// GetOrder returns one order with its line items.
func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.OrderService.GetOrder(uint(id))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// Board returns the weighing and delivery board for a date window.
func (h *Handler) Board(c *gin.Context) {
	window := strings.TrimSpace(c.DefaultQuery("window", constants.DateWindowToday))
	switch window {
	case constants.DateWindowToday, constants.DateWindowWeek, constants.DateWindowAll:
	default:
		response.BadRequest(c, "window must be today, week or all")
		return
	}
	orders, err := h.OrderService.ListBoard(window)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "fetch board failed", err)
		return
	}
	response.Success(c, orders)
}
