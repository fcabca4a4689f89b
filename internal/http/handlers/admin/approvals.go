package admin

import (
	"strconv"

	"github.com/sara-ops/sara-api/internal/http/handlers/shared"
	"github.com/sara-ops/sara-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListPendingCustomers returns customers awaiting an approval decision.
func (h *Handler) ListPendingCustomers(c *gin.Context) {
	customers, err := h.CustomerService.ListPendingCustomers()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "fetch pending customers failed", err)
		return
	}
	response.Success(c, customers)
}

// ListPendingOrders returns orders awaiting an approval decision.
func (h *Handler) ListPendingOrders(c *gin.Context) {
	orders, err := h.OrderService.ListPendingOrders()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "fetch pending orders failed", err)
		return
	}
	response.Success(c, orders)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// ApproveCustomer marks a customer approved.
func (h *Handler) ApproveCustomer(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.LifecycleService.ApproveCustomer(session, id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "customer approved", nil)
}

// RejectCustomer marks a customer rejected.
func (h *Handler) RejectCustomer(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.LifecycleService.RejectCustomer(session, id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "customer rejected", nil)
}

// ApproveOrder marks an order approved, gated on the customer's current
// approval status.
func (h *Handler) ApproveOrder(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.LifecycleService.ApproveOrder(session, id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "order approved", nil)
}

// RejectOrder marks an order rejected.
func (h *Handler) RejectOrder(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.LifecycleService.RejectOrder(session, id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "order rejected", nil)
}

// DeleteOrder removes an order and its line items.
func (h *Handler) DeleteOrder(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.LifecycleService.DeleteOrder(session, id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "order deleted", nil)
}
