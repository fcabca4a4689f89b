package staff

import (
	"strconv"

	"github.com/sara-ops/sara-api/internal/http/handlers/shared"
	"github.com/sara-ops/sara-api/internal/http/response"
	"github.com/sara-ops/sara-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RecordWeightsRequest carries one weight slot per line item, in line
// order. A null slot leaves that item's weight unchanged.
type RecordWeightsRequest struct {
	Weights []*models.Weight `json:"weights" binding:"required"`
}

// RecordWeights stores scale readings for an order.
func (h *Handler) RecordWeights(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid order id")
		return
	}
	var req RecordWeightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "weights required, one slot per line item")
		return
	}
	if err := h.LifecycleService.RecordWeights(session, uint(id), req.Weights); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	order, err := h.OrderService.GetOrder(uint(id))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// MarkDelivered moves an order to the delivered state.
func (h *Handler) MarkDelivered(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid order id")
		return
	}
	if err := h.LifecycleService.MarkDelivered(session, uint(id)); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "order delivered", nil)
}
