package admin

import (
	"strconv"

	"github.com/sara-ops/sara-api/internal/http/handlers/shared"
	"github.com/sara-ops/sara-api/internal/http/response"
	"github.com/sara-ops/sara-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateProductRequest is the catalog entry payload.
type CreateProductRequest struct {
	Name string `json:"name" binding:"required"`
	Unit string `json:"unit"`
}

// CreateProduct adds a product to the catalog.
func (h *Handler) CreateProduct(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "product name required")
		return
	}
	product, err := h.CatalogService.CreateProduct(session, service.CreateProductInput{
		Name: req.Name,
		Unit: req.Unit,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// SetProductActiveRequest toggles a catalog entry.
type SetProductActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetProductActive enables or disables a catalog entry.
func (h *Handler) SetProductActive(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid product id")
		return
	}
	var req SetProductActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		response.BadRequest(c, "active flag required")
		return
	}
	if err := h.CatalogService.SetProductActive(session, uint(id), *req.Active); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "product updated", nil)
}
