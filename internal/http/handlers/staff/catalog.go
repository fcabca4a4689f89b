package staff

import (
	"strconv"
	"strings"

	"github.com/sara-ops/sara-api/internal/http/handlers/shared"
	"github.com/sara-ops/sara-api/internal/http/response"
	"github.com/sara-ops/sara-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListProducts lists catalog entries for the order form.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	products, total, err := h.CatalogService.ListProducts(repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     strings.TrimSpace(c.Query("search")),
		OnlyActive: c.DefaultQuery("only_active", "true") == "true",
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "fetch products failed", err)
		return
	}
	response.SuccessWithPage(c, products, shared.BuildPagination(page, pageSize, total))
}
