package shared

import (
	"github.com/sara-ops/sara-api/internal/http/response"
	"github.com/sara-ops/sara-api/internal/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
	CtxStation  = "station"
)

// Session assembles the session context from the authenticated request.
// Responds with unauthorized and returns false when the keys are missing.
func Session(c *gin.Context) (service.SessionContext, bool) {
	value, exists := c.Get(CtxUserID)
	if !exists {
		response.Unauthorized(c, "authentication required")
		return service.SessionContext{}, false
	}
	userID, ok := value.(uint)
	if !ok {
		RespondError(c, response.CodeInternal, "invalid session state", nil)
		return service.SessionContext{}, false
	}
	return service.SessionContext{
		ActorID:   userID,
		ActorName: c.GetString(CtxUsername),
		Role:      c.GetString(CtxRole),
		Station:   c.GetString(CtxStation),
	}, true
}

// NormalizePagination clamps page parameters to sane bounds.
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// BuildPagination derives the response pagination block.
func BuildPagination(page, pageSize int, total int64) response.Pagination {
	totalPage := int64(0)
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	return response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	}
}
