package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/sara-ops/sara-api/internal/http/handlers/shared"
	"github.com/sara-ops/sara-api/internal/http/response"
	"github.com/sara-ops/sara-api/internal/repository"

	"github.com/gin-gonic/gin"
)

func parseTimeNullable(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02 15:04:05", raw, time.Local)
	if err != nil {
		parsed, err = time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return nil, err
		}
	}
	return &parsed, nil
}

// ListEvents returns the audit trail, newest first.
func (h *Handler) ListEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	createdFrom, err := parseTimeNullable(strings.TrimSpace(c.Query("created_from")))
	if err != nil {
		response.BadRequest(c, "created_from must be a date or datetime")
		return
	}
	createdTo, err := parseTimeNullable(strings.TrimSpace(c.Query("created_to")))
	if err != nil {
		response.BadRequest(c, "created_to must be a date or datetime")
		return
	}

	events, total, err := h.AuditService.ListEvents(repository.EventLogListFilter{
		Page:        page,
		PageSize:    pageSize,
		Username:    strings.TrimSpace(c.Query("username")),
		Station:     strings.TrimSpace(c.Query("station")),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "fetch events failed", err)
		return
	}
	response.SuccessWithPage(c, events, shared.BuildPagination(page, pageSize, total))
}
