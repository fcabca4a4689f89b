package admin

import (
	"strconv"
	"strings"

	"github.com/sara-ops/sara-api/internal/http/handlers/shared"
	"github.com/sara-ops/sara-api/internal/http/response"
	"github.com/sara-ops/sara-api/internal/repository"
	"github.com/sara-ops/sara-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateUserRequest is the staff account payload.
type CreateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required"`
}

// CreateUser registers a staff account.
func (h *Handler) CreateUser(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username, role and a password of at least 8 characters required")
		return
	}
	user, err := h.UserService.CreateUser(session, service.CreateUserInput{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    req.Password,
		Role:        req.Role,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, user)
}

// ListUsers lists staff accounts.
func (h *Handler) ListUsers(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	users, total, err := h.UserService.ListUsers(session, repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Role:     strings.TrimSpace(c.Query("role")),
		Keyword:  strings.TrimSpace(c.Query("keyword")),
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, users, shared.BuildPagination(page, pageSize, total))
}

// SetUserActiveRequest toggles a staff account.
type SetUserActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetUserActive enables or disables a staff account.
func (h *Handler) SetUserActive(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid user id")
		return
	}
	var req SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		response.BadRequest(c, "active flag required")
		return
	}
	if err := h.UserService.SetUserActive(session, uint(id), *req.Active); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "user updated", nil)
}
