package staff

import (
	"time"

	"github.com/sara-ops/sara-api/internal/http/handlers/shared"
	"github.com/sara-ops/sara-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name,omitempty"`
	Role        string    `json:"role"`
}

// Login authenticates a staff account and issues a token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username and password required")
		return
	}

	user, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	response.Success(c, LoginResponse{
		Token:       token,
		ExpiresAt:   expiresAt,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Role:        user.Role,
	})
}

// Me returns the authenticated account.
func (h *Handler) Me(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	user, err := h.UserRepo.GetByID(session.ActorID)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "fetch account failed", err)
		return
	}
	if user == nil {
		response.NotFound(c, "account not found")
		return
	}
	response.Success(c, user)
}

// ChangePasswordRequest is the password rotation payload.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ChangePassword rotates the caller's password.
func (h *Handler) ChangePassword(c *gin.Context) {
	session, ok := shared.Session(c)
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "old and new password required, new password at least 8 characters")
		return
	}
	if err := h.AuthService.ChangePassword(session.ActorID, req.OldPassword, req.NewPassword); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "password changed", nil)
}
