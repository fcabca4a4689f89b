package service

import (
	"context"
	"strings"

	"github.com/sara-ops/sara-api/internal/cache"
	"github.com/sara-ops/sara-api/internal/constants"
	"github.com/sara-ops/sara-api/internal/models"
	"github.com/sara-ops/sara-api/internal/repository"
)

// UserService manages staff accounts. All operations are
// administrator-only.
type UserService struct {
	userRepo     repository.UserRepository
	authService  *AuthService
	auditService *AuditService
}

// NewUserService creates the staff account service.
func NewUserService(userRepo repository.UserRepository, authService *AuthService, auditService *AuditService) *UserService {
	return &UserService{
		userRepo:     userRepo,
		authService:  authService,
		auditService: auditService,
	}
}

// CreateUserInput carries the fields for a new staff account.
type CreateUserInput struct {
	Username    string
	DisplayName string
	Password    string
	Role        string
}

func validRole(role string) bool {
	switch role {
	case constants.RoleAdmin, constants.RoleOperator, constants.RoleRunner:
		return true
	}
	return false
}

// CreateUser registers a staff account.
func (s *UserService) CreateUser(session SessionContext, input CreateUserInput) (*models.User, error) {
	if !session.IsAdmin() {
		return nil, ErrUnauthorized
	}
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrInvalidCredentials
	}
	role := strings.ToLower(strings.TrimSpace(input.Role))
	if !validRole(role) {
		role = constants.RoleRunner
	}

	existing, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := s.authService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     username,
		DisplayName:  strings.TrimSpace(input.DisplayName),
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	s.auditService.Record(session, "staff account %q created (%s)", user.Username, user.Role)
	return user, nil
}

// ListUsers returns staff accounts matching the filter.
func (s *UserService) ListUsers(session SessionContext, filter repository.UserListFilter) ([]models.User, int64, error) {
	if !session.IsAdmin() {
		return nil, 0, ErrUnauthorized
	}
	return s.userRepo.List(filter)
}

// SetUserActive toggles a staff account and drops its cached auth state
// so open tokens stop working on the next request.
func (s *UserService) SetUserActive(session SessionContext, id uint, active bool) error {
	if !session.IsAdmin() {
		return ErrUnauthorized
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.SetActive(user.ID, active); err != nil {
		return err
	}
	_ = cache.DelUserAuthState(context.Background(), user.ID)
	s.auditService.Record(session, "staff account %q active=%t", user.Username, active)
	return nil
}
