package service

import (
	"errors"
	"testing"

	"github.com/sara-ops/sara-api/internal/config"
	"github.com/sara-ops/sara-api/internal/constants"
	"github.com/sara-ops/sara-api/internal/models"
	"github.com/sara-ops/sara-api/internal/repository"

	"gorm.io/gorm"
)

func setupUserServiceTest(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newServiceTestDB(t, "user_service_test")
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-for-user-service-test"
	cfg.JWT.ExpireHours = 24
	userRepo := repository.NewUserRepository(db)
	authService := NewAuthService(cfg, userRepo)
	svc := NewUserService(userRepo, authService, newTestAuditService(db))
	return svc, db
}

func TestCreateUserAdminOnly(t *testing.T) {
	svc, _ := setupUserServiceTest(t)

	for _, session := range []SessionContext{runnerSession(), operatorSession()} {
		_, err := svc.CreateUser(session, CreateUserInput{Username: "new", Password: "password-123"})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("role %s: expected ErrUnauthorized, got %v", session.Role, err)
		}
	}
}

func TestCreateUserDefaultsAndDuplicates(t *testing.T) {
	svc, _ := setupUserServiceTest(t)

	user, err := svc.CreateUser(adminSession(), CreateUserInput{
		Username:    "  pedro ",
		DisplayName: "Pedro",
		Password:    "password-123",
		Role:        "driver", // not a known role
	})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if user.Username != "pedro" {
		t.Fatalf("username should be trimmed, got %q", user.Username)
	}
	if user.Role != constants.RoleRunner {
		t.Fatalf("unknown role should fall back to runner, got %s", user.Role)
	}
	if !user.Active {
		t.Fatalf("new user should start active")
	}
	if user.PasswordHash == "password-123" || user.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}

	_, err = svc.CreateUser(adminSession(), CreateUserInput{Username: "pedro", Password: "other-password"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestSetUserActive(t *testing.T) {
	svc, db := setupUserServiceTest(t)

	user, err := svc.CreateUser(adminSession(), CreateUserInput{
		Username: "temp",
		Password: "password-123",
		Role:     constants.RoleOperator,
	})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	if err := svc.SetUserActive(operatorSession(), user.ID, false); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for operator, got %v", err)
	}
	if err := svc.SetUserActive(adminSession(), user.ID, false); err != nil {
		t.Fatalf("set user inactive failed: %v", err)
	}

	var got models.User
	if err := db.First(&got, user.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if got.Active {
		t.Fatalf("user should be inactive")
	}

	if err := svc.SetUserActive(adminSession(), 9999, true); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
