package models

import (
	"strings"

	"github.com/sara-ops/sara-api/internal/constants"
	"github.com/sara-ops/sara-api/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultAdmin seeds a default admin account when no users exist.
func InitDefaultAdmin(username, password string) error {
	var count int64
	DB.Model(&User{}).Count(&count)
	if count > 0 {
		return nil
	}

	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := User{
		Username:     strings.TrimSpace(username),
		DisplayName:  "Administrator",
		PasswordHash: string(hash),
		Role:         constants.RoleAdmin,
		Active:       true,
	}

	if err := DB.Create(&user).Error; err != nil {
		return err
	}

	if password == "admin123" {
		logger.Warnw("default_admin_created_with_default_password", "username", user.Username)
		logger.Warnw("default_admin_password_change_required", "username", user.Username)
	} else {
		logger.Warnw("default_admin_created", "username", user.Username, "password_hidden", true)
	}

	return nil
}
