// Package services provides application-level orchestration services
package services

import (
	"fmt"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/user"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/performance"
	persistence "github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/user"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/security"
	"github.com/pearlatelier/pearlsite-go/pkg/config"
)

// AuthService handles admin authentication workflows and JWT operations
type AuthService struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	admins      *persistence.SQLAdminRepository
}

// NewAuthService creates a new authentication service
func NewAuthService(logger *logging.ChanneledLogger, perfTracker *performance.Tracker, admins *persistence.SQLAdminRepository) *AuthService {
	return &AuthService{
		logger:      logger,
		perfTracker: perfTracker,
		admins:      admins,
	}
}

// AuthResult holds authentication result data
type AuthResult struct {
	Token string      `json:"token"`
	User  *user.Admin `json:"user"`
}

// Login validates admin credentials and issues a JWT
func (a *AuthService) Login(username, password string) (*AuthResult, error) {
	marker := a.perfTracker.StartOperation("auth_login")
	defer marker.Complete()

	admin, err := a.admins.FindByUsername(username)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}
	if admin == nil || !security.CheckPassword(admin.PasswordHash, password) {
		a.logger.Auth().Warn("Login rejected", "username", username)
		marker.SetSuccess(false)
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := security.GenerateAdminToken(admin.ID, admin.Username, config.JWTSecret, config.TokenTTL)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	a.logger.Auth().Info("Admin logged in", "username", admin.Username, "adminId", admin.ID)
	marker.SetSuccess(true)
	return &AuthResult{Token: token, User: admin}, nil
}

// VerifyToken validates a bearer token and resolves the admin it belongs to
func (a *AuthService) VerifyToken(tokenString string) (*user.Admin, error) {
	claims, err := security.ValidateJWT(tokenString, config.JWTSecret)
	if err != nil {
		return nil, security.ErrInvalidToken
	}

	adminID, ok := security.AdminIDFromClaims(claims)
	if !ok {
		return nil, security.ErrInvalidToken
	}

	admin, err := a.admins.FindByID(adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, security.ErrInvalidToken
	}
	return admin, nil
}

// ChangePassword verifies the current password before storing a new hash
func (a *AuthService) ChangePassword(adminID int64, oldPassword, newPassword string) error {
	admin, err := a.admins.FindByID(adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return fmt.Errorf("admin %d not found", adminID)
	}
	if !security.CheckPassword(admin.PasswordHash, oldPassword) {
		return fmt.Errorf("old password incorrect")
	}
	if len(newPassword) < config.MinPasswordLength {
		return fmt.Errorf("new password must be at least %d characters", config.MinPasswordLength)
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := a.admins.UpdatePassword(adminID, hash); err != nil {
		return err
	}

	a.logger.Auth().Info("Admin password changed", "adminId", adminID)
	return nil
}
