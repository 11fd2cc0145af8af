package services

import (
	"context"
	"fmt"

	"github.com/kaan/edusphere/internal/config"
	"github.com/kaan/edusphere/internal/pkg/apperrors"
	"github.com/kaan/edusphere/internal/pkg/auth"
	"github.com/kaan/edusphere/internal/pkg/logger"
)

// adminUserID is the fixed principal id carried by admin tokens. The
// platform has a single operator account configured at deploy time;
// learner tokens are issued by the external identity provider with the
// same signing secret.
const adminUserID int64 = 1

// AuthService handles the admin login flow
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, expiresIn int, err error)
}

type authServiceImpl struct {
	cfg        *config.Config
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(cfg *config.Config, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		cfg:        cfg,
		jwtService: jwtService,
	}
}

// Login verifies the configured admin credentials and issues a token
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, int, error) {
	if email != s.cfg.Admin.Email || !auth.CheckPassword(s.cfg.Admin.PasswordHash, password) {
		logger.Warn().Str("email", email).Msg("Failed admin login attempt")
		return "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(adminUserID, auth.RoleAdmin)
	if err != nil {
		return "", 0, fmt.Errorf("error generating token: %w", err)
	}

	return token, expiresIn, nil
}
