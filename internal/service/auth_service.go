package service

import (
	"context"
	"time"

	"github.com/afit-dev/staff-management/internal/auth"
	"github.com/afit-dev/staff-management/internal/config"
	"github.com/afit-dev/staff-management/internal/domain"
	"github.com/afit-dev/staff-management/internal/repository"
	apperrors "github.com/afit-dev/staff-management/pkg/util"
)

// AuthService authenticates credentials and issues access tokens. A user
// whose staff record has been promoted to admin receives an admin token.
type AuthService struct {
	store    repository.Store
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg *config.Config, store repository.Store) *AuthService {
	return &AuthService{
		store:    store,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// Login verifies the email/password pair and returns the user plus a signed
// token. Unknown email and wrong password produce the same error so the
// endpoint does not leak which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.store.Users().Get(ctx, domain.ByEmail(email))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
	}

	subject := domain.SubjectTypeUser
	var staffID *string
	if staff, err := s.store.Staff().GetByUserID(ctx, user.ID); err == nil {
		staffID = &staff.ID
		isAdmin, err := s.store.Admins().ExistsByStaffID(ctx, staff.ID)
		if err != nil {
			return nil, "", time.Time{}, err
		}
		if isAdmin {
			subject = domain.SubjectTypeAdmin
		}
	} else if !apperrors.IsNotFound(err) {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, subject, staffID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewServerFailure(err)
	}
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
