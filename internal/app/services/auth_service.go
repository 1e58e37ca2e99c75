package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/pkg/apperrors"
	pkgAuth "github.com/hosteldesk/hosteldesk/internal/pkg/auth"
)

// AuthService handles staff authentication
type AuthService struct {
	staffRepo  StaffStore
	jwtService *pkgAuth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(staffRepo StaffStore, jwtService *pkgAuth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		staffRepo:  staffRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// LoginResult carries the token and the staff profile it was issued for.
type LoginResult struct {
	AccessToken string
	ExpiresIn   int
	Staff       *models.StaffAccount
}

// Login verifies staff credentials and issues an access token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	staff, err := s.staffRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrStaffNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !pkgAuth.CheckPassword(staff.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(staff)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", staff.Username).Str("role", string(staff.Role)).Msg("Staff login")
	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		Staff:       staff,
	}, nil
}
