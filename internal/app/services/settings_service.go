package services

import (
	"context"
	"fmt"

	"github.com/hosteldesk/hosteldesk/internal/app/auth"
	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/pkg/apperrors"
)

// SettingsService handles the merit list quota configuration
type SettingsService struct {
	settingsRepo SettingsStore
	authz        *auth.AuthorizationService
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo SettingsStore, authz *auth.AuthorizationService) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		authz:        authz,
	}
}

// GetMeritListConfig retrieves the current quota configuration
func (s *SettingsService) GetMeritListConfig(ctx context.Context) (*models.QuotaConfig, error) {
	return s.settingsRepo.GetMeritListConfig(ctx)
}

// UpdateMeritListConfig validates and stores a new quota configuration.
// Percentages may sum past 100; the engine handles over-subscription by
// exhausting seats in pass order, so only per-entry ranges are checked here.
func (s *SettingsService) UpdateMeritListConfig(ctx context.Context, actor models.Actor, cfg *models.QuotaConfig) error {
	if err := s.authz.CanEditSettings(actor); err != nil {
		return err
	}

	if cfg == nil || len(cfg.DepartmentSeats) == 0 {
		return fmt.Errorf("%w: at least one department seat count is required", apperrors.ErrValidationFailed)
	}
	for dept, seats := range cfg.DepartmentSeats {
		if seats < 0 {
			return fmt.Errorf("%w: negative seat count for department %q", apperrors.ErrValidationFailed, dept)
		}
	}
	for cat, pct := range cfg.CategoryPercentages {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%w: percentage for category %q must be between 0 and 100", apperrors.ErrValidationFailed, cat)
		}
	}

	return s.settingsRepo.PutMeritListConfig(ctx, cfg)
}
