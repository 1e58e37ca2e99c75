package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hosteldesk/hosteldesk/internal/app/auth"
	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/pkg/apperrors"
)

// AdmissionService handles hostel application intake and admin review
type AdmissionService struct {
	admissionRepo AdmissionStore
	authz         *auth.AuthorizationService
}

// NewAdmissionService creates a new admission service instance
func NewAdmissionService(admissionRepo AdmissionStore, authz *auth.AuthorizationService) *AdmissionService {
	return &AdmissionService{
		admissionRepo: admissionRepo,
		authz:         authz,
	}
}

// validateAdmission validates application data before database operations
func (s *AdmissionService) validateAdmission(admission *models.AdmissionRecord) error {
	if admission == nil {
		return fmt.Errorf("%w: admission is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(admission.FullName) == "" {
		return fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(admission.Enrollment) == "" {
		return fmt.Errorf("%w: enrollment cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(admission.Department) == "" {
		return fmt.Errorf("%w: department cannot be empty", apperrors.ErrValidationFailed)
	}
	switch admission.Year {
	case models.YearFirst, models.YearSecond, models.YearThird:
	default:
		return fmt.Errorf("%w: year must be 1st, 2nd or 3rd", apperrors.ErrValidationFailed)
	}
	switch strings.ToLower(admission.Gender) {
	case models.GenderMale, models.GenderFemale:
	default:
		return fmt.Errorf("%w: gender must be male or female", apperrors.ErrValidationFailed)
	}
	return nil
}

// Submit creates a new application in pending status
func (s *AdmissionService) Submit(ctx context.Context, admission *models.AdmissionRecord) error {
	if err := s.validateAdmission(admission); err != nil {
		return err
	}

	admission.Gender = strings.ToLower(admission.Gender)
	admission.Status = models.AdmissionPending

	if err := s.admissionRepo.Create(ctx, admission); err != nil {
		return err
	}
	return nil
}

// GetByID retrieves a single application
func (s *AdmissionService) GetByID(ctx context.Context, id int64) (*models.AdmissionRecord, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid admission ID", apperrors.ErrValidationFailed)
	}
	return s.admissionRepo.GetByID(ctx, id)
}

// List retrieves applications, optionally filtered by status
func (s *AdmissionService) List(ctx context.Context, status string) ([]models.AdmissionRecord, error) {
	if status == "" {
		return s.admissionRepo.ListAll(ctx)
	}

	switch models.AdmissionStatus(status) {
	case models.AdmissionPending, models.AdmissionVerified, models.AdmissionAccepted, models.AdmissionRejected:
		return s.admissionRepo.ListByStatus(ctx, models.AdmissionStatus(status))
	default:
		return nil, fmt.Errorf("%w: unknown admission status %q", apperrors.ErrValidationFailed, status)
	}
}

// Review moves an application through admin review. Only forward-facing
// review states are allowed; an application never goes back to pending.
func (s *AdmissionService) Review(ctx context.Context, actor models.Actor, id int64, status models.AdmissionStatus) error {
	if err := s.authz.CanReviewAdmissions(actor); err != nil {
		return err
	}

	switch status {
	case models.AdmissionVerified, models.AdmissionAccepted, models.AdmissionRejected:
	default:
		return fmt.Errorf("%w: review status must be verified, accepted or rejected", apperrors.ErrValidationFailed)
	}

	return s.admissionRepo.UpdateStatus(ctx, id, status)
}
