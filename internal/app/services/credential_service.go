package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hosteldesk/hosteldesk/internal/app/models"
	pkgAuth "github.com/hosteldesk/hosteldesk/internal/pkg/auth"
	"github.com/hosteldesk/hosteldesk/internal/pkg/email"
)

// CredentialService issues student logins for published merit lists and
// notifies each student exactly once. Idempotency lives in the store: Issue
// reports false for students credentialed by an earlier dispatch, and those
// are skipped without a second email.
type CredentialService struct {
	credentialRepo CredentialStore
	emailService   email.EmailService
	logger         zerolog.Logger
}

// NewCredentialService creates a new credential service instance
func NewCredentialService(credentialRepo CredentialStore, emailService email.EmailService, logger zerolog.Logger) *CredentialService {
	return &CredentialService{
		credentialRepo: credentialRepo,
		emailService:   emailService,
		logger:         logger,
	}
}

// DispatchForList issues one login per shortlist entry and emails it. Each
// student is handled independently: a failure for one student is collected
// and the rest still get their credentials.
func (s *CredentialService) DispatchForList(ctx context.Context, list *models.MeritList) error {
	var errs []error
	for _, student := range list.Students {
		if err := s.dispatchOne(ctx, student); err != nil {
			s.logger.Error().Err(err).
				Int64("admissionId", student.AdmissionID).
				Str("enrollment", student.Enrollment).
				Msg("Failed to dispatch credentials")
			errs = append(errs, fmt.Errorf("admission %d: %w", student.AdmissionID, err))
		}
	}
	return errors.Join(errs...)
}

func (s *CredentialService) dispatchOne(ctx context.Context, student models.ShortlistEntry) error {
	tempPassword, err := pkgAuth.GenerateTempPassword()
	if err != nil {
		return err
	}

	hash, err := pkgAuth.HashPassword(tempPassword)
	if err != nil {
		return fmt.Errorf("error hashing temporary password: %w", err)
	}

	issued, err := s.credentialRepo.Issue(ctx, &models.StudentCredential{
		AdmissionID:  student.AdmissionID,
		Enrollment:   student.Enrollment,
		Email:        student.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return err
	}
	if !issued {
		// Already credentialed by an earlier dispatch; no second email.
		return nil
	}

	// The student signs in with their enrollment number.
	return s.emailService.SendCredentialEmail(student.Email, student.FullName, student.Enrollment, tempPassword)
}
