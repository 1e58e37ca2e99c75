package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hosteldesk/hosteldesk/internal/app/models"
)

// CredentialRepository handles issued student logins. The unique constraint
// on admission_id is what makes credential dispatch idempotent: re-running
// the dispatcher for a published list can never issue a second login.
type CredentialRepository struct {
	db *pgxpool.Pool
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db *pgxpool.Pool) *CredentialRepository {
	return &CredentialRepository{
		db: db,
	}
}

// Issue inserts a credential unless one already exists for the admission.
// Returns true only when this call actually issued the credential; the
// caller must not send a notification email otherwise.
func (r *CredentialRepository) Issue(ctx context.Context, cred *models.StudentCredential) (bool, error) {
	query := `
		INSERT INTO student_credentials (admission_id, enrollment, email, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (admission_id) DO NOTHING
	`

	cmdTag, err := r.db.Exec(ctx, query,
		cred.AdmissionID,
		cred.Enrollment,
		cred.Email,
		cred.PasswordHash,
	)
	if err != nil {
		return false, fmt.Errorf("error issuing credential: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// ExistsForAdmission checks whether a student already has a login
func (r *CredentialRepository) ExistsForAdmission(ctx context.Context, admissionID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM student_credentials WHERE admission_id = $1)`,
		admissionID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking credential existence: %w", err)
	}
	return exists, nil
}
