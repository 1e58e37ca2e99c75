package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/pkg/apperrors"
)

// AdmissionRepository handles database operations for hostel applications
type AdmissionRepository struct {
	db *pgxpool.Pool
}

// NewAdmissionRepository creates a new admission repository
func NewAdmissionRepository(db *pgxpool.Pool) *AdmissionRepository {
	return &AdmissionRepository{
		db: db,
	}
}

// Create inserts a new application with status pending
func (r *AdmissionRepository) Create(ctx context.Context, admission *models.AdmissionRecord) error {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM admissions WHERE enrollment = $1)`,
		admission.Enrollment).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking admission existence: %w", err)
	}
	if exists {
		return apperrors.ErrEnrollmentExists
	}

	query := `
		INSERT INTO admissions (full_name, enrollment, email, phone, department, year, prev_marks, category, gender, status, photo_url, additional_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRow(ctx, query,
		admission.FullName,
		admission.Enrollment,
		admission.Email,
		admission.Phone,
		admission.Department,
		admission.Year,
		admission.PrevMarks,
		admission.Category,
		admission.Gender,
		admission.Status,
		admission.PhotoURL,
		admission.AdditionalData,
	).Scan(&admission.ID, &admission.CreatedAt, &admission.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating admission: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *AdmissionRepository) GetByID(ctx context.Context, id int64) (*models.AdmissionRecord, error) {
	query := `
		SELECT id, full_name, enrollment, email, phone, department, year, prev_marks, category, gender, status, photo_url, additional_data, created_at, updated_at
		FROM admissions
		WHERE id = $1
	`

	var admission models.AdmissionRecord
	err := r.db.QueryRow(ctx, query, id).Scan(
		&admission.ID,
		&admission.FullName,
		&admission.Enrollment,
		&admission.Email,
		&admission.Phone,
		&admission.Department,
		&admission.Year,
		&admission.PrevMarks,
		&admission.Category,
		&admission.Gender,
		&admission.Status,
		&admission.PhotoURL,
		&admission.AdditionalData,
		&admission.CreatedAt,
		&admission.UpdatedAt,
	)
	if err != nil {
		return nil, apperrors.ErrAdmissionNotFound
	}

	return &admission, nil
}

// ListByStatus retrieves applications with the given status in insertion
// order. Insertion order is what makes repeated allocation runs over the same
// pool deterministic, so the ORDER BY id is load-bearing.
func (r *AdmissionRepository) ListByStatus(ctx context.Context, status models.AdmissionStatus) ([]models.AdmissionRecord, error) {
	query := `
		SELECT id, full_name, enrollment, email, phone, department, year, prev_marks, category, gender, status, photo_url, additional_data, created_at, updated_at
		FROM admissions
		WHERE status = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admissions []models.AdmissionRecord
	for rows.Next() {
		var admission models.AdmissionRecord
		if err := rows.Scan(
			&admission.ID,
			&admission.FullName,
			&admission.Enrollment,
			&admission.Email,
			&admission.Phone,
			&admission.Department,
			&admission.Year,
			&admission.PrevMarks,
			&admission.Category,
			&admission.Gender,
			&admission.Status,
			&admission.PhotoURL,
			&admission.AdditionalData,
			&admission.CreatedAt,
			&admission.UpdatedAt,
		); err != nil {
			return nil, err
		}
		admissions = append(admissions, admission)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return admissions, nil
}

// ListAccepted returns the allocation engine's input snapshot.
func (r *AdmissionRepository) ListAccepted(ctx context.Context) ([]models.AdmissionRecord, error) {
	return r.ListByStatus(ctx, models.AdmissionAccepted)
}

// ListAll retrieves every application in insertion order
func (r *AdmissionRepository) ListAll(ctx context.Context) ([]models.AdmissionRecord, error) {
	query := `
		SELECT id, full_name, enrollment, email, phone, department, year, prev_marks, category, gender, status, photo_url, additional_data, created_at, updated_at
		FROM admissions
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admissions []models.AdmissionRecord
	for rows.Next() {
		var admission models.AdmissionRecord
		if err := rows.Scan(
			&admission.ID,
			&admission.FullName,
			&admission.Enrollment,
			&admission.Email,
			&admission.Phone,
			&admission.Department,
			&admission.Year,
			&admission.PrevMarks,
			&admission.Category,
			&admission.Gender,
			&admission.Status,
			&admission.PhotoURL,
			&admission.AdditionalData,
			&admission.CreatedAt,
			&admission.UpdatedAt,
		); err != nil {
			return nil, err
		}
		admissions = append(admissions, admission)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return admissions, nil
}

// UpdateStatus moves an application through admin review
func (r *AdmissionRepository) UpdateStatus(ctx context.Context, id int64, status models.AdmissionStatus) error {
	query := `
		UPDATE admissions
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("error updating admission status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdmissionNotFound
	}

	return nil
}
