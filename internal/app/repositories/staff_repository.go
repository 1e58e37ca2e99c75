package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/pkg/apperrors"
)

// StaffRepository handles database operations for staff accounts
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
	}
}

// Create inserts a staff account
func (r *StaffRepository) Create(ctx context.Context, staff *models.StaffAccount) error {
	query := `
		INSERT INTO staff_accounts (username, password_hash, full_name, email, role, sub_role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		staff.Username,
		staff.PasswordHash,
		staff.FullName,
		staff.Email,
		staff.Role,
		staff.SubRole,
	).Scan(&staff.ID, &staff.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating staff account: %w", err)
	}

	return nil
}

// GetByUsername retrieves a staff account for login
func (r *StaffRepository) GetByUsername(ctx context.Context, username string) (*models.StaffAccount, error) {
	query := `
		SELECT id, username, password_hash, full_name, email, role, sub_role, created_at
		FROM staff_accounts
		WHERE username = $1
	`

	var staff models.StaffAccount
	err := r.db.QueryRow(ctx, query, username).Scan(
		&staff.ID,
		&staff.Username,
		&staff.PasswordHash,
		&staff.FullName,
		&staff.Email,
		&staff.Role,
		&staff.SubRole,
		&staff.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error retrieving staff account: %w", err)
	}

	return &staff, nil
}

// ExistsByUsername checks whether a staff username is taken
func (r *StaffRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM staff_accounts WHERE username = $1)`,
		username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking staff existence: %w", err)
	}
	return exists, nil
}
