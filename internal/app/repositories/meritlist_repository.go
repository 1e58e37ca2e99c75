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

// MeritListRepository handles database operations for merit lists. The table
// is append-only except for the status column: every allocation run inserts
// new documents and history is kept for audit.
type MeritListRepository struct {
	db *pgxpool.Pool
}

// NewMeritListRepository creates a new merit list repository
func NewMeritListRepository(db *pgxpool.Pool) *MeritListRepository {
	return &MeritListRepository{
		db: db,
	}
}

// Save inserts a new merit list document
func (r *MeritListRepository) Save(ctx context.Context, list *models.MeritList) error {
	query := `
		INSERT INTO merit_lists (run_id, department, students, status, generated_at, settings_snapshot)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		list.RunID,
		list.Department,
		list.Students,
		list.Status,
		list.GeneratedAt,
		list.SettingsSnapshot,
	).Scan(&list.ID)
	if err != nil {
		return fmt.Errorf("error saving merit list: %w", err)
	}

	return nil
}

// GetByID retrieves one merit list document
func (r *MeritListRepository) GetByID(ctx context.Context, id int64) (*models.MeritList, error) {
	query := `
		SELECT id, run_id, department, students, status, generated_at, settings_snapshot
		FROM merit_lists
		WHERE id = $1
	`

	var list models.MeritList
	err := r.db.QueryRow(ctx, query, id).Scan(
		&list.ID,
		&list.RunID,
		&list.Department,
		&list.Students,
		&list.Status,
		&list.GeneratedAt,
		&list.SettingsSnapshot,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMeritListNotFound
		}
		return nil, fmt.Errorf("error retrieving merit list: %w", err)
	}

	return &list, nil
}

// ListAll retrieves the full merit list history
func (r *MeritListRepository) ListAll(ctx context.Context) ([]*models.MeritList, error) {
	query := `
		SELECT id, run_id, department, students, status, generated_at, settings_snapshot
		FROM merit_lists
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []*models.MeritList
	for rows.Next() {
		var list models.MeritList
		if err := rows.Scan(
			&list.ID,
			&list.RunID,
			&list.Department,
			&list.Students,
			&list.Status,
			&list.GeneratedAt,
			&list.SettingsSnapshot,
		); err != nil {
			return nil, err
		}
		lists = append(lists, &list)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lists, nil
}

// UpdateStatus advances a list's lifecycle status only if it still holds the
// expected current status. Returns false when the guard fails, which the
// service layer surfaces as a Conflict: the loser of a race must re-read
// before retrying. The status guard in the WHERE clause is the entire
// concurrency story for lifecycle transitions.
func (r *MeritListRepository) UpdateStatus(ctx context.Context, id int64, expected, next models.ListStatus) (bool, error) {
	query := `
		UPDATE merit_lists
		SET status = $1
		WHERE id = $2 AND status = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, next, id, expected)
	if err != nil {
		return false, fmt.Errorf("error updating merit list status: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
