package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/pkg/apperrors"
)

// MeritListSettingsKey is the settings-store key for the quota configuration.
const MeritListSettingsKey = "merit_list"

// SettingsRepository is a generic key-value store over the 'settings' table.
// Values are JSON documents owned by the admin configuration screens.
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{
		db: db,
	}
}

// Get retrieves the raw JSON value for a settings key
func (r *SettingsRepository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var value json.RawMessage
	err := r.db.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving setting %q: %w", key, err)
	}
	return value, nil
}

// Put upserts the JSON value for a settings key
func (r *SettingsRepository) Put(ctx context.Context, key string, value json.RawMessage) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("error storing setting %q: %w", key, err)
	}
	return nil
}

// GetMeritListConfig loads the quota configuration used by allocation runs.
// A missing document aborts generation entirely, so it maps to ErrConfigMissing.
func (r *SettingsRepository) GetMeritListConfig(ctx context.Context) (*models.QuotaConfig, error) {
	raw, err := r.Get(ctx, MeritListSettingsKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrConfigMissing
		}
		return nil, err
	}

	var cfg models.QuotaConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("error decoding merit list config: %w", err)
	}
	return &cfg, nil
}

// PutMeritListConfig stores the quota configuration
func (r *SettingsRepository) PutMeritListConfig(ctx context.Context, cfg *models.QuotaConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error encoding merit list config: %w", err)
	}
	return r.Put(ctx, MeritListSettingsKey, raw)
}
