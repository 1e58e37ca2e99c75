package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/hosteldesk/hosteldesk/internal/app/models"
	appRepos "github.com/hosteldesk/hosteldesk/internal/app/repositories"
	"github.com/hosteldesk/hosteldesk/internal/pkg/apperrors"
)

// defaultStaff is the staff roster created on first boot. One warden per
// hostel building plus the rector. Passwords must be rotated after first
// login; these exist so a fresh deployment is usable at all.
var defaultStaff = []struct {
	username string
	password string
	fullName string
	email    string
	role     appModels.StaffRole
	subRole  string
}{
	{"rector", "Rector123!", "College Rector", "rector@hosteldesk.app", appModels.RoleRector, ""},
	{"warden.shivneri", "Warden123!", "Shivneri Warden", "warden.shivneri@hosteldesk.app", appModels.RoleWarden, "shivneri"},
	{"warden.lenyadri", "Warden123!", "Lenyadri Warden", "warden.lenyadri@hosteldesk.app", appModels.RoleWarden, "lenyadri"},
	{"warden.bhimashankar", "Warden123!", "Bhimashankar Warden", "warden.bhimashankar@hosteldesk.app", appModels.RoleWarden, "bhimashankar"},
	{"warden.saraswati", "Warden123!", "Saraswati Warden", "warden.saraswati@hosteldesk.app", appModels.RoleWarden, "saraswati"},
}

// CreateDefaultData seeds staff accounts and a starter quota configuration
// so a fresh deployment can log in and run an allocation immediately.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	staffRepo := appRepos.NewStaffRepository(dbPool)
	settingsRepo := appRepos.NewSettingsRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default staff accounts...")
	var finalErr error

	for _, s := range defaultStaff {
		exists, err := staffRepo.ExistsByUsername(ctx, s.username)
		if err != nil {
			lgr.Error().Err(err).Str("username", s.username).Msg("Error checking staff account")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			lgr.Error().Err(err).Str("username", s.username).Msg("Error hashing staff password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		staff := &appModels.StaffAccount{
			Username:     s.username,
			PasswordHash: string(hashedPassword),
			FullName:     s.fullName,
			Email:        s.email,
			Role:         s.role,
			SubRole:      s.subRole,
		}
		if err := staffRepo.Create(ctx, staff); err != nil {
			lgr.Error().Err(err).Str("username", s.username).Msg("Error creating staff account")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("username", s.username).Str("role", string(s.role)).Msg("Default staff account created")
	}

	// Starter quota configuration, created only when no configuration exists
	if _, err := settingsRepo.GetMeritListConfig(ctx); err != nil {
		if !errors.Is(err, apperrors.ErrConfigMissing) {
			lgr.Error().Err(err).Msg("Error checking merit list settings")
			finalErr = errors.Join(finalErr, err)
		} else {
			cfg := &appModels.QuotaConfig{
				DepartmentSeats: map[string]int{
					"Computer Engineering":   10,
					"Civil Engineering":      10,
					"Mechanical Engineering": 10,
				},
				CategoryPercentages: map[string]float64{
					appModels.CategoryOpen: 50,
					appModels.CategoryOBC:  19,
					appModels.CategorySC:   20,
					appModels.CategoryST:   10,
				},
			}
			if err := settingsRepo.PutMeritListConfig(ctx, cfg); err != nil {
				lgr.Error().Err(err).Msg("Error seeding merit list settings")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Msg("Default merit list settings created")
			}
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
