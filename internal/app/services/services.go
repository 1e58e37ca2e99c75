package services

import (
	"context"

	"github.com/hosteldesk/hosteldesk/internal/app/models"
)

// Store interfaces consumed by the services. The repositories package
// provides the Postgres implementations; tests provide in-memory fakes.

// AdmissionStore is the read/review boundary over hostel applications.
type AdmissionStore interface {
	Create(ctx context.Context, admission *models.AdmissionRecord) error
	GetByID(ctx context.Context, id int64) (*models.AdmissionRecord, error)
	ListByStatus(ctx context.Context, status models.AdmissionStatus) ([]models.AdmissionRecord, error)
	ListAccepted(ctx context.Context) ([]models.AdmissionRecord, error)
	ListAll(ctx context.Context) ([]models.AdmissionRecord, error)
	UpdateStatus(ctx context.Context, id int64, status models.AdmissionStatus) error
}

// SettingsStore is the quota configuration boundary.
type SettingsStore interface {
	GetMeritListConfig(ctx context.Context) (*models.QuotaConfig, error)
	PutMeritListConfig(ctx context.Context, cfg *models.QuotaConfig) error
}

// MeritListStore is the merit list document boundary. UpdateStatus is a
// compare-and-set: it reports whether the guarded update actually happened.
type MeritListStore interface {
	Save(ctx context.Context, list *models.MeritList) error
	GetByID(ctx context.Context, id int64) (*models.MeritList, error)
	ListAll(ctx context.Context) ([]*models.MeritList, error)
	UpdateStatus(ctx context.Context, id int64, expected, next models.ListStatus) (bool, error)
}

// StaffStore is the staff account boundary used for login.
type StaffStore interface {
	GetByUsername(ctx context.Context, username string) (*models.StaffAccount, error)
}

// CredentialStore is the issued-login boundary. Issue reports whether this
// call created the credential, or an earlier dispatch already had.
type CredentialStore interface {
	Issue(ctx context.Context, cred *models.StudentCredential) (bool, error)
}
