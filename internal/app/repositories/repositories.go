package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles every database repository for dependency wiring.
type Repositories struct {
	AdmissionRepository  *AdmissionRepository
	SettingsRepository   *SettingsRepository
	MeritListRepository  *MeritListRepository
	StaffRepository      *StaffRepository
	CredentialRepository *CredentialRepository
}

// NewRepositories creates all repositories over one shared pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdmissionRepository:  NewAdmissionRepository(db),
		SettingsRepository:   NewSettingsRepository(db),
		MeritListRepository:  NewMeritListRepository(db),
		StaffRepository:      NewStaffRepository(db),
		CredentialRepository: NewCredentialRepository(db),
	}
}
