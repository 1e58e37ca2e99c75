package models

import "time"

// StudentCredential records a login issued to a published merit-list student.
// AdmissionID is unique: credential dispatch is idempotent per student.
type StudentCredential struct {
	ID           int64     `json:"id" db:"id"`
	AdmissionID  int64     `json:"admissionId" db:"admission_id"`
	Enrollment   string    `json:"enrollment" db:"enrollment"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IssuedAt     time.Time `json:"issuedAt" db:"issued_at"`
}
