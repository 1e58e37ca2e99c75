package models

import "time"

// StaffAccount defines a portal staff login based on the 'staff_accounts'
// table. SubRole carries the hostel key a warden is scoped to, or the
// "boys"/"girls" aggregate for cross-hostel roles.
type StaffAccount struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Username     string    `json:"username" db:"username" example:"warden.shivneri"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"fullName" db:"full_name" example:"R. S. Pawar"`
	Email        string    `json:"email" db:"email" example:"warden@hosteldesk.app"`
	Role         StaffRole `json:"role" db:"role" example:"warden"`
	SubRole      string    `json:"subRole" db:"sub_role" example:"shivneri"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Actor is the authorization input extracted from a validated staff token.
type Actor struct {
	StaffID int64
	Role    StaffRole
	SubRole string
}
