package models

import "time"

// QuotaConfig is the merit-list settings document kept under the 'merit_list'
// key of the settings store. Owned by the admin configuration UI; the
// allocation engine reads a snapshot of it once per run and never mutates it.
type QuotaConfig struct {
	// DepartmentSeats maps department name to its total hostel seat count.
	DepartmentSeats map[string]int `json:"departmentSeats"`
	// CategoryPercentages maps category to its share of a department's seats
	// (0-100). The shares are not required to sum to 100; over-subscribed
	// configurations simply exhaust seats in pass order.
	CategoryPercentages map[string]float64 `json:"categoryPercentages"`
}

// ShortlistEntry is one allocated seat within a merit list. Year, Gender and
// Email are snapshotted from the admission so that hostel scoping and
// credential dispatch never need to re-read the admissions table.
type ShortlistEntry struct {
	AdmissionID       int64   `json:"admissionId" example:"42"`
	FullName          string  `json:"fullName" example:"Asha Deshmukh"`
	Enrollment        string  `json:"enrollment" example:"EN2024031"`
	Email             string  `json:"email,omitempty"`
	Year              string  `json:"year" example:"1st"`
	Gender            string  `json:"gender" example:"male"`
	PrevMarks         float64 `json:"prevMarks" example:"87.4"`
	Category          string  `json:"category" example:"SC"`
	SelectionCategory string  `json:"selectionCategory" example:"Open"` // quota bucket actually used
	Rank              int     `json:"rank" example:"1"`
}

// MeritList is one allocation run's output for one department. Every run
// appends a new document; the newest GeneratedAt per department is the
// "current" list and older documents remain as audit history.
type MeritList struct {
	ID               int64            `json:"id" db:"id" example:"7"`
	RunID            string           `json:"runId" db:"run_id" example:"7b0c6d1e-8f0a-4f3e-9a1d-2c5b8e4f6a90"`
	Department       string           `json:"department" db:"department" example:"Computer Engineering"`
	Students         []ShortlistEntry `json:"students" db:"students"`
	Status           ListStatus       `json:"status" db:"status" example:"draft"`
	GeneratedAt      time.Time        `json:"generatedAt" db:"generated_at"`
	SettingsSnapshot QuotaConfig      `json:"settingsSnapshot" db:"settings_snapshot"`
}
