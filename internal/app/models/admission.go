package models

import (
	"strconv"
	"strings"
	"time"
)

// AdmissionRecord defines one hostel application based on the 'admissions' table.
// Records are created on applicant submission and mutated only by admin review;
// the allocation engine reads them and never writes them back.
type AdmissionRecord struct {
	ID             int64             `json:"id" db:"id" example:"1"`
	FullName       string            `json:"fullName" db:"full_name" example:"Asha Deshmukh"`
	Enrollment     string            `json:"enrollment" db:"enrollment" example:"EN2024031"`
	Email          string            `json:"email" db:"email" example:"asha@example.com"`
	Phone          string            `json:"phone" db:"phone" example:"9876543210"`
	Department     string            `json:"department" db:"department" example:"Computer Engineering"`
	Year           string            `json:"year" db:"year" example:"1st"`
	PrevMarks      string            `json:"prevMarks" db:"prev_marks" example:"87.40"` // textual as submitted
	Category       string            `json:"category" db:"category" example:"OBC"`
	Gender         string            `json:"gender" db:"gender" example:"male"`
	Status         AdmissionStatus   `json:"status" db:"status" example:"accepted"`
	PhotoURL       string            `json:"photoUrl,omitempty" db:"photo_url"`
	AdditionalData map[string]string `json:"additionalData,omitempty" db:"additional_data"`
	CreatedAt      time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time         `json:"updatedAt" db:"updated_at"`
}

// Marks parses the submitted marks string. Missing or non-numeric marks rank
// as 0.0 rather than failing the whole allocation run.
func (a *AdmissionRecord) Marks() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(a.PrevMarks), 64)
	if err != nil {
		return 0
	}
	return v
}
