package dto

import "github.com/hosteldesk/hosteldesk/internal/app/models"

// GenerateMeritListsResponse summarizes one allocation run
type GenerateMeritListsResponse struct {
	RunID       string              `json:"runId" example:"7b0c6d1e-8f0a-4f3e-9a1d-2c5b8e4f6a90"`
	Departments int                 `json:"departments" example:"3"`
	Lists       []*models.MeritList `json:"lists"`
}

// QuotaConfigRequest is the admin payload for merit list settings
type QuotaConfigRequest struct {
	DepartmentSeats     map[string]int     `json:"departmentSeats" binding:"required"`
	CategoryPercentages map[string]float64 `json:"categoryPercentages"`
}
