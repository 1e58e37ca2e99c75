package dto

// CreateAdmissionRequest is the applicant-facing intake payload
type CreateAdmissionRequest struct {
	FullName       string            `json:"fullName" binding:"required" example:"Asha Deshmukh"`
	Enrollment     string            `json:"enrollment" binding:"required" example:"EN2024031"`
	Email          string            `json:"email" binding:"required,email" example:"asha@example.com"`
	Phone          string            `json:"phone" example:"9876543210"`
	Department     string            `json:"department" binding:"required" example:"Computer Engineering"`
	Year           string            `json:"year" binding:"required" example:"1st"`
	PrevMarks      string            `json:"prevMarks" example:"87.40"`
	Category       string            `json:"category" binding:"required" example:"OBC"`
	Gender         string            `json:"gender" binding:"required" example:"male"`
	PhotoURL       string            `json:"photoUrl"`
	AdditionalData map[string]string `json:"additionalData"`
}

// UpdateAdmissionStatusRequest is the admin review payload
type UpdateAdmissionStatusRequest struct {
	Status string `json:"status" binding:"required" example:"accepted" enums:"verified,accepted,rejected"`
}
