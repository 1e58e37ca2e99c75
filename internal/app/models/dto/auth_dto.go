package dto

// LoginRequest is the staff login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"warden.shivneri"`
	Password string `json:"password" binding:"required" example:"changeme"`
}

// LoginResponse carries the issued token and the staff profile
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
	FullName    string `json:"fullName" example:"R. S. Pawar"`
	Role        string `json:"role" example:"warden"`
	SubRole     string `json:"subRole" example:"shivneri"`
}
