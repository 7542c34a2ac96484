package registration

// CheckRequest mirrors the registration form. Each field is checked on its own.
type CheckRequest struct {
	Email       string `json:"email" binding:"required,user_email"`
	Username    string `json:"username" binding:"required,username"`
	PhoneNumber string `json:"phoneNumber" binding:"required,eg_phone"`
	NationalID  string `json:"nationalId" binding:"required,eg_national_id"`
}
