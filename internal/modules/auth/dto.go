package auth

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AdminPublic struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// ForgotPasswordRequest starts (or re-sends) the OTP step of the reset
// wizard. Method selects the channel; the matching identifier is required.
type ForgotPasswordRequest struct {
	Method string `json:"method" binding:"required,oneof=email phone"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

type VerifyOTPRequest struct {
	Method string `json:"method" binding:"required,oneof=email phone"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	OTP    string `json:"otp" binding:"required"`
}

type ResetPasswordRequest struct {
	ResetToken      string `json:"resetToken" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}
