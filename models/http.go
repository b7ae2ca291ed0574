package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	// Password is the plain-text admin password to verify.
	Password string `json:"password"`
}

// OTPLoginRequest is the body of POST /api/auth/login-with-otp.
type OTPLoginRequest struct {
	// OTP is the six-digit code previously dispatched to the admin email.
	// Non-digit separators are stripped before validation.
	OTP string `json:"otp"`
}

// SendOTPRequest is the body of POST /api/admin/send-otp.
type SendOTPRequest struct {
	// OldPassword, when present, is re-verified against the current admin
	// credential before the code is dispatched.
	OldPassword string `json:"oldPassword,omitempty"`
}

// ChangePasswordRequest is the body of POST /api/admin/change-password.
type ChangePasswordRequest struct {
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
	OTP             string `json:"otp"`
}

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// UpdateMessagesRequest is the body of PUT /api/admin/messages.
type UpdateMessagesRequest struct {
	Messages []ContactMessage `json:"messages"`
}
