package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInvalidIdentifier  = errors.New("invalid email or phone")
	ErrInvalidOTPFormat   = errors.New("invalid code format")
	ErrInvalidOTP         = errors.New("invalid or expired code")
	ErrTooManyAttempts    = errors.New("too many attempts")
	ErrResendCooldown     = errors.New("code was sent recently")
	ErrWeakPassword       = errors.New("password does not meet the policy")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)
