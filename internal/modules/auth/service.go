package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"connecthub/internal/domain"
	jwtsvc "connecthub/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const maxOTPAttempts = 5

// Service contains the admin login and password-reset wizard logic.
type Service struct {
	users          UserReader
	jwt            *jwtsvc.Service
	sender         CodeSender
	otpPepper      string
	otpTTL         time.Duration
	resendCooldown time.Duration
	resetTokenTTL  time.Duration
}

func NewService(
	users UserReader,
	jwt *jwtsvc.Service,
	sender CodeSender,
	otpPepper string,
	otpTTL time.Duration,
	resendCooldown time.Duration,
	resetTokenTTL time.Duration,
) *Service {
	return &Service{
		users:          users,
		jwt:            jwt,
		sender:         sender,
		otpPepper:      otpPepper,
		otpTTL:         otpTTL,
		resendCooldown: resendCooldown,
		resetTokenTTL:  resetTokenTTL,
	}
}

type resetCodeRow struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	UserID      int64      `gorm:"column:user_id;index"`
	CodeHash    string     `gorm:"column:code_hash"`
	Attempts    int        `gorm:"column:attempts"`
	ResendCount int        `gorm:"column:resend_count"`
	LastSentAt  time.Time  `gorm:"column:last_sent_at"`
	ExpiresAt   time.Time  `gorm:"column:expires_at"`
	UsedAt      *time.Time `gorm:"column:used_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
}

func (resetCodeRow) TableName() string { return "password_reset_codes" }

// ResetCodeModel is exported for migrations only.
func ResetCodeModel() any { return &resetCodeRow{} }

// AdminLogin authenticates the admin console. Unknown email, non-admin role
// and a wrong password are indistinguishable to the caller.
func (s *Service) AdminLogin(ctx context.Context, req AdminLoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if user.Role != domain.RoleAdmin {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if user.Status != domain.UserActive {
		return nil, "", ErrAccountInactive
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

// RequestReset is Step 1 of the wizard: validate the identifier format, then
// generate and deliver a 6-digit OTP. Unknown accounts report success and
// send nothing. Re-calling inside the cooldown window returns
// ErrResendCooldown, which the HTTP layer masks with the same generic answer
// so cooldown status never reveals whether the account exists.
func (s *Service) RequestReset(ctx context.Context, req ForgotPasswordRequest) error {
	user, err := s.lookupByIdentifier(ctx, req.Method, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, ErrInvalidIdentifier) {
			return err
		}
		// Unknown account: report accepted, send nothing.
		log.Printf("reset/request: identifier not found (masked) method=%s", req.Method)
		return nil
	}

	now := time.Now()
	var current resetCodeRow
	err = s.users.DB().WithContext(ctx).Where("user_id = ?", user.ID).First(&current).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err == nil && current.LastSentAt.Add(s.resendCooldown).After(now) {
		return ErrResendCooldown
	}

	code, genErr := generateOTP()
	if genErr != nil {
		return genErr
	}
	codeHash := hashOTP(code, s.otpPepper)
	expiresAt := now.Add(s.otpTTL)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		row := resetCodeRow{
			UserID:      user.ID,
			CodeHash:    codeHash,
			ResendCount: 1,
			LastSentAt:  now,
			ExpiresAt:   expiresAt,
		}
		if createErr := s.users.DB().WithContext(ctx).Create(&row).Error; createErr != nil {
			return createErr
		}
	} else {
		if updateErr := s.users.DB().WithContext(ctx).
			Model(&resetCodeRow{}).
			Where("user_id = ?", user.ID).
			Updates(map[string]any{
				"code_hash":    codeHash,
				"attempts":     0,
				"last_sent_at": now,
				"expires_at":   expiresAt,
				"resend_count": gorm.Expr("resend_count + 1"),
				"used_at":      nil,
			}).Error; updateErr != nil {
			return updateErr
		}
	}

	destination := user.Email
	if req.Method == "phone" {
		destination = user.Phone
	}
	return s.sender.SendCode(ctx, req.Method, destination, code)
}

// VerifyOTP is the OtpSent→Step2 transition: the code is checked against the
// stored hash, never by format alone, and a successful check hands back a
// short-lived reset token bound to the password_reset purpose.
func (s *Service) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (string, error) {
	if !ValidOTP(req.OTP) {
		return "", ErrInvalidOTPFormat
	}

	user, err := s.lookupByIdentifier(ctx, req.Method, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, ErrInvalidIdentifier) {
			return "", err
		}
		return "", ErrInvalidOTP
	}

	now := time.Now()
	var row resetCodeRow
	if err := s.users.DB().WithContext(ctx).Where("user_id = ?", user.ID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidOTP
		}
		return "", err
	}

	if row.UsedAt != nil || !row.ExpiresAt.After(now) {
		return "", ErrInvalidOTP
	}

	// Once the cap is hit the code is dead: even the right code is refused.
	if row.Attempts >= maxOTPAttempts {
		return "", ErrTooManyAttempts
	}

	if hashOTP(req.OTP, s.otpPepper) != row.CodeHash {
		attempts := row.Attempts + 1
		if updateErr := s.users.DB().WithContext(ctx).
			Model(&resetCodeRow{}).
			Where("user_id = ?", user.ID).
			Update("attempts", attempts).Error; updateErr != nil {
			return "", updateErr
		}
		if attempts >= maxOTPAttempts {
			return "", ErrTooManyAttempts
		}
		return "", ErrInvalidOTP
	}

	if err := s.users.DB().WithContext(ctx).
		Model(&resetCodeRow{}).
		Where("user_id = ?", user.ID).
		Update("used_at", now).Error; err != nil {
		return "", err
	}

	return s.jwt.GeneratePurposeToken(user.ID, jwtsvc.PurposePasswordReset, s.resetTokenTTL)
}

// ResetPassword is the Step2→Step3 transition. The confirm check runs before
// anything else: a mismatch always blocks the reset, however valid the new
// password is on its own.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if !ValidPassword(req.NewPassword) {
		return ErrWeakPassword
	}

	claims, err := s.jwt.ValidatePurposeToken(req.ResetToken, jwtsvc.PurposePasswordReset)
	if err != nil {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.UpdatePasswordHash(ctx, claims.UserID, string(hash))
}

func (s *Service) lookupByIdentifier(ctx context.Context, method, email, phone string) (*domain.User, error) {
	switch method {
	case "email":
		if !ValidEmail(email) {
			return nil, ErrInvalidIdentifier
		}
		return s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	case "phone":
		if !ValidPhone(phone) {
			return nil, ErrInvalidIdentifier
		}
		return s.users.GetByPhone(ctx, NormalizePhone(phone))
	default:
		return nil, ErrInvalidIdentifier
	}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func hashOTP(code, pepper string) string {
	h := sha256.Sum256([]byte(code + pepper))
	return hex.EncodeToString(h[:])
}

// DevConsoleSender logs codes instead of delivering them; used outside prod.
type DevConsoleSender struct {
	enabled bool
}

func NewDevConsoleSender(enabled bool) *DevConsoleSender {
	return &DevConsoleSender{enabled: enabled}
}

func (m *DevConsoleSender) SendCode(_ context.Context, method, destination, code string) error {
	if m.enabled {
		log.Printf("[DEV-OTP] method=%s destination=%s code=%s", method, destination, code)
	}
	return nil
}
