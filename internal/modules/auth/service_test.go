package auth

import (
	"context"
	"testing"
	"time"

	"connecthub/internal/database"
	"connecthub/internal/domain"
	jwtsvc "connecthub/internal/pkg/jwt"
	"connecthub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type capturingSender struct {
	method      string
	destination string
	code        string
	calls       int
}

func (s *capturingSender) SendCode(_ context.Context, method, destination, code string) error {
	s.method = method
	s.destination = destination
	s.code = code
	s.calls++
	return nil
}

func setupService(t *testing.T) (*Service, *capturingSender, *repository.UserRepository) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, ResetCodeModel()))

	users := repository.NewUserRepository(db)
	sender := &capturingSender{}
	j := jwtsvc.New("test-secret", 15*time.Minute)

	svc := NewService(users, j, sender, "test-pepper", 5*time.Minute, time.Nanosecond, 10*time.Minute)
	return svc, sender, users
}

func seedUser(t *testing.T, users *repository.UserRepository, role domain.UserRole, status domain.UserStatus) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Secret1!"), bcrypt.DefaultCost)
	require.NoError(t, err)

	u := &domain.User{
		Email:        "user@example.com",
		Phone:        "9876543210",
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
	}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestResetWizardHappyPath(t *testing.T) {
	svc, sender, users := setupService(t)
	seedUser(t, users, domain.RoleBuyer, domain.UserActive)
	ctx := context.Background()

	require.NoError(t, svc.RequestReset(ctx, ForgotPasswordRequest{Method: "email", Email: "user@example.com"}))
	require.Equal(t, 1, sender.calls)
	require.Len(t, sender.code, 6)

	resetToken, err := svc.VerifyOTP(ctx, VerifyOTPRequest{Method: "email", Email: "user@example.com", OTP: sender.code})
	require.NoError(t, err)
	require.NotEmpty(t, resetToken)

	err = svc.ResetPassword(ctx, ResetPasswordRequest{
		ResetToken:      resetToken,
		NewPassword:     "NewPass1!",
		ConfirmPassword: "NewPass1!",
	})
	require.NoError(t, err)

	u, err := users.GetByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("NewPass1!")))
}

func TestResetWizardByPhone(t *testing.T) {
	svc, sender, users := setupService(t)
	seedUser(t, users, domain.RoleBuyer, domain.UserActive)
	ctx := context.Background()

	// formatted number resolves to the same stored digits
	require.NoError(t, svc.RequestReset(ctx, ForgotPasswordRequest{Method: "phone", Phone: "(987) 654-3210"}))
	require.Equal(t, 1, sender.calls)
	assert.Equal(t, "phone", sender.method)

	_, err := svc.VerifyOTP(ctx, VerifyOTPRequest{Method: "phone", Phone: "9876543210", OTP: sender.code})
	require.NoError(t, err)
}

func TestRequestResetUnknownAccountIsSilent(t *testing.T) {
	svc, sender, _ := setupService(t)

	err := svc.RequestReset(context.Background(), ForgotPasswordRequest{Method: "email", Email: "ghost@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, 0, sender.calls)
}

func TestRequestResetRejectsBadIdentifier(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	err := svc.RequestReset(ctx, ForgotPasswordRequest{Method: "email", Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	err = svc.RequestReset(ctx, ForgotPasswordRequest{Method: "phone", Phone: "12345"})
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc, sender, users := setupService(t)
	seedUser(t, users, domain.RoleBuyer, domain.UserActive)
	ctx := context.Background()

	require.NoError(t, svc.RequestReset(ctx, ForgotPasswordRequest{Method: "email", Email: "user@example.com"}))

	wrong := "000000"
	if sender.code == wrong {
		wrong = "000001"
	}

	_, err := svc.VerifyOTP(ctx, VerifyOTPRequest{Method: "email", Email: "user@example.com", OTP: wrong})
	assert.ErrorIs(t, err, ErrInvalidOTP)

	// the right code still works after one failure
	_, err = svc.VerifyOTP(ctx, VerifyOTPRequest{Method: "email", Email: "user@example.com", OTP: sender.code})
	assert.NoError(t, err)
}

func TestVerifyOTPAttemptCap(t *testing.T) {
	svc, sender, users := setupService(t)
	seedUser(t, users, domain.RoleBuyer, domain.UserActive)
	ctx := context.Background()

	require.NoError(t, svc.RequestReset(ctx, ForgotPasswordRequest{Method: "email", Email: "user@example.com"}))

	wrong := "000000"
	if sender.code == wrong {
		wrong = "000001"
	}

	var err error
	for i := 0; i < maxOTPAttempts; i++ {
		_, err = svc.VerifyOTP(ctx, VerifyOTPRequest{Method: "email", Email: "user@example.com", OTP: wrong})
	}
	assert.ErrorIs(t, err, ErrTooManyAttempts)

	// the code is dead after the cap: even the right one is refused
	token, err := svc.VerifyOTP(ctx, VerifyOTPRequest{Method: "email", Email: "user@example.com", OTP: sender.code})
	assert.ErrorIs(t, err, ErrTooManyAttempts)
	assert.Empty(t, token)
}

func TestVerifyOTPIsSingleUse(t *testing.T) {
	svc, sender, users := setupService(t)
	seedUser(t, users, domain.RoleBuyer, domain.UserActive)
	ctx := context.Background()

	require.NoError(t, svc.RequestReset(ctx, ForgotPasswordRequest{Method: "email", Email: "user@example.com"}))

	_, err := svc.VerifyOTP(ctx, VerifyOTPRequest{Method: "email", Email: "user@example.com", OTP: sender.code})
	require.NoError(t, err)

	_, err = svc.VerifyOTP(ctx, VerifyOTPRequest{Method: "email", Email: "user@example.com", OTP: sender.code})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestResetPasswordConfirmMismatchAlwaysBlocks(t *testing.T) {
	svc, sender, users := setupService(t)
	seedUser(t, users, domain.RoleBuyer, domain.UserActive)
	ctx := context.Background()

	require.NoError(t, svc.RequestReset(ctx, ForgotPasswordRequest{Method: "email", Email: "user@example.com"}))
	resetToken, err := svc.VerifyOTP(ctx, VerifyOTPRequest{Method: "email", Email: "user@example.com", OTP: sender.code})
	require.NoError(t, err)

	// both passwords individually satisfy the policy, yet the mismatch blocks
	err = svc.ResetPassword(ctx, ResetPasswordRequest{
		ResetToken:      resetToken,
		NewPassword:     "NewPass1!",
		ConfirmPassword: "OtherPass1!",
	})
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestResetPasswordPolicyEnforced(t *testing.T) {
	svc, sender, users := setupService(t)
	seedUser(t, users, domain.RoleBuyer, domain.UserActive)
	ctx := context.Background()

	require.NoError(t, svc.RequestReset(ctx, ForgotPasswordRequest{Method: "email", Email: "user@example.com"}))
	resetToken, err := svc.VerifyOTP(ctx, VerifyOTPRequest{Method: "email", Email: "user@example.com", OTP: sender.code})
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, ResetPasswordRequest{
		ResetToken:      resetToken,
		NewPassword:     "alllower1!",
		ConfirmPassword: "alllower1!",
	})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestResetPasswordRejectsForeignToken(t *testing.T) {
	svc, _, users := setupService(t)
	seedUser(t, users, domain.RoleBuyer, domain.UserActive)

	// a regular access token must not pass as a reset token
	j := jwtsvc.New("test-secret", 15*time.Minute)
	access, err := j.GenerateToken(1, "BUYER")
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), ResetPasswordRequest{
		ResetToken:      access,
		NewPassword:     "NewPass1!",
		ConfirmPassword: "NewPass1!",
	})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResendCooldown(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, ResetCodeModel()))

	users := repository.NewUserRepository(db)
	sender := &capturingSender{}
	j := jwtsvc.New("test-secret", 15*time.Minute)
	// long cooldown so the second request lands inside it
	svc := NewService(users, j, sender, "test-pepper", 5*time.Minute, time.Hour, 10*time.Minute)

	seedUser(t, users, domain.RoleBuyer, domain.UserActive)
	ctx := context.Background()

	require.NoError(t, svc.RequestReset(ctx, ForgotPasswordRequest{Method: "email", Email: "user@example.com"}))
	err = svc.RequestReset(ctx, ForgotPasswordRequest{Method: "email", Email: "user@example.com"})
	assert.ErrorIs(t, err, ErrResendCooldown)
	assert.Equal(t, 1, sender.calls)
}
