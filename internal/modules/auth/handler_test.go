package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connecthub/internal/database"
	"connecthub/internal/domain"
	"connecthub/internal/middleware"
	jwtsvc "connecthub/internal/pkg/jwt"
	"connecthub/internal/pkg/ratelimit"
	"connecthub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupRouter(t *testing.T) (*gin.Engine, *repository.UserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, ResetCodeModel()))

	users := repository.NewUserRepository(db)
	j := jwtsvc.New("test-secret", 15*time.Minute)
	svc := NewService(users, j, &capturingSender{}, "test-pepper", 5*time.Minute, time.Nanosecond, 10*time.Minute)
	h := NewHandler(svc, 24*time.Hour, false)

	r := gin.New()
	limiter := ratelimit.NewLimiter(100, 100, time.Minute)
	h.RegisterAdminLogin(r.Group("/api/admin"), middleware.RateLimitByIP(limiter))
	h.RegisterPublicRoutes(r.Group("/api"))
	return r, users
}

func seedAdmin(t *testing.T, users *repository.UserRepository, status domain.UserStatus) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Admin1!x"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(t.Context(), &domain.User{
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Status:       status,
	}))
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminLoginSuccessSetsCookie(t *testing.T) {
	r, users := setupRouter(t)
	seedAdmin(t, users, domain.UserActive)

	w := postJSON(r, "/api/admin/login", gin.H{"email": "admin@example.com", "password": "Admin1!x"})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Admin   struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"admin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "admin@example.com", body.Admin.Email)
	assert.Equal(t, "ADMIN", body.Admin.Role)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AdminCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "adminToken cookie must be set")
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)
}

func TestAdminLoginFailureIsUniform(t *testing.T) {
	r, users := setupRouter(t)
	seedAdmin(t, users, domain.UserActive)

	wrongPassword := postJSON(r, "/api/admin/login", gin.H{"email": "admin@example.com", "password": "WrongPass1!"})
	unknownEmail := postJSON(r, "/api/admin/login", gin.H{"email": "nobody@example.com", "password": "Admin1!x"})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	// identical bodies: the caller cannot tell which credential was wrong
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Contains(t, wrongPassword.Body.String(), "Invalid email or password")
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	r, users := setupRouter(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("Buyer1!x"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(t.Context(), &domain.User{
		Email:        "buyer@example.com",
		Name:         "Buyer",
		PasswordHash: string(hash),
		Role:         domain.RoleBuyer,
		Status:       domain.UserActive,
	}))

	w := postJSON(r, "/api/admin/login", gin.H{"email": "buyer@example.com", "password": "Buyer1!x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestAdminLoginInactiveAccount(t *testing.T) {
	r, users := setupRouter(t)
	seedAdmin(t, users, domain.UserInactive)

	w := postJSON(r, "/api/admin/login", gin.H{"email": "admin@example.com", "password": "Admin1!x"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Account is inactive")
}

func TestAdminLoginRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, ResetCodeModel()))

	users := repository.NewUserRepository(db)
	j := jwtsvc.New("test-secret", 15*time.Minute)
	svc := NewService(users, j, &capturingSender{}, "test-pepper", 5*time.Minute, time.Nanosecond, 10*time.Minute)
	h := NewHandler(svc, 24*time.Hour, false)

	r := gin.New()
	limiter := ratelimit.NewLimiter(3, 3, time.Hour)
	h.RegisterAdminLogin(r.Group("/api/admin"), middleware.RateLimitByIP(limiter))

	var last *httptest.ResponseRecorder
	for i := 0; i < 4; i++ {
		last = postJSON(r, "/api/admin/login", gin.H{"email": "admin@example.com", "password": "x"})
	}
	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
}

func TestForgotPasswordWizardOverHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, ResetCodeModel()))

	users := repository.NewUserRepository(db)
	sender := &capturingSender{}
	j := jwtsvc.New("test-secret", 15*time.Minute)
	svc := NewService(users, j, sender, "test-pepper", 5*time.Minute, time.Nanosecond, 10*time.Minute)
	h := NewHandler(svc, 24*time.Hour, false)

	r := gin.New()
	h.RegisterPublicRoutes(r.Group("/api"))

	hash, err := bcrypt.GenerateFromPassword([]byte("Secret1!"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(t.Context(), &domain.User{
		Email:        "user@example.com",
		Phone:        "9876543210",
		Name:         "User",
		PasswordHash: string(hash),
		Role:         domain.RoleBuyer,
		Status:       domain.UserActive,
	}))

	w := postJSON(r, "/api/auth/forgot-password", gin.H{"method": "email", "email": "user@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, sender.code)

	w = postJSON(r, "/api/auth/forgot-password/verify", gin.H{"method": "email", "email": "user@example.com", "otp": sender.code})
	require.Equal(t, http.StatusOK, w.Code)

	var verifyBody struct {
		Success    bool   `json:"success"`
		ResetToken string `json:"resetToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verifyBody))
	require.True(t, verifyBody.Success)
	require.NotEmpty(t, verifyBody.ResetToken)

	// mismatch blocks the final step
	w = postJSON(r, "/api/auth/forgot-password/reset", gin.H{
		"resetToken":      verifyBody.ResetToken,
		"newPassword":     "NewPass1!",
		"confirmPassword": "Different1!",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords do not match")

	w = postJSON(r, "/api/auth/forgot-password/reset", gin.H{
		"resetToken":      verifyBody.ResetToken,
		"newPassword":     "NewPass1!",
		"confirmPassword": "NewPass1!",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Password updated successfully")
}

func TestForgotPasswordCooldownDoesNotRevealAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, ResetCodeModel()))

	users := repository.NewUserRepository(db)
	sender := &capturingSender{}
	j := jwtsvc.New("test-secret", 15*time.Minute)
	svc := NewService(users, j, sender, "test-pepper", 5*time.Minute, time.Hour, 10*time.Minute)
	h := NewHandler(svc, 24*time.Hour, false)

	r := gin.New()
	h.RegisterPublicRoutes(r.Group("/api"))

	hash, err := bcrypt.GenerateFromPassword([]byte("Secret1!"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(t.Context(), &domain.User{
		Email:        "user@example.com",
		Name:         "User",
		PasswordHash: string(hash),
		Role:         domain.RoleBuyer,
		Status:       domain.UserActive,
	}))

	ghost := postJSON(r, "/api/auth/forgot-password", gin.H{"method": "email", "email": "nobody@example.com"})
	require.Equal(t, http.StatusOK, ghost.Code)

	first := postJSON(r, "/api/auth/forgot-password", gin.H{"method": "email", "email": "user@example.com"})
	require.Equal(t, http.StatusOK, first.Code)
	firstCode := sender.code
	require.NotEmpty(t, firstCode)

	// a second request inside the cooldown answers exactly like the
	// unknown-account case, and no new code goes out
	second := postJSON(r, "/api/auth/forgot-password", gin.H{"method": "email", "email": "user@example.com"})
	assert.Equal(t, ghost.Code, second.Code)
	assert.JSONEq(t, ghost.Body.String(), second.Body.String())
	assert.Equal(t, firstCode, sender.code)
}
