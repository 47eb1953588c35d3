package auth

import (
	"errors"
	"net/http"
	"time"

	"connecthub/internal/middleware"
	"connecthub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages the admin login and forgot-password endpoints.
type Handler struct {
	service      *Service
	sessionTTL   time.Duration
	cookieSecure bool
}

func NewHandler(service *Service, sessionTTL time.Duration, cookieSecure bool) *Handler {
	return &Handler{
		service:      service,
		sessionTTL:   sessionTTL,
		cookieSecure: cookieSecure,
	}
}

// RegisterAdminLogin mounts the login route. The rate limiter is applied by
// the caller so it runs before this handler does any work.
func (h *Handler) RegisterAdminLogin(admin *gin.RouterGroup, limiter gin.HandlerFunc) {
	admin.POST("/login", limiter, h.AdminLogin)
}

func (h *Handler) RegisterPublicRoutes(v *gin.RouterGroup) {
	authGroup := v.Group("/auth")
	{
		authGroup.POST("/forgot-password", h.ForgotPassword)
		authGroup.POST("/forgot-password/verify", h.VerifyOTP)
		authGroup.POST("/forgot-password/reset", h.ResetPassword)
	}
}

// AdminLogin godoc
// @Summary Admin console login
// @Description Checks credentials and sets the adminToken HTTP-only cookie. The failure message never distinguishes an unknown email from a wrong password.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /admin/login [post]
func (h *Handler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Malformed credentials get the same uniform answer as wrong ones.
		response.Error(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	user, token, err := h.service.AdminLogin(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, ErrAccountInactive):
			response.Error(c, http.StatusForbidden, "Account is inactive")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to login")
		}
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminCookieName, token, int(h.sessionTTL.Seconds()), "/", "", h.cookieSecure, true)

	response.OK(c, http.StatusOK, gin.H{
		"admin": AdminPublic{
			Email: user.Email,
			Role:  string(user.Role),
			Name:  user.Name,
		},
	})
}

// ForgotPassword accepts the Step-1 request (and any resend). The answer is
// the same whether or not the account exists.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.RequestReset(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrInvalidIdentifier):
			response.Error(c, http.StatusBadRequest, "Enter a valid email or 10-digit phone number")
		case errors.Is(err, ErrResendCooldown):
			// No new code goes out, but a distinct status here would tell the
			// caller the account exists. Answer exactly as for success.
			response.Message(c, http.StatusOK, "If the account exists, a code has been sent")
		default:
			response.Error(c, http.StatusInternalServerError, "Could not send the code")
		}
		return
	}

	response.Message(c, http.StatusOK, "If the account exists, a code has been sent")
}

func (h *Handler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resetToken, err := h.service.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidOTPFormat):
			response.Error(c, http.StatusBadRequest, "Enter the 6-digit code")
		case errors.Is(err, ErrTooManyAttempts):
			response.Error(c, http.StatusTooManyRequests, "Too many attempts, request a new code")
		case errors.Is(err, ErrInvalidOTP), errors.Is(err, ErrInvalidIdentifier):
			response.Error(c, http.StatusUnauthorized, "Invalid or expired code")
		default:
			response.Error(c, http.StatusInternalServerError, "Could not verify the code")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{"resetToken": resetToken})
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrPasswordMismatch):
			response.Error(c, http.StatusBadRequest, "Passwords do not match")
		case errors.Is(err, ErrWeakPassword):
			response.Error(c, http.StatusBadRequest, "Password must be at least 6 characters with lowercase, uppercase, digit and special character")
		case errors.Is(err, ErrInvalidResetToken):
			response.Error(c, http.StatusUnauthorized, "Invalid or expired reset token")
		default:
			response.Error(c, http.StatusInternalServerError, "Could not reset the password")
		}
		return
	}

	response.Message(c, http.StatusOK, "Password updated successfully")
}
