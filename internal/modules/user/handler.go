package user

import (
	"errors"
	"net/http"

	"connecthub/internal/middleware"
	"connecthub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(authed *gin.RouterGroup) {
	authed.GET("/users/me", h.Profile)
	authed.PUT("/users/me", h.UpdateProfile)
}

func (h *Handler) Profile(c *gin.Context) {
	u, err := h.service.Profile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.service.UpdateProfile(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, ErrInvalidPhone):
			response.Error(c, http.StatusBadRequest, "Enter a valid 10-digit phone number")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{"user": u})
}
