package admin

import (
	"errors"
	"net/http"
	"strconv"

	"connecthub/internal/domain"
	"connecthub/internal/middleware"
	"connecthub/internal/pkg/response"
	"connecthub/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/stats", h.Stats)

	admin.GET("/users", h.Users)
	admin.PATCH("/users/:id/status", h.SetUserStatus)

	admin.GET("/payouts/pending", h.PendingPayouts)
	admin.POST("/payouts/process", h.ProcessPayouts)
}

// Stats godoc
// @Summary Admin dashboard stats
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) Users(c *gin.Context) {
	f := repository.UserFilters{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		Status: c.Query("status"),
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		f.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset > 0 {
		f.Offset = offset
	}

	users, total, err := h.service.Users(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load users")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"users": users, "total": total})
}

func (h *Handler) SetUserStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE SUSPENDED PENDING"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.SetUserStatus(c.Request.Context(), id, domain.UserStatus(req.Status)); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	response.Message(c, http.StatusOK, "User status updated")
}

func (h *Handler) PendingPayouts(c *gin.Context) {
	payouts, err := h.service.PendingPayouts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load payouts")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"payouts": payouts})
}

func (h *Handler) ProcessPayouts(c *gin.Context) {
	var req struct {
		IDs []int64 `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	processed, err := h.service.ProcessPayouts(c.Request.Context(), req.IDs, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, ErrEmptyBatch) {
			response.Error(c, http.StatusBadRequest, "No payouts selected")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to process payouts")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"processed": processed})
}
