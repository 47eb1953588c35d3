package message

import (
	"errors"
	"net/http"
	"strconv"

	"connecthub/internal/domain"
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

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.POST("/contact", h.Submit)

	msgs := admin.Group("/messages")
	{
		msgs.GET("", h.List)
		msgs.PATCH("/:id/read", h.MarkRead)
		msgs.POST("/:id/reply", h.Reply)
		msgs.DELETE("/:id", h.Delete)
	}
}

type submitRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Subject  string `json:"subject" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Priority string `json:"priority" binding:"omitempty,oneof=LOW NORMAL HIGH"`
}

func (h *Handler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	m := &domain.Message{
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Body:     req.Body,
		Priority: domain.MessagePriority(req.Priority),
	}
	if err := h.service.Submit(c.Request.Context(), m); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	response.Message(c, http.StatusCreated, "Message sent")
}

func (h *Handler) List(c *gin.Context) {
	msgs, err := h.service.List(c.Request.Context(), repository.MessageFilters{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load messages")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"messages": msgs})
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid message id")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to update message")
		return
	}

	response.Message(c, http.StatusOK, "Message marked as read")
}

func (h *Handler) Reply(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid message id")
		return
	}

	var req struct {
		Reply string `json:"reply" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.Reply(c.Request.Context(), id, req.Reply); err != nil {
		h.writeError(c, err, "Failed to send reply")
		return
	}

	response.Message(c, http.StatusOK, "Reply sent")
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid message id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to delete message")
		return
	}

	response.Message(c, http.StatusOK, "Message deleted")
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "Message not found")
	case errors.Is(err, ErrEmptyReply):
		response.Error(c, http.StatusBadRequest, "Reply must not be empty")
	default:
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}
