package review

import (
	"context"
	"errors"
	"net/http"
	"strconv"

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

func (h *Handler) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	public.GET("/listings/:id/reviews", h.ListByListing)

	reviews := authed.Group("/reviews")
	{
		reviews.GET("", h.ListOwn)
		reviews.POST("", h.Create)
		reviews.PUT("", h.Update)
		reviews.DELETE("", h.Delete)
		reviews.POST("/:id/helpful", h.MarkHelpful)
		reviews.POST("/:id/report", h.Report)
	}

	admin.PATCH("/reviews/:id/approved", h.SetApproved)
}

func (h *Handler) ListByListing(c *gin.Context) {
	listingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid listing id")
		return
	}

	reviews, err := h.service.ListByListing(c.Request.Context(), listingID, true)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load reviews")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"reviews": NewViews(reviews)})
}

func (h *Handler) ListOwn(c *gin.Context) {
	reviews, err := h.service.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load reviews")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"reviews": NewViews(reviews)})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	rev, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating):
			response.Error(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		case errors.Is(err, ErrEmptyComment):
			response.Error(c, http.StatusBadRequest, "Comment must not be empty")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create review")
		}
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"review": NewView(*rev)})
}

// Update godoc
// @Summary Edit a review
// @Description Edits rating and comment, authorized by the reviewId+userId composite key.
// @Tags Reviews
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /reviews [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	rev, err := h.service.Update(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.writeError(c, err, "Failed to update review")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"review": NewView(*rev)})
}

func (h *Handler) Delete(c *gin.Context) {
	reviewID, err1 := strconv.ParseInt(c.Query("reviewId"), 10, 64)
	userID, err2 := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "reviewId and userId are required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), reviewID, userID, middleware.UserID(c)); err != nil {
		h.writeError(c, err, "Failed to delete review")
		return
	}

	response.Message(c, http.StatusOK, "Review deleted")
}

func (h *Handler) MarkHelpful(c *gin.Context) {
	h.flagAction(c, h.service.MarkHelpful, "Failed to mark review helpful")
}

func (h *Handler) Report(c *gin.Context) {
	h.flagAction(c, h.service.Report, "Failed to report review")
}

func (h *Handler) SetApproved(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid review id")
		return
	}

	var req struct {
		Value bool `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.SetApproved(c.Request.Context(), id, req.Value); err != nil {
		h.writeError(c, err, "Failed to update review")
		return
	}

	response.Message(c, http.StatusOK, "Review updated")
}

func (h *Handler) flagAction(c *gin.Context, action func(ctx context.Context, id int64) error, failMsg string) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid review id")
		return
	}

	if err := action(c.Request.Context(), id); err != nil {
		h.writeError(c, err, failMsg)
		return
	}

	response.Message(c, http.StatusOK, "Review updated")
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "Review not found")
	case errors.Is(err, ErrNotAuthor):
		response.Error(c, http.StatusForbidden, "You can only modify your own reviews")
	case errors.Is(err, ErrInvalidRating):
		response.Error(c, http.StatusBadRequest, "Rating must be between 1 and 5")
	case errors.Is(err, ErrEmptyComment):
		response.Error(c, http.StatusBadRequest, "Comment must not be empty")
	default:
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}
