package listing

import (
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

func (h *Handler) RegisterRoutes(public, vendor *gin.RouterGroup) {
	public.GET("/services/:id", h.Get)

	vendor.GET("/services", h.ListOwn)
	vendor.POST("/services", h.Create)
	vendor.PUT("/services/:id", h.Update)
}

// Get godoc
// @Summary Fetch a listing
// @Description Returns the listing with decoded images/tags; malformed stored values are reported through dataWarnings.
// @Tags Listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} map[string]interface{}
// @Router /services/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid listing id")
		return
	}

	l, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Listing not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load listing")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"data": NewView(*l)})
}

func (h *Handler) ListOwn(c *gin.Context) {
	listings, err := h.service.ListByVendor(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load listings")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"data": NewViews(listings)})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	l, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		if errors.Is(err, ErrTooManyImages) {
			response.Error(c, http.StatusBadRequest, "Maximum 5 images")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create listing")
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"data": NewView(*l)})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid listing id")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	l, err := h.service.Update(c.Request.Context(), id, middleware.UserID(c), middleware.UserRole(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Listing not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "You can only edit your own listings")
		case errors.Is(err, ErrTooManyImages):
			response.Error(c, http.StatusBadRequest, "Maximum 5 images")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update listing")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{"data": NewView(*l)})
}
