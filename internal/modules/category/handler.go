package category

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"connecthub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public list route; mutations go on the admin
// group so the caller can guard them.
func (h *Handler) RegisterRoutes(v *gin.RouterGroup, admin *gin.RouterGroup) {
	v.GET("/categories", h.List)
	v.GET("/categories/:id", h.Get)

	admin.POST("/categories", h.Create)
	admin.PUT("/categories/:id", h.Update)
	admin.DELETE("/categories/:id", h.Delete)
	admin.PATCH("/categories/:id/featured", h.SetFeatured)
	admin.PATCH("/categories/:id/active", h.SetActive)
}

// List godoc
// @Summary List categories
// @Description Returns categories with derived listing counts, optionally filtered by type, search term and status.
// @Tags Categories
// @Produce json
// @Param type query string false "SERVICE or PRODUCT"
// @Param includeInactive query bool false "Include inactive categories"
// @Param search query string false "Case-insensitive substring over name, slug, description"
// @Param status query string false "All, Active, Inactive or Featured"
// @Success 200 {object} map[string]interface{}
// @Router /categories [get]
func (h *Handler) List(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"

	cats, err := h.service.List(
		c.Request.Context(),
		c.Query("type"),
		includeInactive,
		c.Query("search"),
		c.DefaultQuery("status", StatusAll),
	)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load categories")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"categories": cats})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	cat, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Category not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load category")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"category": cat})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cat, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.Error(c, http.StatusConflict, "A category with this slug already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create category")
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"category": cat})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cat, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Category not found")
		case errors.Is(err, ErrSlugTaken):
			response.Error(c, http.StatusConflict, "A category with this slug already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update category")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{"category": cat})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Category not found")
		case errors.Is(err, ErrHasListings):
			response.Error(c, http.StatusConflict, "Category still has listings attached")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete category")
		}
		return
	}

	response.Message(c, http.StatusOK, "Category deleted")
}

func (h *Handler) SetFeatured(c *gin.Context) {
	h.setFlag(c, h.service.SetFeatured)
}

func (h *Handler) SetActive(c *gin.Context) {
	h.setFlag(c, h.service.SetActive)
}

func (h *Handler) setFlag(c *gin.Context, set func(ctx context.Context, id int64, value bool) error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	var req SetFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := set(c.Request.Context(), id, req.Value); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Category not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update category")
		return
	}

	response.Message(c, http.StatusOK, "Category updated")
}
