package job

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

func (h *Handler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/jobs", h.List)
	public.GET("/jobs/:id", h.Get)

	authed.POST("/jobs", h.Create)
	authed.PUT("/jobs/:id", h.Update)

	saved := authed.Group("/saved-jobs")
	{
		saved.GET("", h.SavedJobs)
		saved.POST("", h.SaveJob)
		saved.DELETE("", h.UnsaveJob)
	}
}

func (h *Handler) List(c *gin.Context) {
	var companyID int64
	if id, err := strconv.ParseInt(c.Query("companyId"), 10, 64); err == nil {
		companyID = id
	}

	jobs, err := h.service.List(c.Request.Context(), companyID, c.Query("status"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load jobs")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"jobs": NewViews(jobs)})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	j, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Job not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load job")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"job": NewView(*j)})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	j, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		if errors.Is(err, ErrSalaryRange) {
			response.Error(c, http.StatusBadRequest, "Salary minimum cannot exceed maximum")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create job")
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"job": NewView(*j)})
}

// Update godoc
// @Summary Edit a job posting
// @Description Company edit of its own posting, including the skills list.
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} map[string]interface{}
// @Router /jobs/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	j, err := h.service.Update(c.Request.Context(), id, middleware.UserID(c), middleware.UserRole(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Job not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "You can only edit your own jobs")
		case errors.Is(err, ErrSalaryRange):
			response.Error(c, http.StatusBadRequest, "Salary minimum cannot exceed maximum")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update job")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{"job": NewView(*j)})
}

// SavedJobs godoc
// @Summary List saved jobs
// @Tags SavedJobs
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /saved-jobs [get]
func (h *Handler) SavedJobs(c *gin.Context) {
	saved, err := h.service.SavedJobs(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load saved jobs")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"savedJobs": saved})
}

func (h *Handler) SaveJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Query("jobId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "jobId is required")
		return
	}

	saved, err := h.service.SaveJob(c.Request.Context(), middleware.UserID(c), jobID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Job not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to save job")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"savedJob": saved})
}

func (h *Handler) UnsaveJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Query("jobId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "jobId is required")
		return
	}

	if err := h.service.UnsaveJob(c.Request.Context(), middleware.UserID(c), jobID); err != nil {
		if errors.Is(err, ErrNotSaved) {
			response.Error(c, http.StatusNotFound, "Job is not in your saved jobs")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to remove saved job")
		return
	}

	response.Message(c, http.StatusOK, "Job removed from saved jobs")
}
