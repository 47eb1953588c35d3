package upload

import (
	"errors"
	"net/http"
	"strings"

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
	authed.POST("/upload", h.Upload)
}

type base64Request struct {
	File     string `json:"file" binding:"required"`
	Filename string `json:"filename" binding:"required"`
	Folder   string `json:"folder"`
}

// Upload godoc
// @Summary Upload a file
// @Description Accepts multipart form data (file + folder) or a JSON body with a base64 payload. Returns the public URL of the stored file.
// @Tags Upload
// @Accept mpfd
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /upload [post]
func (h *Handler) Upload(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		h.uploadBase64(c)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file provided")
		return
	}

	url, err := h.service.SaveMultipart(fh, c.PostForm("folder"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"file": gin.H{"url": url}})
}

func (h *Handler) uploadBase64(c *gin.Context) {
	var req base64Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	url, err := h.service.SaveBase64(req.File, req.Filename, req.Folder)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"file": gin.H{"url": url}})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "File exceeds the 5MB limit")
	case errors.Is(err, ErrBadExtension):
		response.Error(c, http.StatusBadRequest, "File type not allowed")
	case errors.Is(err, ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "File is empty")
	case errors.Is(err, ErrInvalidBase64):
		response.Error(c, http.StatusBadRequest, "Invalid base64 payload")
	default:
		response.Error(c, http.StatusInternalServerError, "Failed to store file")
	}
}
