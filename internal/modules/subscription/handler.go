package subscription

import (
	"errors"
	"net/http"

	"connecthub/internal/domain"
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
	public.GET("/plans", h.Plans)

	sub := vendor.Group("/subscription")
	{
		sub.GET("", h.Current)
		sub.POST("", h.Switch)
		sub.POST("/verify", h.Verify)
	}
}

func (h *Handler) Plans(c *gin.Context) {
	plans, err := h.service.Plans(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load plans")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"plans": plans})
}

func (h *Handler) Current(c *gin.Context) {
	sub, err := h.service.Current(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load subscription")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"subscription": sub})
}

// Switch godoc
// @Summary Change subscription plan
// @Description Free plans activate immediately; paid plans return a gateway order the client settles before calling verify.
// @Tags Subscription
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /vendor/subscription [post]
func (h *Handler) Switch(c *gin.Context) {
	var req SwitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub, order, err := h.service.Switch(c.Request.Context(), middleware.UserID(c), domain.PlanID(req.PlanID))
	if err != nil {
		switch {
		case errors.Is(err, ErrPlanNotFound):
			response.Error(c, http.StatusNotFound, "Plan not found")
		case errors.Is(err, ErrSamePlan):
			response.Error(c, http.StatusConflict, "You are already on this plan")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to switch plan")
		}
		return
	}

	if sub != nil {
		response.OK(c, http.StatusOK, gin.H{"subscription": sub})
		return
	}
	response.OK(c, http.StatusOK, gin.H{"order": order})
}

// Verify godoc
// @Summary Verify a gateway payment
// @Description Recomputes the callback signature; a match activates the subscription, a mismatch marks the payment failed and leaves the subscription untouched.
// @Tags Subscription
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /vendor/subscription/verify [post]
func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub, err := h.service.VerifyAndActivate(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			response.Error(c, http.StatusNotFound, "Payment not found")
		case errors.Is(err, ErrBadSignature):
			response.Error(c, http.StatusBadRequest, "Payment verification failed")
		case errors.Is(err, ErrAlreadyProcessed):
			response.Error(c, http.StatusConflict, "Payment already processed")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to verify payment")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{"subscription": sub})
}
