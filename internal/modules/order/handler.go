package order

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

func (h *Handler) RegisterRoutes(v *gin.RouterGroup, admin *gin.RouterGroup) {
	orders := v.Group("/orders")
	{
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.POST("", h.Create)
		orders.POST("/:id/cancel", h.Cancel)
		orders.PATCH("/:id/status", h.UpdateStatus)
	}

	admin.GET("/services/bookings", h.Bookings)
}

// List godoc
// @Summary List own orders
// @Description Returns the authenticated user's orders, optionally split by PRODUCT/SERVICE type. Each entry carries a derived cancellable flag.
// @Tags Orders
// @Produce json
// @Param type query string false "PRODUCT or SERVICE"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /orders [get]
func (h *Handler) List(c *gin.Context) {
	userID := middleware.UserID(c)
	role := middleware.UserRole(c)

	f := repository.OrderFilters{
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		f.Limit = limit
	}

	// non-admins only ever see their own orders
	if role == domain.RoleAdmin {
		if buyerID, err := strconv.ParseInt(c.Query("buyerId"), 10, 64); err == nil {
			f.BuyerID = buyerID
		}
	} else if role == domain.RoleVendor || role == domain.RoleSeller {
		f.SellerID = userID
	} else {
		f.BuyerID = userID
	}

	orders, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load orders")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"orders": NewViews(orders)})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	o, err := h.service.Get(c.Request.Context(), id, middleware.UserID(c), middleware.UserRole(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "You do not have access to this order")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to load order")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{"order": NewView(*o)})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	o, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		if errors.Is(err, ErrListingGone) {
			response.Error(c, http.StatusNotFound, "Listing not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to place order")
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"order": NewView(*o)})
}

// Cancel godoc
// @Summary Cancel an order
// @Description Only PENDING and CONFIRMED orders can be cancelled.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /orders/{id}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req CancelRequest
	_ = c.ShouldBindJSON(&req)

	o, err := h.service.Cancel(c.Request.Context(), id, middleware.UserID(c), middleware.UserRole(c), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "You do not have access to this order")
		case errors.Is(err, ErrNotCancellable):
			response.Error(c, http.StatusConflict, "This order can no longer be cancelled")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to cancel order")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{"order": NewView(*o)})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	o, err := h.service.UpdateStatus(c.Request.Context(), id, middleware.UserID(c), middleware.UserRole(c), domain.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "You do not have access to this order")
		case errors.Is(err, ErrBadTransition):
			response.Error(c, http.StatusConflict, "Illegal status transition")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{"order": NewView(*o)})
}

// Bookings godoc
// @Summary Admin bookings dashboard
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/services/bookings [get]
func (h *Handler) Bookings(c *gin.Context) {
	bookings, stats, err := h.service.Bookings(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"bookings": NewViews(bookings),
		"stats":    stats,
	})
}
