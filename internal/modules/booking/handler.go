package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelgoals/internal/domain"
	"travelgoals/internal/modules/pricing"
	"travelgoals/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/my", h.GetMyBookings)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
}

func (h *Handler) RegisterVendorRoutes(rg *gin.RouterGroup) {
	rg.GET("/vendor/bookings", h.GetVendorBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation),
			errors.Is(err, ErrReturnBeforeStart),
			errors.Is(err, ErrUnexpectedReturn),
			errors.Is(err, pricing.ErrNoAdults),
			errors.Is(err, pricing.ErrNegativeCount),
			errors.Is(err, pricing.ErrOverCapacity),
			errors.Is(err, pricing.ErrFareClassUnknown),
			errors.Is(err, pricing.ErrFareClassNotOffered):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrPackageNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Selected package not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"booking": gin.H{
			"id":             b.ID,
			"status":         b.Status,
			"payment_status": b.PaymentStatus,
			"total_price":    b.TotalPrice,
		},
	})
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.service.GetMyBookings(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetVendorBookings(c *gin.Context) {
	bookings, err := h.service.GetVendorBookings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Vendor profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.service.CancelBooking(
		c.Request.Context(),
		id,
		c.GetInt64("user_id"),
		domain.UserRole(c.GetString("role")),
		req.Reason,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only cancel your own bookings")
		case errors.Is(err, ErrBookingTerminal):
			response.Error(c, http.StatusConflict, "BOOKING_TERMINAL", "Booking is already completed or cancelled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking": gin.H{
			"id":           b.ID,
			"status":       b.Status,
			"cancelled_at": b.CancelledAt,
		},
	})
}
