package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelgoals/internal/domain"
	"travelgoals/internal/pkg/response"
	"travelgoals/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/:id/payment-info", h.GetPaymentInfo)
	rg.POST("/bookings/:id/pay", h.SubmitPayment)
	rg.GET("/bookings/:id/receipt", h.GetReceipt)
}

func (h *Handler) GetPaymentInfo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	info, err := h.service.GetPaymentInfo(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to load payment info")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment_info": info})
}

func (h *Handler) SubmitPayment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	var req SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	result, err := h.service.SubmitPayment(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCardInvalid), errors.Is(err, ErrCardExpired), errors.Is(err, ErrDeclined):
			response.Error(c, http.StatusUnprocessableEntity, "PAYMENT_FAILED", err.Error())
		case errors.Is(err, ErrAlreadyPaid):
			response.Error(c, http.StatusConflict, "ALREADY_PAID", "Booking is already paid")
		case errors.Is(err, ErrBookingTerminal):
			response.Error(c, http.StatusConflict, "BOOKING_TERMINAL", "Booking is cancelled or completed")
		default:
			h.writeError(c, err, "Failed to process payment")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": result})
}

func (h *Handler) GetReceipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	receipt, err := h.service.GetReceipt(
		c.Request.Context(),
		id,
		c.GetInt64("user_id"),
		domain.UserRole(c.GetString("role")),
	)
	if err != nil {
		h.writeError(c, err, "Failed to load receipt")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"receipt": receipt})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Booking belongs to another user")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
