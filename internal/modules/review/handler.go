package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelgoals/internal/pkg/response"
	"travelgoals/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the read side on an unauthenticated group.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/packages/:id/reviews", h.ListForPackage)
	rg.GET("/packages/:id/reviews/summary", h.SummaryForPackage)
	rg.GET("/packages/:id/reviews/digest", h.Summarize)
	rg.POST("/reviews", h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	// reviews accept guests; identity is attached only when a token was sent
	var userID *int64
	userName := ""
	if id := c.GetInt64("user_id"); id != 0 {
		userID = &id
		userName = c.GetString("full_name")
	}

	rev, err := h.service.Submit(c.Request.Context(), userID, userName, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
		case errors.Is(err, ErrPackageNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Package not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit review")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"review": rev})
}

func (h *Handler) ListForPackage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid package ID")
		return
	}
	reviews, err := h.service.ListForPackage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) SummaryForPackage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid package ID")
		return
	}
	summary, err := h.service.SummaryForPackage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rating summary")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}

func (h *Handler) Summarize(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid package ID")
		return
	}
	digest, err := h.service.Summarize(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Package not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to summarize reviews")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"digest": digest})
}
