package assistant

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelgoals/internal/pkg/response"
	"travelgoals/internal/pkg/validator"
)

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// RegisterPublicRoutes mounts the customer-facing assistant endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/assistant/chat", h.Chat)
	rg.GET("/assistant/quick-replies", h.QuickReplies)
	rg.POST("/assistant/search", h.Search)
	rg.POST("/assistant/recommendations", h.Recommend)
	rg.GET("/assistant/ws", h.ServeWS)
}

// RegisterVendorRoutes mounts the copywriting helper for vendors.
func (h *Handler) RegisterVendorRoutes(rg *gin.RouterGroup) {
	rg.POST("/assistant/describe", h.Describe)
}

func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	result := h.service.Chat(c.Request.Context(), req)
	response.Success(c, http.StatusOK, gin.H{"chat": result})
}

func (h *Handler) QuickReplies(c *gin.Context) {
	replies := h.service.QuickReplies(c.Query("context"))
	response.Success(c, http.StatusOK, gin.H{"quick_replies": replies})
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	result, err := h.service.Search(c.Request.Context(), req.Query)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search packages")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"search": result})
}

func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	recommendations, err := h.service.Recommend(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNoPackages) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No packages available for recommendation at the moment.")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build recommendations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"recommendations": recommendations})
}

func (h *Handler) Describe(c *gin.Context) {
	var req DescribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	description, err := h.service.GenerateDescription(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "AI_UNAVAILABLE", "AI service is currently unavailable")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"description": description})
}

func (h *Handler) ServeWS(c *gin.Context) {
	h.hub.ServeWS(c.Writer, c.Request)
}
