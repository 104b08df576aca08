package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelgoals/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.Me)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrWeakPassword:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case ErrEmailTaken:
			response.Error(c, http.StatusConflict, "ALREADY_EXISTS", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Registration failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": toUserResponse(user)})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid username or password")
		case ErrAccountInactive:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Account is deactivated")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		}
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{Token: token, User: toUserResponse(user)})
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.Profile(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": toUserResponse(user)})
}
