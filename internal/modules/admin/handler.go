package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelgoals/internal/modules/approval"
	"travelgoals/internal/pkg/response"
)

type Handler struct {
	service   *Service
	approvals *approval.Service
}

func NewHandler(service *Service, approvals *approval.Service) *Handler {
	return &Handler{service: service, approvals: approvals}
}

// RegisterRoutes mounts the admin console. The group is expected to carry
// auth + admin-role middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/approvals", h.GetApprovalQueue)
	rg.GET("/admin/vendors/pending", h.GetPendingVendors)
	rg.POST("/admin/vendors/:id/verify", h.VerifyVendor)
	rg.POST("/admin/vendors/:id/reject", h.RejectVendor)
	rg.POST("/admin/destinations/:id/approve", h.ApproveDestination)
	rg.POST("/admin/destinations/:id/reject", h.RejectDestination)
	rg.POST("/admin/packages/:id/approve", h.ApprovePackage)
	rg.POST("/admin/packages/:id/reject", h.RejectPackage)
	rg.GET("/admin/users", h.ListUsers)
	rg.POST("/admin/users/:id/activate", h.ActivateUser)
	rg.POST("/admin/users/:id/deactivate", h.DeactivateUser)
	rg.GET("/admin/bookings", h.ListBookings)
	rg.GET("/admin/statistics", h.GetStatistics)
}

func (h *Handler) GetApprovalQueue(c *gin.Context) {
	queue, err := h.service.GetApprovalQueue(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load approval queue")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"approvals": queue})
}

func (h *Handler) GetPendingVendors(c *gin.Context) {
	vendors, err := h.service.GetPendingVendors(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load pending vendors")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vendors": vendors})
}

func (h *Handler) VerifyVendor(c *gin.Context) {
	id, req, ok := h.decisionArgs(c)
	if !ok {
		return
	}
	profile, err := h.service.VerifyVendor(c.Request.Context(), id, c.GetInt64("user_id"), req.Notes)
	if err != nil {
		h.writeVendorError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vendor": profile})
}

func (h *Handler) RejectVendor(c *gin.Context) {
	id, req, ok := h.decisionArgs(c)
	if !ok {
		return
	}
	profile, err := h.service.RejectVendor(c.Request.Context(), id, c.GetInt64("user_id"), req.Notes)
	if err != nil {
		h.writeVendorError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vendor": profile})
}

func (h *Handler) ApproveDestination(c *gin.Context) {
	id, req, ok := h.decisionArgs(c)
	if !ok {
		return
	}
	p, err := h.approvals.ApproveDestination(c.Request.Context(), id, c.GetInt64("user_id"), req.Notes)
	if err != nil {
		h.writeApprovalError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"submission": p})
}

func (h *Handler) RejectDestination(c *gin.Context) {
	id, req, ok := h.decisionArgs(c)
	if !ok {
		return
	}
	p, err := h.approvals.RejectDestination(c.Request.Context(), id, c.GetInt64("user_id"), req.Notes)
	if err != nil {
		h.writeApprovalError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"submission": p})
}

func (h *Handler) ApprovePackage(c *gin.Context) {
	id, req, ok := h.decisionArgs(c)
	if !ok {
		return
	}
	p, err := h.approvals.ApprovePackage(c.Request.Context(), id, c.GetInt64("user_id"), req.Notes)
	if err != nil {
		h.writeApprovalError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"submission": p})
}

func (h *Handler) RejectPackage(c *gin.Context) {
	id, req, ok := h.decisionArgs(c)
	if !ok {
		return
	}
	p, err := h.approvals.RejectPackage(c.Request.Context(), id, c.GetInt64("user_id"), req.Notes)
	if err != nil {
		h.writeApprovalError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"submission": p})
}

func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, total, err := h.service.ListUsers(c.Request.Context(), c.Query("role"), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users, "total": total})
}

func (h *Handler) ActivateUser(c *gin.Context) {
	h.setUserActive(c, true)
}

func (h *Handler) DeactivateUser(c *gin.Context) {
	h.setUserActive(c, false)
}

func (h *Handler) setUserActive(c *gin.Context, active bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user ID")
		return
	}
	u, err := h.service.SetUserActive(c.Request.Context(), id, active)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) ListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	bookings, err := h.service.ListBookings(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load statistics")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"statistics": stats})
}

func (h *Handler) decisionArgs(c *gin.Context) (int64, DecideRequest, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ID")
		return 0, DecideRequest{}, false
	}
	var req DecideRequest
	_ = c.ShouldBindJSON(&req)
	return id, req, true
}

func (h *Handler) writeVendorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrVendorNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vendor profile not found")
	case errors.Is(err, ErrAlreadyReviewed):
		response.Error(c, http.StatusConflict, "ALREADY_REVIEWED", "Vendor application already reviewed")
	case errors.Is(err, ErrNotesRequired):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rejection requires notes")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to review vendor")
	}
}

func (h *Handler) writeApprovalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, approval.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Submission not found")
	case errors.Is(err, approval.ErrAlreadyDecided):
		response.Error(c, http.StatusConflict, "ALREADY_DECIDED", "Submission already decided")
	case errors.Is(err, approval.ErrNotesRequired):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rejection requires notes")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to decide submission")
	}
}
