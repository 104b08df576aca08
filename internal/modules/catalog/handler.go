package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelgoals/internal/pkg/response"
	"travelgoals/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/destinations", h.ListDestinations)
	rg.GET("/packages", h.ListPackages)
	rg.GET("/packages/:id", h.GetPackage)
	rg.GET("/vendors", h.ListVendors)
}

func (h *Handler) ListDestinations(c *gin.Context) {
	destinations, err := h.service.ListDestinations(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load destinations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"destinations": destinations})
}

func (h *Handler) ListPackages(c *gin.Context) {
	var destinationID int64
	if raw := c.Query("destination_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid destination_id")
			return
		}
		destinationID = id
	}

	packages, err := h.service.ListPackages(c.Request.Context(), destinationID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load packages")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"packages": packages})
}

func (h *Handler) GetPackage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid package ID")
		return
	}

	pkg, err := h.service.GetPackage(c.Request.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Package not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load package")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"package": pkg})
}

func (h *Handler) ListVendors(c *gin.Context) {
	vendors, err := h.service.ListVendors(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load vendors")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vendors": vendors})
}
