package listing

import (
	"net/http"
	"strconv"

	"stayhub/internal/domain"
	"stayhub/internal/middleware"
	"stayhub/internal/pkg/response"
	"stayhub/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the browse surface: no authentication,
// approved listings only.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/accommodations", h.List)
	rg.GET("/accommodations/:id", h.GetByID)
}

func (h *Handler) RegisterHostRoutes(rg *gin.RouterGroup) {
	rg.POST("/accommodations", h.Submit)
	rg.GET("/host/accommodations", h.ListMine)
	rg.PUT("/host/accommodations/:id", h.Update)
	rg.DELETE("/host/accommodations/:id", h.Delete)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/listings/pending", h.ListPending)
	rg.PUT("/admin/listings/:id/status", h.Moderate)
}

func (h *Handler) List(c *gin.Context) {
	listings, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load accommodations")
		return
	}
	response.Success(c, http.StatusOK, listings)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid accommodation ID")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load accommodation")
		}
		return
	}

	response.Success(c, http.StatusOK, a)
}

func (h *Handler) Submit(c *gin.Context) {
	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid listing fields", details)
		return
	}

	a, err := h.service.Submit(c.Request.Context(), middleware.Subject(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, a)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid accommodation ID")
		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid listing fields", details)
		return
	}

	a, err := h.service.Update(c.Request.Context(), middleware.Subject(c), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid accommodation ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.Subject(c), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *Handler) Moderate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid accommodation ID")
		return
	}

	var req ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status is required")
		return
	}

	if err := h.service.Moderate(c.Request.Context(), middleware.Subject(c), id, domain.ListingStatus(req.Status)); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "status": req.Status})
}

func (h *Handler) ListMine(c *gin.Context) {
	listings, err := h.service.ListMine(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, listings)
}

func (h *Handler) ListPending(c *gin.Context) {
	listings, err := h.service.ListPending(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, listings)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not allowed to manage this accommodation")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status provided")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
	case ErrActiveBookings:
		response.Error(c, http.StatusConflict, "CONFLICT", "Accommodation still has pending or approved bookings")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process accommodation")
	}
}
