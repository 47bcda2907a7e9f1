package booking

import (
	"context"
	"net/http"
	"strconv"

	"stayhub/internal/domain"
	"stayhub/internal/middleware"
	"stayhub/internal/pkg/response"
	"stayhub/internal/policy"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", middleware.CanBook(), h.Create)
	rg.GET("/bookings/my-reservations", h.MyReservations)
	rg.POST("/bookings/:id/cancel", h.Cancel)
}

func (h *Handler) RegisterHostRoutes(rg *gin.RouterGroup) {
	rg.GET("/host/bookings", h.HostBookings)
	rg.POST("/host/bookings/:id/approve", h.Approve)
	rg.POST("/host/bookings/:id/reject", h.Reject)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), middleware.Subject(c), req)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Your account is suspended or booking is disabled")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking fields or date range")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
		case ErrNotBookable:
			response.Error(c, http.StatusBadRequest, "INVALID_STATE", "Accommodation is not available for booking")
		case ErrOverlap:
			response.Error(c, http.StatusConflict, "CONFLICT", "Accommodation is already booked for some part of the requested dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": b.ID, "status": b.Status})
}

func (h *Handler) MyReservations(c *gin.Context) {
	rows, err := h.service.MyReservations(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reservations")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) HostBookings(c *gin.Context) {
	rows, err := h.service.HostBookings(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) Approve(c *gin.Context) {
	h.decide(c, h.service.Approve)
}

func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, h.service.Reject)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), middleware.Subject(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": b.ID, "status": b.Status})
}

func (h *Handler) decide(c *gin.Context, op func(context.Context, policy.Subject, int64) (*domain.Booking, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	b, err := op(c.Request.Context(), middleware.Subject(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": b.ID, "status": b.Status})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not authorized to act on this booking")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrInvalidStatus:
		response.Error(c, http.StatusBadRequest, "INVALID_STATE", "Booking status does not permit this action")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
	}
}
