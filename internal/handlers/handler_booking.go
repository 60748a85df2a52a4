package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caterops/staffdesk/internal/apperrors"
	portssvc "github.com/caterops/staffdesk/internal/core/ports/services"
	"github.com/caterops/staffdesk/internal/dto"
	"github.com/caterops/staffdesk/internal/middleware"
	"github.com/caterops/staffdesk/internal/models"
)

// bookingHandler handles HTTP requests related to event bookings.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{bookingService: bs}
}

func registerBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.listBookings)
		bookings.POST("", h.createBooking)
		bookings.PUT("/:id/status", h.updateBookingStatus)
	}
}

func (h *bookingHandler) listBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bookings, err := h.bookingService.ListBookings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list bookings from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}

	logger.Info("Bookings listed successfully", slog.Int("count", len(bookings)))
	c.JSON(http.StatusOK, dto.ToListBookingsResponse(bookings))
}

func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create booking request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create booking",
		slog.String("boy_id", req.BoyID), slog.String("event_id", req.EventID))

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Booking references missing boy or event", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Booking validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create booking in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	logger.Info("Booking created successfully", slog.String("booking_id", booking.BookingID))
	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *bookingHandler) updateBookingStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")
	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update booking status request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("booking_id", bookingID))
	logger.Info("Received request to update booking status", slog.String("status", req.Status))

	booking, err := h.bookingService.UpdateBookingStatus(c.Request.Context(), bookingID, models.BookingStatus(req.Status), updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Booking not found for status update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			logger.Error("Failed to update booking status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking status"})
		}
		return
	}

	logger.Info("Booking status updated successfully", slog.String("status", string(booking.Status)))
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
