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
)

// eventHandler handles HTTP requests related to catering events.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{eventService: es}
}

// registerEventRoutes registers the event CRUD routes onto the given group.
// The dashboard mutates via POST /create, PUT /update/:id and DELETE
// /delete/:id rather than RESTful verbs on the collection.
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)

	rg.GET("", h.listEvents)
	rg.GET("/:id", h.getEvent)
	rg.POST("/create", h.createEvent)
	rg.PUT("/update/:id", h.updateEvent)
	rg.DELETE("/delete/:id", h.deleteEvent)
}

func (h *eventHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list events from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}

	logger.Info("Events listed successfully", slog.Int("count", len(events)))
	c.JSON(http.StatusOK, dto.ToListEventsResponse(events))
}

func (h *eventHandler) getEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	event, err := h.eventService.GetEventByID(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Event not found", slog.String("event_id", eventID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			logger.Error("Failed to get event from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve event"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create event request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create event", slog.String("title", req.Title))

	createdEvent, err := h.eventService.CreateEvent(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Event validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create event in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	logger.Info("Event created successfully", slog.String("event_id", createdEvent.EventID))
	c.JSON(http.StatusCreated, dto.ToEventResponse(createdEvent))
}

func (h *eventHandler) updateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update event request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("event_id", eventID))
	logger.Info("Received request to update event")

	updatedEvent, err := h.eventService.UpdateEvent(c.Request.Context(), eventID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Event not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Event validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update event in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		}
		return
	}

	logger.Info("Event updated successfully")
	c.JSON(http.StatusOK, dto.ToEventResponse(updatedEvent))
}

func (h *eventHandler) deleteEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	logger = logger.With(slog.String("event_id", eventID))
	logger.Info("Received request to delete event")

	if err := h.eventService.DeleteEvent(c.Request.Context(), eventID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Event not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			logger.Error("Failed to delete event in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		}
		return
	}

	logger.Info("Event deleted successfully")
	c.JSON(http.StatusOK, gin.H{"id": eventID})
}
