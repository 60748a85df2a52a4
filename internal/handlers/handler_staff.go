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

// staffHandler handles HTTP requests related to the staff roster.
type staffHandler struct {
	staffService portssvc.StaffSvcFacade
}

func newStaffHandler(ss portssvc.StaffSvcFacade) *staffHandler {
	return &staffHandler{staffService: ss}
}

// registerStaffRoutes registers the staff roster routes.
func registerStaffRoutes(rg *gin.RouterGroup, staffService portssvc.StaffSvcFacade) {
	h := newStaffHandler(staffService)

	boys := rg.Group("/boys")
	{
		boys.GET("", h.listStaff)
		boys.GET("/:id", h.getStaff)
		boys.POST("", h.createStaff)
		boys.PUT("/:id", h.updateStaff)
		boys.DELETE("/:id", h.deleteStaff)
	}
}

func (h *staffHandler) createStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create staff request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create staff member", slog.String("name", req.Name))

	boy, err := h.staffService.CreateStaff(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Staff validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create staff member in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff member"})
		return
	}

	logger.Info("Staff member created successfully", slog.String("boy_id", boy.BoyID))
	c.JSON(http.StatusCreated, dto.ToStaffResponse(boy))
}

func (h *staffHandler) getStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boyID := c.Param("id")

	boy, err := h.staffService.GetStaffByID(c.Request.Context(), boyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Staff member not found", slog.String("boy_id", boyID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		} else {
			logger.Error("Failed to get staff member from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve staff member"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffResponse(boy))
}

func (h *staffHandler) listStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	boys, err := h.staffService.ListStaff(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list staff from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list staff"})
		return
	}

	logger.Info("Staff listed successfully", slog.Int("count", len(boys)))
	c.JSON(http.StatusOK, dto.ToListStaffResponse(boys))
}

func (h *staffHandler) updateStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boyID := c.Param("id")
	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update staff request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("boy_id", boyID))
	logger.Info("Received request to update staff member")

	boy, err := h.staffService.UpdateStaff(c.Request.Context(), boyID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Staff member not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Staff validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update staff member in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update staff member"})
		}
		return
	}

	logger.Info("Staff member updated successfully")
	c.JSON(http.StatusOK, dto.ToStaffResponse(boy))
}

func (h *staffHandler) deleteStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boyID := c.Param("id")

	logger = logger.With(slog.String("boy_id", boyID))
	logger.Info("Received request to delete staff member")

	if err := h.staffService.DeleteStaff(c.Request.Context(), boyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Staff member not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		} else {
			logger.Error("Failed to delete staff member in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete staff member"})
		}
		return
	}

	logger.Info("Staff member deleted successfully")
	c.JSON(http.StatusOK, gin.H{"id": boyID})
}
