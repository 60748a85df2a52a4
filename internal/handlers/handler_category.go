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

// categoryHandler handles HTTP requests related to staffing categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.POST("", h.createCategory)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list categories from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories))
}

func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := models.CategoryID(c.Param("id"))

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Category not found", slog.String("category_id", string(categoryID)))
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			logger.Error("Failed to get category from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create category request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate category", slog.String("category_id", req.ID))
			c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
			return
		}
		logger.Error("Failed to create category in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	logger.Info("Category created successfully", slog.String("category_id", string(category.CategoryID)))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := models.CategoryID(c.Param("id"))
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update category request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Category not found for update", slog.String("category_id", string(categoryID)))
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			logger.Error("Failed to update category in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		}
		return
	}

	logger.Info("Category updated successfully", slog.String("category_id", string(categoryID)))
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := models.CategoryID(c.Param("id"))

	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Category not found for deletion", slog.String("category_id", string(categoryID)))
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			logger.Error("Failed to delete category in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		}
		return
	}

	logger.Info("Category deleted successfully", slog.String("category_id", string(categoryID)))
	c.Status(http.StatusNoContent)
}
