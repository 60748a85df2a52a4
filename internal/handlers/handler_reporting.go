package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/caterops/staffdesk/internal/core/ports/services"
	"github.com/caterops/staffdesk/internal/dto"
	"github.com/caterops/staffdesk/internal/middleware"
)

// reportingHandler serves the dashboard KPI block and the finance summaries.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboardSummary)
		reports.GET("/revenue", h.getRevenueReport)
	}
	rg.GET("/payments", h.listPayments)
}

func (h *reportingHandler) getDashboardSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.GetDashboardSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *reportingHandler) getRevenueReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.GetRevenueReport(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute revenue report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue report"})
		return
	}

	c.JSON(http.StatusOK, dto.RevenueReportResponse{
		Monthly:       report.Monthly,
		TotalRevenue:  report.TotalRevenue,
		TotalExpense:  report.TotalExpense,
		TotalWagePaid: report.TotalWagePaid,
	})
}

func (h *reportingHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payments, err := h.reportingService.ListPayments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ListPaymentsResponse{Payments: payments})
}
