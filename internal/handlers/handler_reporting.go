package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tandoorlabs/pos-backend/internal/core/ports/services"
	"github.com/tandoorlabs/pos-backend/internal/middleware"
)

// reportingHandler handles HTTP requests for sales reports and exports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers reporting routes. Reports are
// restricted to admins and managers.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports", middleware.RequireRole("ADMIN", "MANAGER"))
	{
		reports.GET("/daily", h.getDailySummaries)
		reports.GET("/categories", h.getCategorySales)
		reports.GET("/export", h.exportBills)
	}
}

// getDailySummaries godoc
// @Summary Daily sales summaries
// @Description Aggregates sales, bill counts and item counts per calendar day
// @Tags reports
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD), defaults to today"
// @Param   to query string false "End date inclusive (YYYY-MM-DD), defaults to today"
// @Success 200 {array} domain.DailySummary
// @Failure 400 {object} map[string]string "Invalid date format"
// @Failure 500 {object} map[string]string "Failed to build daily summaries"
// @Security BearerAuth
// @Router /reports/daily [get]
func (h *reportingHandler) getDailySummaries(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summaries, err := h.reportingService.GetDailySummaries(c.Request.Context(), from, to)
	if err != nil {
		respondWithError(c, err, "Failed to build daily summaries")
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// getCategorySales godoc
// @Summary Sales per menu category
// @Tags reports
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD), defaults to today"
// @Param   to query string false "End date inclusive (YYYY-MM-DD), defaults to today"
// @Success 200 {array} domain.CategorySales
// @Failure 400 {object} map[string]string "Invalid date format"
// @Failure 500 {object} map[string]string "Failed to build category sales"
// @Security BearerAuth
// @Router /reports/categories [get]
func (h *reportingHandler) getCategorySales(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sales, err := h.reportingService.GetCategorySales(c.Request.Context(), from, to)
	if err != nil {
		respondWithError(c, err, "Failed to build category sales")
		return
	}
	c.JSON(http.StatusOK, sales)
}

// exportBills godoc
// @Summary Export bills as CSV
// @Description Downloads the bills in range as a CSV attachment
// @Tags reports
// @Produce  text/csv
// @Param   from query string false "Start date (YYYY-MM-DD), defaults to today"
// @Param   to query string false "End date inclusive (YYYY-MM-DD), defaults to today"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} map[string]string "Invalid date format"
// @Failure 500 {object} map[string]string "Failed to export bills"
// @Security BearerAuth
// @Router /reports/export [get]
func (h *reportingHandler) exportBills(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.reportingService.ExportBillsCSV(c.Request.Context(), from, to)
	if err != nil {
		respondWithError(c, err, "Failed to export bills")
		return
	}

	filename := fmt.Sprintf("bills-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.WriteAll(rows); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to write CSV response", "error", err)
	}
}
