package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/models"
	"spendwise/internal/services"
)

// ReportHandler handles chart-aggregate and insight requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetCategoryTotals handles the spending-by-category breakdown.
// @Summary     Spending by category
// @Description Get per-category spending totals, largest first (pie chart source)
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.CategoryTotal "Category totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/categories [get]
func (h *ReportHandler) GetCategoryTotals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.reportService.CategoryTotals(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories":         totals,
		"default_categories": models.DefaultCategories,
	})
}

// GetMonthlyTotals handles the spending-over-time series.
// @Summary     Spending by month
// @Description Get per-month spending totals in ascending month order (line chart source)
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.MonthTotal "Monthly totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthlyTotals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.reportService.MonthlyTotals(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"months": totals})
}

// GetMonthlySummary handles the spending-vs-budget summary for a month.
// @Summary     Monthly summary
// @Description Get total spend for a month, plus budget, remaining and percent-used when a budget is set
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month path string true "Month key (YYYY-MM)"
// @Success     200 {object} services.MonthlySummary "Monthly summary"
// @Failure     400 {object} ErrorResponse "Invalid month key"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/summary/{month} [get]
func (h *ReportHandler) GetMonthlySummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := parseMonthKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.reportService.MonthlySummary(userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetInsights handles the rule-based observation list.
// @Summary     Spending insights
// @Description Get ordered rule-based observations over the user's expenses
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} string "Observations"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights [get]
func (h *ReportHandler) GetInsights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	observations, err := h.reportService.Insights(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if observations == nil {
		observations = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"insights": observations})
}
