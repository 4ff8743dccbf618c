package handlers

import (
	"net/http"
	"strconv"
	"time"

	"pocketledger/internal/errors"
	"pocketledger/internal/services"

	"github.com/labstack/echo/v4"
)

const maxSeriesBuckets = 60

// SummaryHandler serves the aggregated views: month totals, category
// breakdowns and the weekly/monthly chart series.
type SummaryHandler struct {
	analytics services.AnalyticsServiceInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(analytics services.AnalyticsServiceInterface) *SummaryHandler {
	return &SummaryHandler{analytics: analytics}
}

// Month returns the current calendar month summary.
func (h *SummaryHandler) Month(c echo.Context) error {
	return c.JSON(http.StatusOK, h.analytics.MonthSummary(time.Now()))
}

// Weekly returns n calendar-week buckets ending at the current week.
func (h *SummaryHandler) Weekly(c echo.Context) error {
	n, err := bucketCount(c, "weeks", 4)
	if err != nil {
		return sendError(c, http.StatusBadRequest, errors.ValidationOutOfRange)
	}
	return c.JSON(http.StatusOK, h.analytics.WeeklySeries(n, time.Now()))
}

// Monthly returns n calendar-month buckets ending at the current month.
func (h *SummaryHandler) Monthly(c echo.Context) error {
	n, err := bucketCount(c, "months", 6)
	if err != nil {
		return sendError(c, http.StatusBadRequest, errors.ValidationOutOfRange)
	}
	return c.JSON(http.StatusOK, h.analytics.MonthlySeries(n, time.Now()))
}

func bucketCount(c echo.Context, name string, defaultValue int) (int, error) {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(param)
	if err != nil || n < 0 || n > maxSeriesBuckets {
		return 0, echo.ErrBadRequest
	}
	return n, nil
}
