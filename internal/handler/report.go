package handler

import (
    "context"
    "errors"
    "log"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/atlastours/reservation-analytics/internal/report"
)

// reportBuilder is the slice of the reporting engine this handler needs;
// *report.Service satisfies it.
type reportBuilder interface {
    Build(ctx context.Context, q report.PeriodQuery) (*report.Report, error)
}

// ReportHandler serves the admin dashboard report.
type ReportHandler struct {
    Reports reportBuilder
}

// NewReportHandler returns a ReportHandler backed by the given engine.
func NewReportHandler(reports reportBuilder) *ReportHandler {
    return &ReportHandler{Reports: reports}
}

// GetReservationReport handles GET /v1/admin/reports/reservations.
// Query parameters: filterType (month|year), month (YYYY-MM), year (YYYY).
// A malformed period yields 400; any storage failure yields 500 with no
// partial report.
func (h *ReportHandler) GetReservationReport(c echo.Context) error {
    q := report.PeriodQuery{
        FilterType: c.QueryParam("filterType"),
        Month:      c.QueryParam("month"),
        Year:       c.QueryParam("year"),
    }

    rep, err := h.Reports.Build(c.Request().Context(), q)
    if err != nil {
        if errors.Is(err, report.ErrInvalidPeriod) {
            return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid period"})
        }
        log.Printf("report: build failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to build report"})
    }
    return c.JSON(http.StatusOK, rep)
}
