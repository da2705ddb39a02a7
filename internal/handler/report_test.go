package handler

import (
    "context"
    "encoding/json"
    "errors"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/atlastours/reservation-analytics/internal/report"
)

// fakeBuilder returns a canned report or error and records the query it saw.
type fakeBuilder struct {
    rep *report.Report
    err error
    q   report.PeriodQuery
}

func (f *fakeBuilder) Build(_ context.Context, q report.PeriodQuery) (*report.Report, error) {
    f.q = q
    return f.rep, f.err
}

func performReportRequest(t *testing.T, b *fakeBuilder, target string) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, target, nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)

    h := NewReportHandler(b)
    if err := h.GetReservationReport(c); err != nil {
        t.Fatalf("handler returned error: %v", err)
    }
    return rec
}

func TestGetReservationReportOK(t *testing.T) {
    b := &fakeBuilder{rep: &report.Report{TotalReservations: 4, TotalRevenue: 1700}}

    rec := performReportRequest(t, b, "/v1/admin/reports/reservations?filterType=month&month=2025-03")

    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200", rec.Code)
    }
    if b.q.FilterType != "month" || b.q.Month != "2025-03" {
        t.Errorf("query passed to engine = %+v", b.q)
    }

    var body map[string]json.RawMessage
    if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
        t.Fatalf("invalid response JSON: %v", err)
    }
    if string(body["totalReservations"]) != "4" {
        t.Errorf("totalReservations = %s, want 4", body["totalReservations"])
    }
    if string(body["totalRevenue"]) != "1700" {
        t.Errorf("totalRevenue = %s, want 1700", body["totalRevenue"])
    }
}

func TestGetReservationReportInvalidPeriod(t *testing.T) {
    b := &fakeBuilder{err: report.ErrInvalidPeriod}

    rec := performReportRequest(t, b, "/v1/admin/reports/reservations?month=junk")

    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
    var body map[string]string
    if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
        t.Fatalf("invalid response JSON: %v", err)
    }
    if body["message"] != "invalid period" {
        t.Errorf("message = %q, want %q", body["message"], "invalid period")
    }
}

func TestGetReservationReportStorageFailure(t *testing.T) {
    b := &fakeBuilder{err: errors.New("connection refused")}

    rec := performReportRequest(t, b, "/v1/admin/reports/reservations")

    if rec.Code != http.StatusInternalServerError {
        t.Fatalf("status = %d, want 500", rec.Code)
    }
    var body map[string]string
    if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
        t.Fatalf("invalid response JSON: %v", err)
    }
    if body["message"] == "" {
        t.Error("500 response carries no message")
    }
}
