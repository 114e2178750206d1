// Reporting HTTP handlers.
//
// This file exposes the read-only reporting endpoints:
//   - GET /reports/dashboard          (downtime counts + top worn components)
//   - GET /reports/repairs/export     (flat repair rows with captions)
//   - GET /reports/deviations/export  (flat deviation rows with captions)
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hydromech/dredger-journal/internal/repo"
	"github.com/hydromech/dredger-journal/internal/services"
)

// ReportService defines the service contract required by the reporting
// endpoints.
type ReportService interface {
	Dashboard(ctx context.Context, after, before time.Time) (*services.Dashboard, error)
	RepairRows(ctx context.Context) ([]services.Column, []repo.RepairExportRow, error)
	DeviationRows(ctx context.Context) ([]services.Column, []repo.DeviationExportRow, error)
}

// RepairExportResponse pairs export rows with their column captions.
type RepairExportResponse struct {
	Columns []services.Column      `json:"columns"`
	Rows    []repo.RepairExportRow `json:"rows"`
}

// DeviationExportResponse pairs export rows with their column captions.
type DeviationExportResponse struct {
	Columns []services.Column         `json:"columns"`
	Rows    []repo.DeviationExportRow `json:"rows"`
}

// GetDashboard godoc
// @ID          getDashboard
// @Summary     Journal dashboard
// @Description Downtime counts per deviation type within the date range and
// @Description the five most worn components. The range defaults to the first
// @Description day of the current month through today.
// @Tags        Reports
// @Produce     json
// @Param       after  query string false "range lower bound (YYYY-MM-DD)"
// @Param       before query string false "range upper bound (YYYY-MM-DD)"
// @Success     200 {object} services.Dashboard
// @Failure     400 {object} handlers.ErrorResponse "Invalid range"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /reports/dashboard [get]
func (h *Handlers) GetDashboard(c *gin.Context) {
	var after, before time.Time
	if p, okDate := parseOptionalDate(c.Query("after")); !okDate {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "after must be YYYY-MM-DD")
		return
	} else if p != nil {
		after = *p
	}
	if p, okDate := parseOptionalDate(c.Query("before")); !okDate {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "before must be YYYY-MM-DD")
		return
	} else if p != nil {
		before = *p
	}

	dash, err := h.reportSvc.Dashboard(c.Request.Context(), after, before)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, dash)
}

// ExportRepairs godoc
// @ID          exportRepairs
// @Summary     Export repairs as flat rows
// @Description Returns every repair joined with its dredger as one flat row
// @Description per record, plus the caption list a spreadsheet export needs.
// @Tags        Reports
// @Produce     json
// @Success     200 {object} handlers.RepairExportResponse
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /reports/repairs/export [get]
func (h *Handlers) ExportRepairs(c *gin.Context) {
	cols, rows, err := h.reportSvc.RepairRows(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, RepairExportResponse{Columns: cols, Rows: rows})
}

// ExportDeviations godoc
// @ID          exportDeviations
// @Summary     Export deviations as flat rows
// @Description Returns every deviation joined with its dredger as one flat
// @Description row per record, plus the caption list for spreadsheet export.
// @Tags        Reports
// @Produce     json
// @Success     200 {object} handlers.DeviationExportResponse
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /reports/deviations/export [get]
func (h *Handlers) ExportDeviations(c *gin.Context) {
	cols, rows, err := h.reportSvc.DeviationRows(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, DeviationExportResponse{Columns: cols, Rows: rows})
}
