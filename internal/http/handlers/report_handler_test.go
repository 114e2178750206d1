package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hydromech/dredger-journal/internal/repo"
	"github.com/hydromech/dredger-journal/internal/services"
)

func newReportRouter(svc ReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(stubCatalogSvc{}, stubFleetSvc{}, stubComponentSvc{}, stubRepairSvc{}, stubDeviationSvc{}, svc)
	r := gin.New()
	r.GET("/reports/dashboard", h.GetDashboard)
	r.GET("/reports/repairs/export", h.ExportRepairs)
	r.GET("/reports/deviations/export", h.ExportDeviations)
	return r
}

func TestGetDashboard_Handler(t *testing.T) {
	var gotAfter, gotBefore time.Time
	svc := stubReportSvc{
		dashboard: func(_ context.Context, after, before time.Time) (*services.Dashboard, error) {
			gotAfter, gotBefore = after, before
			return &services.Dashboard{
				Downtime: []services.DowntimeCount{
					{Type: "mechanical", Count: 2},
					{Type: "electrical", Count: 0},
					{Type: "technological", Count: 0},
				},
				WearTop: []repo.WearRow{{ComponentID: "c1", Pct: 80}},
			}, nil
		},
	}
	r := newReportRouter(svc)

	// Bad bound -> 400.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/dashboard?before=eoy", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad before -> %d", w.Code)
	}

	// Explicit range forwarded, zero times for open bounds.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/dashboard?after=2024-08-01", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard -> %d body=%s", w.Code, w.Body.String())
	}
	if gotAfter.Format("2006-01-02") != "2024-08-01" || !gotBefore.IsZero() {
		t.Fatalf("bounds: %v %v", gotAfter, gotBefore)
	}

	var dash services.Dashboard
	if err := json.Unmarshal(w.Body.Bytes(), &dash); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(dash.Downtime) != 3 || dash.Downtime[0].Count != 2 {
		t.Fatalf("downtime: %+v", dash.Downtime)
	}
	if len(dash.WearTop) != 1 || dash.WearTop[0].Pct != 80 {
		t.Fatalf("wear: %+v", dash.WearTop)
	}
}

func TestExport_Handlers(t *testing.T) {
	svc := stubReportSvc{
		repairRows: func(context.Context) ([]services.Column, []repo.RepairExportRow, error) {
			return []services.Column{{Key: "id", Caption: "ID"}},
				[]repo.RepairExportRow{{ID: "r1", DredgerInvNumber: "ZS-101", Notes: "swap"}}, nil
		},
		deviationRows: func(context.Context) ([]services.Column, []repo.DeviationExportRow, error) {
			return []services.Column{{Key: "date", Caption: "Date"}},
				[]repo.DeviationExportRow{{ID: "v1", Type: "mechanical"}}, nil
		},
	}
	r := newReportRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/repairs/export", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("repair export -> %d", w.Code)
	}
	var rout RepairExportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &rout); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(rout.Columns) != 1 || rout.Columns[0].Caption != "ID" {
		t.Fatalf("columns: %+v", rout.Columns)
	}
	if len(rout.Rows) != 1 || rout.Rows[0].DredgerInvNumber != "ZS-101" {
		t.Fatalf("rows: %+v", rout.Rows)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/deviations/export", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("deviation export -> %d", w.Code)
	}
	var dout DeviationExportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &dout); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(dout.Rows) != 1 || dout.Rows[0].Type != "mechanical" {
		t.Fatalf("rows: %+v", dout.Rows)
	}
}
