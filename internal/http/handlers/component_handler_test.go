package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hydromech/dredger-journal/internal/domain"
	"github.com/hydromech/dredger-journal/internal/repo"
	"github.com/hydromech/dredger-journal/internal/services"
)

func newComponentRouter(svc ComponentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(stubCatalogSvc{}, stubFleetSvc{}, svc, stubRepairSvc{}, stubDeviationSvc{}, stubReportSvc{})
	r := gin.New()
	r.POST("/components", h.CreateComponent)
	r.GET("/components", h.ListComponents)
	r.GET("/components/available", h.ListAvailableComponents)
	r.GET("/components/:id", h.GetComponent)
	r.PATCH("/components/:id/hours", h.UpdateComponentHours)
	r.GET("/components/:id/history", h.GetComponentHistory)
	return r
}

func TestCreateComponent(t *testing.T) {
	r := newComponentRouter(stubComponentSvc{})

	// Bad JSON -> 400.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/components", bytes.NewBufferString("{")))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad json -> %d", w.Code)
	}

	// Success -> 201.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/components",
		bytes.NewBufferString(`{"spare_part_id":"p1","serial_number":"SN-1"}`)))
	if w.Code != http.StatusCreated {
		t.Fatalf("create -> %d body=%s", w.Code, w.Body.String())
	}
	var out domain.Component
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if out.SparePartID != "p1" || out.SerialNumber != "SN-1" {
		t.Fatalf("component: %+v", out)
	}

	// Unknown part -> 404.
	errSvc := stubComponentSvc{
		create: func(context.Context, string, string) (*domain.Component, error) {
			return nil, services.ErrPartNotFound
		},
	}
	r = newComponentRouter(errSvc)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/components",
		bytes.NewBufferString(`{"spare_part_id":"nope"}`)))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown part -> %d", w.Code)
	}
}

func TestListAvailableComponents(t *testing.T) {
	var gotIDs []string
	svc := stubComponentSvc{
		available: func(_ context.Context, partIDs []string) ([]domain.Component, error) {
			gotIDs = partIDs
			return []domain.Component{{ID: "c1"}}, nil
		},
	}
	r := newComponentRouter(svc)

	// No part_id -> 400.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/components/available", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("no part_id -> %d", w.Code)
	}

	// Repeated part_id values all reach the service.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/components/available?part_id=a&part_id=b", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("available -> %d body=%s", w.Code, w.Body.String())
	}
	if len(gotIDs) != 2 || gotIDs[0] != "a" || gotIDs[1] != "b" {
		t.Fatalf("part IDs: %v", gotIDs)
	}
}

func TestUpdateComponentHours(t *testing.T) {
	// Bad JSON -> 400.
	r := newComponentRouter(stubComponentSvc{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/components/c1/hours", bytes.NewBufferString("nope")))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad json -> %d", w.Code)
	}

	// Decreasing reading -> 422.
	errSvc := stubComponentSvc{
		updateHours: func(context.Context, string, uint, *string) (*domain.Component, error) {
			return nil, services.ErrDecreasingHours
		},
	}
	r = newComponentRouter(errSvc)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/components/c1/hours",
		bytes.NewBufferString(`{"total_hours":5}`)))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("decreasing -> %d", w.Code)
	}

	// Success forwards the absolute reading with no repair reference.
	var gotHours uint
	var gotRepair *string
	okSvc := stubComponentSvc{
		updateHours: func(_ context.Context, id string, h uint, rid *string) (*domain.Component, error) {
			gotHours, gotRepair = h, rid
			return &domain.Component{ID: id, TotalHours: h}, nil
		},
	}
	r = newComponentRouter(okSvc)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/components/c1/hours",
		bytes.NewBufferString(`{"total_hours":312}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("update -> %d body=%s", w.Code, w.Body.String())
	}
	if gotHours != 312 || gotRepair != nil {
		t.Fatalf("hours=%d repair=%v", gotHours, gotRepair)
	}
}

func TestGetComponentAndHistory(t *testing.T) {
	// Get missing -> 404.
	errSvc := stubComponentSvc{
		get: func(context.Context, string) (*domain.Component, error) {
			return nil, services.ErrComponentNotFound
		},
		history: func(context.Context, string) ([]repo.HistoryRow, error) {
			return nil, services.ErrComponentNotFound
		},
	}
	r := newComponentRouter(errSvc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/components/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("get missing -> %d", w.Code)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/components/missing/history", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("history missing -> %d", w.Code)
	}

	// History rows pass through untouched.
	rid := "rep-1"
	now := time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC)
	okSvc := stubComponentSvc{
		history: func(context.Context, string) ([]repo.HistoryRow, error) {
			return []repo.HistoryRow{{
				EntryID:          "e1",
				RepairID:         &rid,
				DredgerInvNumber: "ZS-101",
				HoursDelta:       40,
				TotalHours:       140,
				CreatedAt:        now,
			}}, nil
		},
	}
	r = newComponentRouter(okSvc)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/components/c1/history", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("history -> %d", w.Code)
	}
	var rows []repo.HistoryRow
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(rows) != 1 || rows[0].HoursDelta != 40 || rows[0].DredgerInvNumber != "ZS-101" {
		t.Fatalf("rows: %+v", rows)
	}
}
