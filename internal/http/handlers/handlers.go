// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the Handlers aggregate that the router mounts, and the
// helpers shared by all endpoint files: actor extraction and date parsing.
// Handlers are transport-thin: they validate input, delegate to application
// services, and translate service errors into HTTP results.
package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hydromech/dredger-journal/internal/domain"
)

// dateLayout is the wire format for date-valued fields.
const dateLayout = "2006-01-02"

// Handlers bundles the endpoint implementations with their services.
type Handlers struct {
	catalogSvc   CatalogService
	fleetSvc     FleetService
	componentSvc ComponentService
	repairSvc    RepairService
	deviationSvc DeviationService
	reportSvc    ReportService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(catalog CatalogService, fleet FleetService, components ComponentService, repairs RepairService, deviations DeviationService, reports ReportService) *Handlers {
	return &Handlers{
		catalogSvc:   catalog,
		fleetSvc:     fleet,
		componentSvc: components,
		repairSvc:    repairs,
		deviationSvc: deviations,
		reportSvc:    reports,
	}
}

// actor extracts the authenticated principal from the Gin context (set by
// the authorization middleware). If absent, it falls back to the X-User-ID /
// X-User-Role headers (tests use them), and finally to a demo identity. It
// never touches c.Request if it's nil.
func actor(c *gin.Context) domain.Actor {
	a := domain.Actor{}
	if v, ok := c.Get("actorID"); ok {
		if s, ok := v.(string); ok {
			a.ID = s
		}
	}
	if v, ok := c.Get("actorRole"); ok {
		if s, ok := v.(string); ok {
			a.Role = s
		}
	}
	if c != nil && c.Request != nil {
		if a.ID == "" {
			a.ID = strings.TrimSpace(c.GetHeader("X-User-ID"))
		}
		if a.Role == "" {
			a.Role = strings.ToLower(strings.TrimSpace(c.GetHeader("X-User-Role")))
		}
	}
	if a.ID == "" {
		a.ID = "demo-user"
	}
	return a
}

// parseDate parses a required wire date ("2006-01-02").
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseOptionalDate parses an optional wire date; empty input yields nil.
func parseOptionalDate(s string) (*time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, true
	}
	t, ok := parseDate(s)
	if !ok {
		return nil, false
	}
	return &t, true
}
