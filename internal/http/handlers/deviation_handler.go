// Deviation HTTP handlers.
//
// This file exposes the REST endpoints for the deviation (downtime) log:
//   - POST /deviations      (record deviation)
//   - GET  /deviations      (list deviations, paginated, date-filtered)
//   - GET  /deviations/{id} (fetch deviation)
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hydromech/dredger-journal/internal/domain"
	"github.com/hydromech/dredger-journal/internal/repo"
	"github.com/hydromech/dredger-journal/internal/services"
)

// DeviationService defines the service contract required by the deviation
// endpoints.
type DeviationService interface {
	Create(ctx context.Context, in repo.NewDeviation, actor domain.Actor) (*domain.Deviation, error)
	Get(ctx context.Context, id string) (*domain.Deviation, error)
	ListPage(ctx context.Context, after, before time.Time, offset, limit int) ([]domain.Deviation, int64, error)
}

// CreateDeviationRequest is the JSON payload for recording a deviation.
type CreateDeviationRequest struct {
	DredgerID        string `json:"dredger_id" binding:"required" format:"uuid"`
	Date             string `json:"date" binding:"required" example:"2024-08-15"`
	Type             string `json:"type" binding:"required" enums:"mechanical,electrical,technological"`
	Location         string `json:"location" binding:"required" enums:"PNS,TVS,SHX"`
	LastPPRDate      string `json:"last_ppr_date,omitempty" example:"2024-06-01"`
	HoursAtDeviation uint   `json:"hours_at_deviation" example:"1180"`
	Description      string `json:"description" binding:"required"`
	ShiftLeader      string `json:"shift_leader,omitempty"`
	Mechanic         string `json:"mechanic,omitempty"`
	Electrician      string `json:"electrician,omitempty"`
}

// ListDeviationsResponse contains a page of deviations and pagination
// metadata.
type ListDeviationsResponse struct {
	Deviations []domain.Deviation `json:"deviations"`
	Pagination Pagination         `json:"pagination"`
}

// CreateDeviation godoc
// @ID          createDeviation
// @Summary     Record a deviation
// @Description Logs an equipment deviation (downtime event) for a dredger.
// @Tags        Deviations
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Acting user"
// @Param       body      body   handlers.CreateDeviationRequest true "Deviation payload"
// @Success     201 {object} domain.Deviation
// @Failure     400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404 {object} handlers.ErrorResponse "Dredger not found"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /deviations [post]
func (h *Handlers) CreateDeviation(c *gin.Context) {
	var req CreateDeviationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "dredger_id, date, type, location and description are required")
		return
	}
	date, okDate := parseDate(req.Date)
	if !okDate {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "date must be YYYY-MM-DD")
		return
	}
	var lastPPR time.Time
	if p, okDate := parseOptionalDate(req.LastPPRDate); !okDate {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "last_ppr_date must be YYYY-MM-DD")
		return
	} else if p != nil {
		lastPPR = *p
	}

	dev, err := h.deviationSvc.Create(c.Request.Context(), repo.NewDeviation{
		DredgerID:        req.DredgerID,
		Date:             date,
		Type:             req.Type,
		Location:         req.Location,
		LastPPRDate:      lastPPR,
		HoursAtDeviation: req.HoursAtDeviation,
		Description:      req.Description,
		ShiftLeader:      req.ShiftLeader,
		Mechanic:         req.Mechanic,
		Electrician:      req.Electrician,
	}, actor(c))
	if err != nil {
		failDeviation(c, err)
		return
	}
	ok(c, http.StatusCreated, dev)
}

// ListDeviations godoc
// @ID          listDeviations
// @Summary     List deviations
// @Description Returns deviations newest first, optionally bounded by date.
// @Tags        Deviations
// @Produce     json
// @Param       after     query string false "date lower bound (YYYY-MM-DD)"
// @Param       before    query string false "date upper bound (YYYY-MM-DD)"
// @Param       page      query int    false "Page number"    minimum(1) default(1)
// @Param       page_size query int    false "Items per page" minimum(1) maximum(100) default(20)
// @Success     200 {object} handlers.ListDeviationsResponse
// @Failure     400 {object} handlers.ErrorResponse "Invalid filter"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /deviations [get]
func (h *Handlers) ListDeviations(c *gin.Context) {
	page, pageSize := clampPagination(c)

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

	items, total, err := h.deviationSvc.ListPage(c.Request.Context(), after, before, (page-1)*pageSize, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListDeviationsResponse{
		Deviations: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetDeviation godoc
// @ID          getDeviation
// @Summary     Fetch a deviation
// @Tags        Deviations
// @Produce     json
// @Param       id path string true "Deviation ID (UUID)" format(uuid)
// @Success     200 {object} domain.Deviation
// @Failure     404 {object} handlers.ErrorResponse "Deviation not found"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /deviations/{id} [get]
func (h *Handlers) GetDeviation(c *gin.Context) {
	dev, err := h.deviationSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failDeviation(c, err)
		return
	}
	ok(c, http.StatusOK, dev)
}

// failDeviation maps deviation service errors to HTTP results.
func failDeviation(c *gin.Context, err error) {
	switch err {
	case services.ErrInvalidInput:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case services.ErrDredgerNotFound, services.ErrDeviationNotFound:
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}
