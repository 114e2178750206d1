// Component HTTP handlers.
//
// This file exposes the REST endpoints for physical component instances:
//   - POST  /components               (register component)
//   - GET   /components               (list components)
//   - GET   /components/available     (available replacements for given part kinds)
//   - GET   /components/{id}          (fetch component)
//   - PATCH /components/{id}/hours    (manual hour-meter adjustment)
//   - GET   /components/{id}/history  (install/credit audit trail)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hydromech/dredger-journal/internal/domain"
	"github.com/hydromech/dredger-journal/internal/repo"
	"github.com/hydromech/dredger-journal/internal/services"
)

// ComponentService defines the service contract required by the component
// endpoints.
type ComponentService interface {
	Create(ctx context.Context, partID, serialNumber string) (*domain.Component, error)
	Get(ctx context.Context, id string) (*domain.Component, error)
	List(ctx context.Context) ([]domain.Component, error)
	UpdateHours(ctx context.Context, id string, newHours uint, repairID *string) (*domain.Component, error)
	Available(ctx context.Context, partIDs []string) ([]domain.Component, error)
	History(ctx context.Context, id string) ([]repo.HistoryRow, error)
}

// CreateComponentRequest is the JSON payload for registering a component.
type CreateComponentRequest struct {
	SparePartID  string `json:"spare_part_id" binding:"required" format:"uuid"`
	SerialNumber string `json:"serial_number,omitempty" example:"SN-2024-0815"`
}

// UpdateHoursRequest carries a manual hour-meter reading. TotalHours is the
// new absolute meter value, not a delta, and may not go backwards.
type UpdateHoursRequest struct {
	TotalHours uint `json:"total_hours" example:"312"`
}

// CreateComponent godoc
// @ID          createComponent
// @Summary     Register a component
// @Description Registers a new physical instance of a spare part. Components
// @Description start uninstalled with zero operating hours.
// @Tags        Components
// @Accept      json
// @Produce     json
// @Param       body body handlers.CreateComponentRequest true "Component payload"
// @Success     201 {object} domain.Component
// @Failure     400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404 {object} handlers.ErrorResponse "Spare part not found"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /components [post]
func (h *Handlers) CreateComponent(c *gin.Context) {
	var req CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "spare_part_id is required")
		return
	}
	comp, err := h.componentSvc.Create(c.Request.Context(), req.SparePartID, req.SerialNumber)
	if err != nil {
		failComponent(c, err)
		return
	}
	ok(c, http.StatusCreated, comp)
}

// ListComponents godoc
// @ID          listComponents
// @Summary     List all components
// @Tags        Components
// @Produce     json
// @Success     200 {array} domain.Component
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /components [get]
func (h *Handlers) ListComponents(c *gin.Context) {
	items, err := h.componentSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// ListAvailableComponents godoc
// @ID          listAvailableComponents
// @Summary     List available replacement components
// @Description Returns uninstalled components of the requested part kinds
// @Description that still have service life left (total hours below the
// @Description part's norm). Repeat part_id to query several kinds at once.
// @Tags        Components
// @Produce     json
// @Param       part_id query []string true "Spare part IDs" collectionFormat(multi)
// @Success     200 {array} domain.Component
// @Failure     400 {object} handlers.ErrorResponse "No part_id given"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /components/available [get]
func (h *Handlers) ListAvailableComponents(c *gin.Context) {
	partIDs := c.QueryArray("part_id")
	if len(partIDs) == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "at least one part_id is required")
		return
	}
	items, err := h.componentSvc.Available(c.Request.Context(), partIDs)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetComponent godoc
// @ID          getComponent
// @Summary     Fetch a component
// @Tags        Components
// @Produce     json
// @Param       id path string true "Component ID (UUID)" format(uuid)
// @Success     200 {object} domain.Component
// @Failure     404 {object} handlers.ErrorResponse "Component not found"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /components/{id} [get]
func (h *Handlers) GetComponent(c *gin.Context) {
	comp, err := h.componentSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failComponent(c, err)
		return
	}
	ok(c, http.StatusOK, comp)
}

// UpdateComponentHours godoc
// @ID          updateComponentHours
// @Summary     Adjust a component's hour meter
// @Description Sets the component's absolute operating-hour reading. The
// @Description meter is monotone: a reading below the current value is
// @Description rejected. Every accepted adjustment is recorded in the
// @Description component's history.
// @Tags        Components
// @Accept      json
// @Produce     json
// @Param       id   path string true "Component ID (UUID)" format(uuid)
// @Param       body body handlers.UpdateHoursRequest true "New meter reading"
// @Success     200 {object} domain.Component
// @Failure     400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404 {object} handlers.ErrorResponse "Component not found"
// @Failure     422 {object} handlers.ErrorResponse "Reading below current meter value"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /components/{id}/hours [patch]
func (h *Handlers) UpdateComponentHours(c *gin.Context) {
	var req UpdateHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "total_hours is required")
		return
	}
	comp, err := h.componentSvc.UpdateHours(c.Request.Context(), c.Param("id"), req.TotalHours, nil)
	if err != nil {
		failComponent(c, err)
		return
	}
	ok(c, http.StatusOK, comp)
}

// GetComponentHistory godoc
// @ID          getComponentHistory
// @Summary     Component hour-credit history
// @Description Returns the component's audit trail, newest first. Each entry
// @Description carries the hour delta, the resulting meter value, and the
// @Description repair and dredger it originated from when applicable.
// @Tags        Components
// @Produce     json
// @Param       id path string true "Component ID (UUID)" format(uuid)
// @Success     200 {array} repo.HistoryRow
// @Failure     404 {object} handlers.ErrorResponse "Component not found"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /components/{id}/history [get]
func (h *Handlers) GetComponentHistory(c *gin.Context) {
	rows, err := h.componentSvc.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		failComponent(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

// failComponent maps component service errors to HTTP results.
func failComponent(c *gin.Context, err error) {
	switch err {
	case services.ErrInvalidInput:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case services.ErrComponentNotFound, services.ErrPartNotFound:
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case services.ErrDecreasingHours:
		fail(c, http.StatusUnprocessableEntity, ErrCodeDecreasingHours, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}
