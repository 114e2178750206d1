// Fleet HTTP handlers.
//
// This file exposes the REST endpoints for dredger records:
//   - POST /dredgers                  (register dredger)
//   - GET  /dredgers                  (list fleet)
//   - GET  /dredgers/{id}             (fetch dredger)
//   - PUT  /dredgers/{id}             (update dredger)
//   - GET  /dredgers/{id}/components  (installed components)
//   - GET  /dredgers/{id}/template    (passport template: slot per required part)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hydromech/dredger-journal/internal/domain"
	"github.com/hydromech/dredger-journal/internal/services"
)

// FleetService defines the service contract required by the fleet endpoints.
type FleetService interface {
	Create(ctx context.Context, invNumber, typeID string) (*domain.Dredger, error)
	List(ctx context.Context) ([]domain.Dredger, error)
	Get(ctx context.Context, id string) (*domain.Dredger, error)
	Update(ctx context.Context, id, invNumber, typeID string) (*domain.Dredger, error)
	Components(ctx context.Context, dredgerID string) ([]domain.Component, error)
	Template(ctx context.Context, dredgerID string) ([]services.TemplateSlot, error)
}

// DredgerRequest is the JSON payload for registering or updating a dredger.
type DredgerRequest struct {
	InvNumber     string `json:"inv_number" binding:"required" example:"DR-0042"`
	DredgerTypeID string `json:"dredger_type_id" binding:"required" format:"uuid"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// CreateDredger godoc
// @ID          createDredger
// @Summary     Register a dredger
// @Tags        Fleet
// @Accept      json
// @Produce     json
// @Param       body body handlers.DredgerRequest true "Dredger payload"
// @Success     201 {object} domain.Dredger
// @Failure     400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404 {object} handlers.ErrorResponse "Dredger type not found"
// @Failure     409 {object} handlers.ErrorResponse "Inventory number already in use"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /dredgers [post]
func (h *Handlers) CreateDredger(c *gin.Context) {
	var req DredgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "inv_number and dredger_type_id are required")
		return
	}
	d, err := h.fleetSvc.Create(c.Request.Context(), req.InvNumber, req.DredgerTypeID)
	if err != nil {
		failFleet(c, err)
		return
	}
	ok(c, http.StatusCreated, d)
}

// ListDredgers godoc
// @ID          listDredgers
// @Summary     List the fleet
// @Tags        Fleet
// @Produce     json
// @Success     200 {array} domain.Dredger
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /dredgers [get]
func (h *Handlers) ListDredgers(c *gin.Context) {
	items, err := h.fleetSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetDredger godoc
// @ID          getDredger
// @Summary     Fetch a dredger
// @Tags        Fleet
// @Produce     json
// @Param       id path string true "Dredger ID (UUID)" format(uuid)
// @Success     200 {object} domain.Dredger
// @Failure     404 {object} handlers.ErrorResponse "Dredger not found"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /dredgers/{id} [get]
func (h *Handlers) GetDredger(c *gin.Context) {
	d, err := h.fleetSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failFleet(c, err)
		return
	}
	ok(c, http.StatusOK, d)
}

// UpdateDredger godoc
// @ID          updateDredger
// @Summary     Update a dredger
// @Tags        Fleet
// @Accept      json
// @Produce     json
// @Param       id   path string true "Dredger ID (UUID)" format(uuid)
// @Param       body body handlers.DredgerRequest true "Dredger payload"
// @Success     200 {object} domain.Dredger
// @Failure     400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404 {object} handlers.ErrorResponse "Dredger or type not found"
// @Failure     409 {object} handlers.ErrorResponse "Inventory number already in use"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /dredgers/{id} [put]
func (h *Handlers) UpdateDredger(c *gin.Context) {
	var req DredgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "inv_number and dredger_type_id are required")
		return
	}
	d, err := h.fleetSvc.Update(c.Request.Context(), c.Param("id"), req.InvNumber, req.DredgerTypeID)
	if err != nil {
		failFleet(c, err)
		return
	}
	ok(c, http.StatusOK, d)
}

// ListDredgerComponents godoc
// @ID          listDredgerComponents
// @Summary     List components installed on a dredger
// @Tags        Fleet
// @Produce     json
// @Param       id path string true "Dredger ID (UUID)" format(uuid)
// @Success     200 {array} domain.Component
// @Failure     404 {object} handlers.ErrorResponse "Dredger not found"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /dredgers/{id}/components [get]
func (h *Handlers) ListDredgerComponents(c *gin.Context) {
	items, err := h.fleetSvc.Components(c.Request.Context(), c.Param("id"))
	if err != nil {
		failFleet(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

// GetDredgerTemplate godoc
// @ID          getDredgerTemplate
// @Summary     Passport template for a dredger
// @Description One slot per spare part the dredger's type requires, with the
// @Description currently installed component (if any) attached to each slot.
// @Tags        Fleet
// @Produce     json
// @Param       id path string true "Dredger ID (UUID)" format(uuid)
// @Success     200 {array} services.TemplateSlot
// @Failure     404 {object} handlers.ErrorResponse "Dredger not found"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /dredgers/{id}/template [get]
func (h *Handlers) GetDredgerTemplate(c *gin.Context) {
	slots, err := h.fleetSvc.Template(c.Request.Context(), c.Param("id"))
	if err != nil {
		failFleet(c, err)
		return
	}
	ok(c, http.StatusOK, slots)
}

// failFleet maps fleet service errors to HTTP results.
func failFleet(c *gin.Context, err error) {
	switch err {
	case services.ErrInvalidInput:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case services.ErrDredgerNotFound, services.ErrTypeNotFound:
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case services.ErrDuplicateCode:
		fail(c, http.StatusConflict, ErrCodeDuplicateCode, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}
