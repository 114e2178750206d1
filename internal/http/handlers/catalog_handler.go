// Reference-data HTTP handlers.
//
// This file exposes the REST endpoints for the catalog: dredger types,
// spare part definitions, and (type, part) requirement associations:
//   - POST /dredger-types            (create type)
//   - GET  /dredger-types            (list types)
//   - POST /spare-parts              (create part)
//   - GET  /spare-parts              (list parts)
//   - GET  /spare-parts/{id}         (fetch part)
//   - PUT  /spare-parts/{id}         (update part)
//   - POST /dredger-types/{id}/parts (require part for type)
//   - GET  /dredger-types/{id}/parts (list required parts)
//   - DELETE /dredger-types/{id}/parts/{partID} (drop requirement)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hydromech/dredger-journal/internal/domain"
	"github.com/hydromech/dredger-journal/internal/services"
)

// CatalogService defines the service contract required by the catalog
// endpoints.
type CatalogService interface {
	CreateType(ctx context.Context, name, code string) (*domain.DredgerType, error)
	ListTypes(ctx context.Context) ([]domain.DredgerType, error)
	CreatePart(ctx context.Context, in services.SparePartInput) (*domain.SparePart, error)
	ListParts(ctx context.Context) ([]domain.SparePart, error)
	GetPart(ctx context.Context, id string) (*domain.SparePart, error)
	UpdatePart(ctx context.Context, id string, in services.SparePartInput) (*domain.SparePart, error)
	AddTypePart(ctx context.Context, typeID, partID string) (*domain.DredgerTypePart, error)
	ListTypeParts(ctx context.Context, typeID string) ([]domain.SparePart, error)
	RemoveTypePart(ctx context.Context, typeID, partID string) error
}

// CreateDredgerTypeRequest is the JSON payload for creating a dredger type.
type CreateDredgerTypeRequest struct {
	Name string `json:"name" binding:"required" example:"Suction dredger 350-50"`
	Code string `json:"code" binding:"required" example:"ZS-350"`
}

// SparePartRequest is the JSON payload for creating or updating a spare part.
// NormHours 0 means the part carries no operating-hour ceiling.
type SparePartRequest struct {
	Code         string `json:"code" binding:"required" example:"PMP-220"`
	Name         string `json:"name" binding:"required" example:"Slurry pump impeller"`
	Manufacturer string `json:"manufacturer,omitempty" example:"Uraltechmash"`
	NormHours    uint   `json:"norm_hours" example:"500"`
	DrawingFile  string `json:"drawing_file,omitempty" example:"drawings/pmp-220.pdf"`
}

// AddTypePartRequest is the JSON payload for requiring a part on a type.
type AddTypePartRequest struct {
	SparePartID string `json:"spare_part_id" binding:"required" format:"uuid"`
}

// CreateDredgerType godoc
// @ID          createDredgerType
// @Summary     Create a dredger type
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body handlers.CreateDredgerTypeRequest true "Type payload"
// @Success     201 {object} domain.DredgerType
// @Failure     400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure     409 {object} handlers.ErrorResponse "Name or code already in use"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /dredger-types [post]
func (h *Handlers) CreateDredgerType(c *gin.Context) {
	var req CreateDredgerTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name and code are required")
		return
	}
	t, err := h.catalogSvc.CreateType(c.Request.Context(), req.Name, req.Code)
	if err != nil {
		failCatalog(c, err)
		return
	}
	ok(c, http.StatusCreated, t)
}

// ListDredgerTypes godoc
// @ID          listDredgerTypes
// @Summary     List dredger types
// @Tags        Catalog
// @Produce     json
// @Success     200 {array} domain.DredgerType
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /dredger-types [get]
func (h *Handlers) ListDredgerTypes(c *gin.Context) {
	types, err := h.catalogSvc.ListTypes(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, types)
}

// CreateSparePart godoc
// @ID          createSparePart
// @Summary     Create a spare part definition
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body handlers.SparePartRequest true "Part payload"
// @Success     201 {object} domain.SparePart
// @Failure     400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure     409 {object} handlers.ErrorResponse "Code already in use"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /spare-parts [post]
func (h *Handlers) CreateSparePart(c *gin.Context) {
	var req SparePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "code and name are required")
		return
	}
	p, err := h.catalogSvc.CreatePart(c.Request.Context(), services.SparePartInput{
		Code:         req.Code,
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		NormHours:    req.NormHours,
		DrawingFile:  req.DrawingFile,
	})
	if err != nil {
		failCatalog(c, err)
		return
	}
	ok(c, http.StatusCreated, p)
}

// ListSpareParts godoc
// @ID          listSpareParts
// @Summary     List spare part definitions
// @Tags        Catalog
// @Produce     json
// @Success     200 {array} domain.SparePart
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /spare-parts [get]
func (h *Handlers) ListSpareParts(c *gin.Context) {
	parts, err := h.catalogSvc.ListParts(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, parts)
}

// GetSparePart godoc
// @ID          getSparePart
// @Summary     Fetch a spare part definition
// @Tags        Catalog
// @Produce     json
// @Param       id path string true "Spare part ID (UUID)" format(uuid)
// @Success     200 {object} domain.SparePart
// @Failure     404 {object} handlers.ErrorResponse "Part not found"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /spare-parts/{id} [get]
func (h *Handlers) GetSparePart(c *gin.Context) {
	p, err := h.catalogSvc.GetPart(c.Request.Context(), c.Param("id"))
	if err != nil {
		failCatalog(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

// UpdateSparePart godoc
// @ID          updateSparePart
// @Summary     Update a spare part definition
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id   path string true "Spare part ID (UUID)" format(uuid)
// @Param       body body handlers.SparePartRequest true "Part payload"
// @Success     200 {object} domain.SparePart
// @Failure     400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404 {object} handlers.ErrorResponse "Part not found"
// @Failure     409 {object} handlers.ErrorResponse "Code already in use"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /spare-parts/{id} [put]
func (h *Handlers) UpdateSparePart(c *gin.Context) {
	var req SparePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "code and name are required")
		return
	}
	p, err := h.catalogSvc.UpdatePart(c.Request.Context(), c.Param("id"), services.SparePartInput{
		Code:         req.Code,
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		NormHours:    req.NormHours,
		DrawingFile:  req.DrawingFile,
	})
	if err != nil {
		failCatalog(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

// AddTypePart godoc
// @ID          addTypePart
// @Summary     Require a spare part on a dredger type
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id   path string true "Dredger type ID (UUID)" format(uuid)
// @Param       body body handlers.AddTypePartRequest true "Association payload"
// @Success     201 {object} domain.DredgerTypePart
// @Failure     400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404 {object} handlers.ErrorResponse "Type or part not found"
// @Failure     409 {object} handlers.ErrorResponse "Association already exists"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /dredger-types/{id}/parts [post]
func (h *Handlers) AddTypePart(c *gin.Context) {
	var req AddTypePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "spare_part_id is required")
		return
	}
	tp, err := h.catalogSvc.AddTypePart(c.Request.Context(), c.Param("id"), req.SparePartID)
	if err != nil {
		failCatalog(c, err)
		return
	}
	ok(c, http.StatusCreated, tp)
}

// ListTypeParts godoc
// @ID          listTypeParts
// @Summary     List spare parts required by a dredger type
// @Tags        Catalog
// @Produce     json
// @Param       id path string true "Dredger type ID (UUID)" format(uuid)
// @Success     200 {array} domain.SparePart
// @Failure     404 {object} handlers.ErrorResponse "Type not found"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /dredger-types/{id}/parts [get]
func (h *Handlers) ListTypeParts(c *gin.Context) {
	parts, err := h.catalogSvc.ListTypeParts(c.Request.Context(), c.Param("id"))
	if err != nil {
		failCatalog(c, err)
		return
	}
	ok(c, http.StatusOK, parts)
}

// RemoveTypePart godoc
// @ID          removeTypePart
// @Summary     Drop a spare part requirement from a dredger type
// @Tags        Catalog
// @Param       id     path string true "Dredger type ID (UUID)"  format(uuid)
// @Param       partID path string true "Spare part ID (UUID)"    format(uuid)
// @Success     204 {string} string "No Content"
// @Failure     404 {object} handlers.ErrorResponse "Association not found"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /dredger-types/{id}/parts/{partID} [delete]
func (h *Handlers) RemoveTypePart(c *gin.Context) {
	if err := h.catalogSvc.RemoveTypePart(c.Request.Context(), c.Param("id"), c.Param("partID")); err != nil {
		failCatalog(c, err)
		return
	}
	noContent(c)
}

// failCatalog maps catalog service errors to HTTP results.
func failCatalog(c *gin.Context, err error) {
	switch err {
	case services.ErrInvalidInput:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case services.ErrTypeNotFound, services.ErrPartNotFound:
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case services.ErrDuplicateCode:
		fail(c, http.StatusConflict, ErrCodeDuplicateCode, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}
