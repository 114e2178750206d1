// Repair HTTP handlers.
//
// This file exposes the REST endpoints for repair transactions:
//   - POST   /repairs       (submit repair; supports Idempotency-Key retries)
//   - GET    /repairs       (list repairs, filterable and paginated)
//   - GET    /repairs/{id}  (fetch repair with ordered items)
//   - PUT    /repairs/{id}  (update scalar fields; items are immutable)
//   - DELETE /repairs/{id}  (delete repair, history survives)
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hydromech/dredger-journal/internal/domain"
	"github.com/hydromech/dredger-journal/internal/repo"
	"github.com/hydromech/dredger-journal/internal/services"
	"github.com/hydromech/dredger-journal/internal/utils"
)

// RepairService defines the service contract required by the repair
// endpoints.
type RepairService interface {
	Create(ctx context.Context, in services.CreateRepairInput) (*domain.Repair, error)
	Get(ctx context.Context, id string) (*domain.Repair, error)
	ListPage(ctx context.Context, f repo.RepairListFilter, offset, limit int) ([]domain.Repair, int64, error)
	Update(ctx context.Context, id string, in services.UpdateRepairInput) (*domain.Repair, error)
	Delete(ctx context.Context, id string) error
}

// RepairItemRequest is one swap line in a repair submission. Hours is the
// meter reading reported for the component coming out of the slot.
type RepairItemRequest struct {
	ComponentID string `json:"component_id" binding:"required" format:"uuid"`
	Hours       uint   `json:"hours" example:"420"`
	Note        string `json:"note,omitempty" example:"impeller vanes worn through"`
}

// CreateRepairRequest is the JSON payload for submitting a repair.
type CreateRepairRequest struct {
	DredgerID string              `json:"dredger_id" binding:"required" format:"uuid"`
	StartDate string              `json:"start_date" binding:"required" example:"2024-08-01"`
	EndDate   string              `json:"end_date,omitempty" example:"2024-08-03"`
	Notes     string              `json:"notes,omitempty"`
	Items     []RepairItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateRepairRequest is the JSON payload for editing a repair's scalar
// fields. The item list of a persisted repair cannot be changed; submitting
// items here is rejected.
type UpdateRepairRequest struct {
	StartDate string              `json:"start_date" binding:"required" example:"2024-08-01"`
	EndDate   string              `json:"end_date,omitempty" example:"2024-08-03"`
	Notes     string              `json:"notes,omitempty"`
	Items     []RepairItemRequest `json:"items,omitempty"`
}

// ListRepairsResponse contains a page of repairs and pagination metadata.
type ListRepairsResponse struct {
	Repairs    []domain.Repair `json:"repairs"`
	Pagination Pagination      `json:"pagination"`
}

// clampPagination parses page/page_size query parameters, applies defaults
// and caps, and returns the validated (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// idempotencyKey reads the Idempotency-Key header if present.
func idempotencyKey(c *gin.Context) (string, bool) {
	if v := strings.TrimSpace(c.GetHeader("Idempotency-Key")); v != "" {
		return v, true
	}
	return "", false
}

// CreateRepair godoc
// @ID          createRepair
// @Summary     Submit a repair
// @Description Records a repair and applies every swap line atomically: for
// @Description each incoming component, the component currently occupying the
// @Description same part slot is detached and credited with the reported
// @Description hours, then the incoming one is installed. Either the whole
// @Description submission lands or nothing does.
// @Description Supports idempotency via the Idempotency-Key header (same key → same repair).
// @Tags        Repairs
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID        header  string  false "Acting user"
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"
// @Param       body             body    handlers.CreateRepairRequest  true  "Repair payload"
//
// @Success     201 {object} domain.Repair
// @Failure     400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404 {object} handlers.ErrorResponse "Dredger or component not found"
// @Failure     409 {object} handlers.ErrorResponse "Concurrent install conflict, retry"
// @Failure     422 {object} handlers.ErrorResponse "End date precedes start date, or hours go backwards"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /repairs [post]
func (h *Handlers) CreateRepair(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "dredger_id, start_date and at least one item are required")
		return
	}
	if _, err := uuid.Parse(req.DredgerID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "dredger_id must be a UUID")
		return
	}
	start, okDate := parseDate(req.StartDate)
	if !okDate {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, okDate := parseOptionalDate(req.EndDate)
	if !okDate {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "end_date must be YYYY-MM-DD")
		return
	}

	act := actor(c)

	// Idempotency (replay path): a known key returns the repair it created.
	idemKey, _ := idempotencyKey(c)
	if idemKey != "" {
		if svc, okSvc := h.repairSvc.(*services.RepairService); okSvc && svc.DB != nil {
			if rec, err := repo.GetIdempotency(ctx, svc.DB, act.ID, req.DredgerID, idemKey, time.Now().UTC()); err == nil && rec != nil {
				if prev, err2 := repo.GetRepair(ctx, svc.DB, rec.RepairID); err2 == nil {
					c.Header("Idempotency-Replayed", "true")
					ok(c, http.StatusCreated, prev)
					return
				}
			}
		}
	}

	in := services.CreateRepairInput{
		DredgerID: req.DredgerID,
		StartDate: start,
		EndDate:   end,
		Notes:     req.Notes,
		Actor:     act,
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, services.RepairItemInput{
			ComponentID: it.ComponentID,
			Hours:       it.Hours,
			Note:        it.Note,
		})
	}

	rep, err := h.repairSvc.Create(ctx, in)
	if err != nil {
		failRepair(c, err)
		return
	}

	// Idempotency (store path), best effort.
	if idemKey != "" {
		if svc, okSvc := h.repairSvc.(*services.RepairService); okSvc && svc.DB != nil {
			ttl := 24 * time.Hour
			_, _ = repo.CreateIdempotency(ctx, svc.DB, act.ID, req.DredgerID, idemKey, rep.ID, http.StatusCreated, ttl)
		}
	}

	ok(c, http.StatusCreated, rep)
}

// ListRepairs godoc
// @ID          listRepairs
// @Summary     List repairs
// @Description Returns repairs newest first, optionally filtered by dredger,
// @Description derived status (planned, in_progress, completed) and date range.
// @Tags        Repairs
// @Produce     json
//
// @Param       dredger_id query  string  false "Only repairs of this dredger" format(uuid)
// @Param       status     query  string  false "planned | in_progress | completed"
// @Param       from       query  string  false "start_date lower bound (YYYY-MM-DD)"
// @Param       until      query  string  false "end_date upper bound (YYYY-MM-DD)"
// @Param       page       query  int     false "Page number"     minimum(1) default(1)
// @Param       page_size  query  int     false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200 {object} handlers.ListRepairsResponse
// @Failure     400 {object} handlers.ErrorResponse "Invalid filter"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /repairs [get]
func (h *Handlers) ListRepairs(c *gin.Context) {
	page, pageSize := clampPagination(c)

	f := repo.RepairListFilter{
		DredgerID: strings.TrimSpace(c.Query("dredger_id")),
		Status:    strings.ToLower(strings.TrimSpace(c.Query("status"))),
		Today:     time.Now().UTC(),
	}
	switch f.Status {
	case "", repo.RepairStatusPlanned, repo.RepairStatusInProgress, repo.RepairStatusCompleted:
	default:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status must be planned, in_progress or completed")
		return
	}
	from, okDate := parseOptionalDate(c.Query("from"))
	if !okDate {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "from must be YYYY-MM-DD")
		return
	}
	until, okDate := parseOptionalDate(c.Query("until"))
	if !okDate {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "until must be YYYY-MM-DD")
		return
	}
	f.StartFrom = from
	f.EndUntil = until

	items, total, err := h.repairSvc.ListPage(c.Request.Context(), f, (page-1)*pageSize, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListRepairsResponse{
		Repairs: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetRepair godoc
// @ID          getRepair
// @Summary     Fetch a repair
// @Description Returns the repair with its items in submission order.
// @Tags        Repairs
// @Produce     json
// @Param       id path string true "Repair ID (UUID)" format(uuid)
// @Success     200 {object} domain.Repair
// @Failure     404 {object} handlers.ErrorResponse "Repair not found"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /repairs/{id} [get]
func (h *Handlers) GetRepair(c *gin.Context) {
	rep, err := h.repairSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failRepair(c, err)
		return
	}
	ok(c, http.StatusOK, rep)
}

// UpdateRepair godoc
// @ID          updateRepair
// @Summary     Update a repair's scalar fields
// @Description Edits dates and notes. The item list is immutable once the
// @Description repair is persisted; payloads carrying items are rejected.
// @Tags        Repairs
// @Accept      json
// @Produce     json
// @Param       id   path string true "Repair ID (UUID)" format(uuid)
// @Param       body body handlers.UpdateRepairRequest true "Repair payload"
// @Success     200 {object} domain.Repair
// @Failure     400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404 {object} handlers.ErrorResponse "Repair not found"
// @Failure     422 {object} handlers.ErrorResponse "Items submitted, or end date precedes start date"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /repairs/{id} [put]
func (h *Handlers) UpdateRepair(c *gin.Context) {
	var req UpdateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "start_date is required")
		return
	}
	start, okDate := parseDate(req.StartDate)
	if !okDate {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, okDate := parseOptionalDate(req.EndDate)
	if !okDate {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "end_date must be YYYY-MM-DD")
		return
	}

	in := services.UpdateRepairInput{
		StartDate: start,
		EndDate:   end,
		Notes:     req.Notes,
		Actor:     actor(c),
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, services.RepairItemInput{
			ComponentID: it.ComponentID,
			Hours:       it.Hours,
			Note:        it.Note,
		})
	}

	rep, err := h.repairSvc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		failRepair(c, err)
		return
	}
	ok(c, http.StatusOK, rep)
}

// DeleteRepair godoc
// @ID          deleteRepair
// @Summary     Delete a repair
// @Description Removes the repair and its items. Component history entries
// @Description that referenced the repair are kept with the reference cleared.
// @Tags        Repairs
// @Param       id path string true "Repair ID (UUID)" format(uuid)
// @Success     204 {string} string "No Content"
// @Failure     404 {object} handlers.ErrorResponse "Repair not found"
// @Failure     500 {object} handlers.ErrorResponse "Internal server error"
// @Router      /repairs/{id} [delete]
func (h *Handlers) DeleteRepair(c *gin.Context) {
	if err := h.repairSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failRepair(c, err)
		return
	}
	noContent(c)
}

// failRepair maps repair service errors to HTTP results.
func failRepair(c *gin.Context, err error) {
	switch err {
	case services.ErrEmptyRepairItems:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case services.ErrDredgerNotFound, services.ErrComponentNotFound, services.ErrRepairNotFound:
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case services.ErrInstallConflict:
		fail(c, http.StatusConflict, ErrCodeInstallConflict, err.Error())
	case services.ErrInvalidDateRange:
		fail(c, http.StatusUnprocessableEntity, ErrCodeInvalidDateRange, err.Error())
	case services.ErrDecreasingHours:
		fail(c, http.StatusUnprocessableEntity, ErrCodeDecreasingHours, err.Error())
	case services.ErrImmutableRepairItems:
		fail(c, http.StatusUnprocessableEntity, ErrCodeImmutableRepairItems, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}
