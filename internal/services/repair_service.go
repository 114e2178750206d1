// Package services – RepairService
//
// This file implements the repair transaction engine. A repair is a bounded
// maintenance event on one dredger with one or more component swaps; the
// engine validates the submission and executes every swap as a single
// all-or-nothing unit: detach the outgoing component (if any), credit its
// hour ledger, record the change in history, attach the incoming component,
// and persist the repair item — for each item, in submission order, inside
// one database transaction holding a row lock on the target dredger.
//
// Observability: public methods are OpenTelemetry-instrumented; spans include
// dredger/repair identifiers and item counts.
package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/hydromech/dredger-journal/internal/domain"
	"github.com/hydromech/dredger-journal/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RepairItemInput is one requested swap: the incoming component to install
// and the hour reading reported for the component being removed.
type RepairItemInput struct {
	ComponentID string
	Hours       uint
	Note        string
}

// CreateRepairInput is a full repair submission.
type CreateRepairInput struct {
	DredgerID string
	StartDate time.Time
	EndDate   *time.Time
	Notes     string
	Items     []RepairItemInput
	Actor     domain.Actor
}

// UpdateRepairInput carries a scalar-field update for an existing repair.
// Items must be nil: the item list of a persisted repair is immutable.
type UpdateRepairInput struct {
	StartDate time.Time
	EndDate   *time.Time
	Notes     string
	Items     []RepairItemInput
	Actor     domain.Actor
}

// RepairService implements the repair transaction engine and repair queries.
type RepairService struct {
	// DB is the database handle used for all repair operations.
	DB *gorm.DB
}

// Create validates and executes a repair submission.
//
// Validation (before any write):
//   - EndDate, when set, must not precede StartDate → ErrInvalidDateRange.
//   - At least one item must be submitted → ErrEmptyRepairItems.
//
// Inside one transaction, after locking the dredger row:
//   - the repair row is created;
//   - per item, in submission order: the incoming component is loaded
//     (ErrComponentNotFound aborts everything), the currently installed
//     component of the same part kind is detached and credited with the
//     reported hours through the ledger (one history entry), the incoming
//     component is attached, and the repair item is written.
//
// Submitting the same part kind twice re-services that slot: the second
// item's lookup finds the component the first item installed and swaps it
// out again. Order is preserved, so the outcome is deterministic.
//
// A storage-level uniqueness rejection on install, or lock contention with a
// concurrent submission, surfaces as ErrInstallConflict; the submission can
// be retried.
func (s *RepairService) Create(ctx context.Context, in CreateRepairInput) (*domain.Repair, error) {
	tr := otel.Tracer("services/RepairService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(
			attribute.String("dredger.id", in.DredgerID),
			attribute.Int("repair.items", len(in.Items)),
		),
	)
	defer span.End()

	in.StartDate = normalizeDay(in.StartDate)
	if in.EndDate != nil {
		e := normalizeDay(*in.EndDate)
		in.EndDate = &e
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, ErrInvalidDateRange
	}
	if len(in.Items) == 0 {
		return nil, ErrEmptyRepairItems
	}

	var repairID string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serialize concurrent repairs on the same machine.
		dredger, err := repo.GetDredgerForUpdate(ctx, tx, in.DredgerID)
		if err != nil {
			if isNotFound(err) {
				return ErrDredgerNotFound
			}
			return mapConflict(err)
		}

		rep, err := repo.CreateRepair(ctx, tx, dredger.ID, in.StartDate, in.EndDate, in.Notes, in.Actor.ID)
		if err != nil {
			return err
		}
		repairID = rep.ID

		for pos, item := range in.Items {
			if err := s.applyItem(ctx, tx, rep, dredger.ID, pos, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("repair.id", repairID))
	return repo.GetRepair(ctx, s.DB, repairID)
}

// applyItem executes one swap within the repair transaction.
func (s *RepairService) applyItem(ctx context.Context, tx *gorm.DB, rep *domain.Repair, dredgerID string, pos int, item RepairItemInput) error {
	incoming, err := repo.GetComponent(ctx, tx, item.ComponentID)
	if err != nil {
		if isNotFound(err) {
			return ErrComponentNotFound
		}
		return err
	}

	// Outgoing component of the same part kind, if the slot is occupied.
	old, err := repo.FindInstalled(ctx, tx, dredgerID, incoming.SparePartID)
	if err != nil {
		return err
	}
	if old != nil {
		if err := repo.SetInstallation(ctx, tx, old.ID, nil); err != nil {
			return err
		}
		// Credit the removed component with the reported reading; this also
		// appends its history entry referencing this repair.
		if _, err := updateHoursTx(ctx, tx, old.ID, old.TotalHours+item.Hours, &rep.ID); err != nil {
			return err
		}
	}

	// Attach the incoming component, overwriting any prior installation
	// state it may have had (availability should have pre-filtered to
	// uninstalled candidates).
	if err := repo.SetInstallation(ctx, tx, incoming.ID, &dredgerID); err != nil {
		return mapConflict(err)
	}

	_, err = repo.CreateRepairItem(ctx, tx, rep.ID, incoming.ID, pos, item.Hours, item.Note)
	return err
}

// Get fetches a repair with its items in submission order.
func (s *RepairService) Get(ctx context.Context, id string) (*domain.Repair, error) {
	r, err := repo.GetRepair(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRepairNotFound
		}
		return nil, err
	}
	return r, nil
}

// ListPage returns a page of repairs matching the filter plus the total for
// pagination metadata.
func (s *RepairService) ListPage(ctx context.Context, f repo.RepairListFilter, offset, limit int) ([]domain.Repair, int64, error) {
	total, err := repo.CountRepairs(ctx, s.DB, f)
	if err != nil {
		return nil, 0, err
	}
	rows, err := repo.ListRepairsPage(ctx, s.DB, f, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Update edits the scalar fields (dates, notes) of an existing repair.
// Any attempt to touch the item list is rejected with
// ErrImmutableRepairItems before anything is written.
func (s *RepairService) Update(ctx context.Context, id string, in UpdateRepairInput) (*domain.Repair, error) {
	tr := otel.Tracer("services/RepairService")
	ctx, span := tr.Start(ctx, "Update",
		trace.WithAttributes(attribute.String("repair.id", id)),
	)
	defer span.End()

	if in.Items != nil {
		return nil, ErrImmutableRepairItems
	}
	in.StartDate = normalizeDay(in.StartDate)
	if in.EndDate != nil {
		e := normalizeDay(*in.EndDate)
		in.EndDate = &e
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, ErrInvalidDateRange
	}

	err := repo.UpdateRepairScalar(ctx, s.DB, id, in.StartDate, in.EndDate, in.Notes, in.Actor.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRepairNotFound
		}
		return nil, err
	}
	return repo.GetRepair(ctx, s.DB, id)
}

// Delete removes a repair and its items. Component history entries produced
// by the repair are kept with their repair reference nulled, so the hour
// audit trail survives the deletion.
func (s *RepairService) Delete(ctx context.Context, id string) error {
	err := repo.DeleteRepair(ctx, s.DB, id)
	if isNotFound(err) {
		return ErrRepairNotFound
	}
	return err
}

// normalizeDay truncates a timestamp to its UTC calendar day. Repair windows
// and deviation dates are stored day-precise.
func normalizeDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// mapConflict folds storage-level uniqueness and lock-contention failures
// into the retryable ErrInstallConflict.
func mapConflict(err error) error {
	if err == nil {
		return nil
	}
	if isDuplicate(err) {
		return ErrInstallConflict
	}
	low := strings.ToLower(err.Error())
	if strings.Contains(low, "database is locked") || strings.Contains(low, "busy") {
		return ErrInstallConflict
	}
	return err
}
