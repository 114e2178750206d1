// Package services defines the business logic of the maintenance journal:
// the component ledger, the repair transaction engine, fleet and catalog
// management, deviations, and reporting projections. This file centralizes
// common service-level error values so that they can be consistently
// returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/hydromech/dredger-journal/internal/repo"
)

// Lookup errors.
var (
	// ErrDredgerNotFound indicates that the referenced dredger does not exist.
	ErrDredgerNotFound = errors.New("dredger not found")

	// ErrComponentNotFound indicates that the referenced component instance
	// does not exist.
	ErrComponentNotFound = errors.New("component not found")

	// ErrPartNotFound indicates that the referenced spare part does not exist.
	ErrPartNotFound = errors.New("spare part not found")

	// ErrTypeNotFound indicates that the referenced dredger type does not exist.
	ErrTypeNotFound = errors.New("dredger type not found")

	// ErrRepairNotFound indicates that the referenced repair does not exist.
	ErrRepairNotFound = errors.New("repair not found")

	// ErrDeviationNotFound indicates that the referenced deviation record
	// does not exist.
	ErrDeviationNotFound = errors.New("deviation not found")
)

// Validation and invariant errors.
var (
	// ErrDecreasingHours is returned when an hour update would lower a
	// component's accumulated total. Hour rollbacks are always rejected,
	// never auto-corrected.
	ErrDecreasingHours = errors.New("total hours may not decrease")

	// ErrInvalidDateRange is returned when a repair's end date precedes its
	// start date.
	ErrInvalidDateRange = errors.New("end date before start date")

	// ErrImmutableRepairItems is returned when a caller attempts to change
	// the item list of an already-created repair.
	ErrImmutableRepairItems = errors.New("repair items cannot be edited after creation")

	// ErrEmptyRepairItems is returned when a repair submission carries no
	// swap items.
	ErrEmptyRepairItems = errors.New("repair has no items")

	// ErrInstallConflict is returned when the storage layer rejects an
	// installation because the slot is already taken (or a concurrent repair
	// raced this one). The submission may be retried.
	ErrInstallConflict = errors.New("component installation conflict")

	// ErrDuplicateCode is returned when a reference-data code or inventory
	// number collides with an existing row.
	ErrDuplicateCode = errors.New("code already in use")

	// ErrInvalidInput is returned for malformed field values (blank required
	// strings, unknown enum values).
	ErrInvalidInput = errors.New("invalid input")
)

// isNotFound treats repo-level not found sentinels as "not found" in a
// driver-agnostic way. It also checks gorm.ErrRecordNotFound for safety.
func isNotFound(err error) bool {
	if errors.Is(err, repo.ErrNotFound) {
		return true
	}
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
