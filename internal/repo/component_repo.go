// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the component
// ledger: physical component instances, their installation state, and the
// availability query used to offer replacement candidates.
//
// Installation state and total_hours are mutated only through the narrow
// helpers here, and only ever from inside a service-level transaction; no
// handler writes these columns directly.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hydromech/dredger-journal/internal/domain"
)

// CreateComponent inserts a new component of the given part kind with zero
// accumulated hours and no installation.
func CreateComponent(ctx context.Context, db *gorm.DB, partID, serialNumber string) (*domain.Component, error) {
	c := &domain.Component{
		ID:           uuid.NewString(),
		SparePartID:  partID,
		SerialNumber: serialNumber,
		TotalHours:   0,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// ListComponents returns all components with part and current installation
// preloaded, ordered by accumulated hours descending.
func ListComponents(ctx context.Context, db *gorm.DB) ([]domain.Component, error) {
	var out []domain.Component
	err := db.WithContext(ctx).
		Preload("SparePart").
		Preload("CurrentDredger").
		Order("total_hours desc").
		Find(&out).Error
	return out, err
}

// GetComponent fetches a single component by ID with its part preloaded, or
// ErrNotFound if missing.
func GetComponent(ctx context.Context, db *gorm.DB, id string) (*domain.Component, error) {
	var c domain.Component
	err := db.WithContext(ctx).
		Preload("SparePart").
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetComponentForUpdate fetches a component while holding a row-level lock
// for the duration of the surrounding transaction. Used by the ledger's hour
// update so a concurrent writer cannot interleave between the read of
// total_hours and its rewrite.
func GetComponentForUpdate(ctx context.Context, db *gorm.DB, id string) (*domain.Component, error) {
	q := db.WithContext(ctx)
	// SQLite has no FOR UPDATE; its single-writer transactions serialize this.
	if db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var c domain.Component
	if err := q.Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindInstalled returns the component of the given part kind currently
// installed on the dredger, or nil when the slot is empty. Under the partial
// unique index on (current_dredger_id, spare_part_id) at most one row can
// match.
func FindInstalled(ctx context.Context, db *gorm.DB, dredgerID, partID string) (*domain.Component, error) {
	var c domain.Component
	err := db.WithContext(ctx).
		Where("current_dredger_id = ? AND spare_part_id = ?", dredgerID, partID).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SetInstallation points the component at a dredger (or detaches it when
// dredgerID is nil). Returns ErrNotFound when the component does not exist.
func SetInstallation(ctx context.Context, db *gorm.DB, componentID string, dredgerID *string) error {
	res := db.WithContext(ctx).
		Model(&domain.Component{}).
		Where("id = ?", componentID).
		Update("current_dredger_id", dredgerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetTotalHours overwrites the stored hour counter. Monotonicity is enforced
// by the service layer before calling this; the repo performs no checks.
func SetTotalHours(ctx context.Context, db *gorm.DB, componentID string, hours uint) error {
	res := db.WithContext(ctx).
		Model(&domain.Component{}).
		Where("id = ?", componentID).
		Update("total_hours", hours)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListAvailable returns components that are of one of the requested part
// kinds, currently uninstalled, and still under their part's norm hours.
// An empty kind set yields an empty result.
func ListAvailable(ctx context.Context, db *gorm.DB, partIDs []string) ([]domain.Component, error) {
	if len(partIDs) == 0 {
		return []domain.Component{}, nil
	}
	var out []domain.Component
	err := db.WithContext(ctx).
		Preload("SparePart").
		Joins("JOIN spare_parts ON spare_parts.id = components.spare_part_id").
		Where("components.spare_part_id IN ?", partIDs).
		Where("components.current_dredger_id IS NULL").
		Where("components.total_hours < spare_parts.norm_hours").
		Order("components.total_hours asc").
		Find(&out).Error
	return out, err
}
