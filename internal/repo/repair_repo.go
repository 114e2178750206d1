// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for Repair and
// RepairItem rows.
//
// Note on ownership: repair items are written exactly once, by the repair
// engine inside its transaction. There is deliberately no update helper for
// items; the item list of a persisted repair is immutable.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hydromech/dredger-journal/internal/domain"
)

// RepairStatus values accepted by the repair listing filter. The status of a
// repair is derived from its date window relative to "today", mirroring the
// journal's planning views.
const (
	RepairStatusPlanned    = "planned"
	RepairStatusInProgress = "in_progress"
	RepairStatusCompleted  = "completed"
)

// RepairListFilter narrows ListRepairsPage / CountRepairs.
type RepairListFilter struct {
	DredgerID string     // only repairs of this dredger when non-empty
	Status    string     // planned | in_progress | completed (empty = all)
	StartFrom *time.Time // start_date >= StartFrom
	EndUntil  *time.Time // end_date <= EndUntil
	Today     time.Time  // reference day for status derivation
}

// CreateRepair inserts the repair row itself (no items). The engine creates
// items separately within the same transaction.
func CreateRepair(ctx context.Context, db *gorm.DB, dredgerID string, startDate time.Time, endDate *time.Time, notes, actorID string) (*domain.Repair, error) {
	r := &domain.Repair{
		ID:        uuid.NewString(),
		DredgerID: dredgerID,
		StartDate: startDate,
		EndDate:   endDate,
		Notes:     notes,
		CreatedBy: actorID,
		UpdatedBy: actorID,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// CreateRepairItem appends one swap record to a repair at the given position.
func CreateRepairItem(ctx context.Context, db *gorm.DB, repairID, componentID string, position int, hours uint, note string) (*domain.RepairItem, error) {
	it := &domain.RepairItem{
		ID:          uuid.NewString(),
		RepairID:    repairID,
		Position:    position,
		ComponentID: componentID,
		Hours:       hours,
		Note:        note,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(it).Error; err != nil {
		return nil, err
	}
	return it, nil
}

// GetRepair fetches a repair with its dredger and items (in submission
// order, components preloaded), or ErrNotFound.
func GetRepair(ctx context.Context, db *gorm.DB, id string) (*domain.Repair, error) {
	var r domain.Repair
	err := db.WithContext(ctx).
		Preload("Dredger").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("Items.Component").
		Preload("Items.Component.SparePart").
		Where("id = ?", id).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// repairListQuery applies the common filter conditions for list/count.
func repairListQuery(ctx context.Context, db *gorm.DB, f RepairListFilter) *gorm.DB {
	q := db.WithContext(ctx).Model(&domain.Repair{})
	if f.DredgerID != "" {
		q = q.Where("dredger_id = ?", f.DredgerID)
	}
	if f.StartFrom != nil {
		q = q.Where("start_date >= ?", *f.StartFrom)
	}
	if f.EndUntil != nil {
		q = q.Where("end_date IS NOT NULL AND end_date <= ?", *f.EndUntil)
	}
	today := f.Today
	if today.IsZero() {
		today = time.Now().UTC().Truncate(24 * time.Hour)
	}
	switch f.Status {
	case RepairStatusPlanned:
		q = q.Where("start_date > ?", today)
	case RepairStatusCompleted:
		q = q.Where("end_date IS NOT NULL AND end_date < ?", today)
	case RepairStatusInProgress:
		q = q.Where("start_date <= ?", today).
			Where("end_date IS NULL OR end_date >= ?", today)
	}
	return q
}

// CountRepairs returns the number of repairs matching the filter.
func CountRepairs(ctx context.Context, db *gorm.DB, f RepairListFilter) (int64, error) {
	var total int64
	err := repairListQuery(ctx, db, f).Count(&total).Error
	return total, err
}

// ListRepairsPage returns a page of repairs matching the filter, newest
// start date first, with dredgers preloaded.
func ListRepairsPage(ctx context.Context, db *gorm.DB, f RepairListFilter, offset, limit int) ([]domain.Repair, error) {
	var out []domain.Repair
	err := repairListQuery(ctx, db, f).
		Preload("Dredger").
		Order("start_date desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// UpdateRepairScalar updates the scalar fields of a repair (dates and notes)
// and stamps updated_by. Items are not touched. Returns ErrNotFound when the
// repair does not exist.
func UpdateRepairScalar(ctx context.Context, db *gorm.DB, id string, startDate time.Time, endDate *time.Time, notes, actorID string) error {
	res := db.WithContext(ctx).
		Model(&domain.Repair{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"start_date": startDate,
			"end_date":   endDate,
			"notes":      notes,
			"updated_by": actorID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteRepair removes a repair. Items cascade; component history entries
// keep their rows with repair_id nulled (audit policy).
func DeleteRepair(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// SET NULL explicitly; not every SQLite build enforces the declared FK action.
		if err := tx.Model(&domain.ComponentHistoryEntry{}).
			Where("repair_id = ?", id).
			Update("repair_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("repair_id = ?", id).Delete(&domain.RepairItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&domain.Repair{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// CountRepairItems returns the number of items attached to a repair.
func CountRepairItems(ctx context.Context, db *gorm.DB, repairID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.RepairItem{}).
		Where("repair_id = ?", repairID).
		Count(&total).Error
	return total, err
}
