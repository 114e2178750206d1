// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the append-only
// component history log.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hydromech/dredger-journal/internal/domain"
)

// AppendHistory writes one immutable history entry for a component hour
// change. repairID may be nil for manual ledger adjustments.
func AppendHistory(ctx context.Context, db *gorm.DB, componentID string, repairID *string, delta int64, totalHours uint) (*domain.ComponentHistoryEntry, error) {
	e := &domain.ComponentHistoryEntry{
		ID:          uuid.NewString(),
		ComponentID: componentID,
		RepairID:    repairID,
		HoursDelta:  delta,
		TotalHours:  totalHours,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

// HistoryRow is one display row of a component's history: the hour change
// joined with the originating repair's dredger and date window (empty when
// the entry came from a manual adjustment or the repair was deleted).
type HistoryRow struct {
	EntryID          string     `json:"entry_id"`
	RepairID         *string    `json:"repair_id,omitempty"`
	DredgerInvNumber string     `json:"dredger,omitempty"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	HoursDelta       int64      `json:"hours_delta"`
	TotalHours       uint       `json:"total_hours"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ListComponentHistory returns the component's history rows ordered newest
// first, left-joined with repair metadata for display.
func ListComponentHistory(ctx context.Context, db *gorm.DB, componentID string) ([]HistoryRow, error) {
	var out []HistoryRow
	err := db.WithContext(ctx).
		Model(&domain.ComponentHistoryEntry{}).
		Select(`component_history.id AS entry_id,
			component_history.repair_id,
			dredgers.inv_number AS dredger_inv_number,
			repairs.start_date,
			repairs.end_date,
			component_history.hours_delta,
			component_history.total_hours,
			component_history.created_at`).
		Joins("LEFT JOIN repairs ON repairs.id = component_history.repair_id").
		Joins("LEFT JOIN dredgers ON dredgers.id = repairs.dredger_id").
		Where("component_history.component_id = ?", componentID).
		Order("component_history.created_at DESC").
		Scan(&out).Error
	return out, err
}

// CountComponentHistory returns the number of history entries for a component.
func CountComponentHistory(ctx context.Context, db *gorm.DB, componentID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.ComponentHistoryEntry{}).
		Where("component_id = ?", componentID).
		Count(&total).Error
	return total, err
}
