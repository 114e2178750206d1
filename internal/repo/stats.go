// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the read-only aggregate queries consumed
// by the reporting layer: wear percentages and flat export projections. Each
// function is context-aware and safe to call from services or handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/hydromech/dredger-journal/internal/domain"
)

// WearRow is one entry of the component wear ranking: where the component
// sits, what part it is, and its wear percentage against the part's norm.
type WearRow struct {
	ComponentID      string  `json:"component_id"`
	DredgerInvNumber string  `json:"dredger"`
	PartName         string  `json:"part"`
	TotalHours       uint    `json:"total_hours"`
	NormHours        uint    `json:"norm_hours"`
	Pct              float64 `json:"pct"`
}

// TopWear returns the limit most-worn components by total_hours/norm_hours
// percentage, descending. Parts with a zero norm carry no ceiling and are
// excluded (also guards the division). Uninstalled components report an
// empty dredger number.
func TopWear(ctx context.Context, db *gorm.DB, limit int) ([]WearRow, error) {
	if limit <= 0 {
		limit = 5
	}
	var out []WearRow
	err := db.WithContext(ctx).
		Model(&domain.Component{}).
		Select(`components.id AS component_id,
			COALESCE(dredgers.inv_number, '') AS dredger_inv_number,
			spare_parts.name AS part_name,
			components.total_hours,
			spare_parts.norm_hours,
			components.total_hours * 100.0 / spare_parts.norm_hours AS pct`).
		Joins("JOIN spare_parts ON spare_parts.id = components.spare_part_id").
		Joins("LEFT JOIN dredgers ON dredgers.id = components.current_dredger_id").
		Where("spare_parts.norm_hours > 0").
		Order("pct DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// RepairExportRow is the flat projection of one repair for tabular export.
type RepairExportRow struct {
	ID               string     `json:"id"`
	DredgerInvNumber string     `json:"dredger"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Notes            string     `json:"notes"`
	CreatedBy        string     `json:"created_by"`
}

// ListRepairExportRows returns all repairs joined with the dredger inventory
// number, ordered by start date ascending (export order).
func ListRepairExportRows(ctx context.Context, db *gorm.DB) ([]RepairExportRow, error) {
	var out []RepairExportRow
	err := db.WithContext(ctx).
		Model(&domain.Repair{}).
		Select(`repairs.id,
			dredgers.inv_number AS dredger_inv_number,
			repairs.start_date,
			repairs.end_date,
			repairs.notes,
			repairs.created_by`).
		Joins("JOIN dredgers ON dredgers.id = repairs.dredger_id").
		Order("repairs.start_date ASC").
		Scan(&out).Error
	return out, err
}

// DeviationExportRow is the flat projection of one deviation for tabular
// export.
type DeviationExportRow struct {
	ID               string    `json:"id"`
	Date             time.Time `json:"date"`
	DredgerInvNumber string    `json:"dredger"`
	Type             string    `json:"type"`
	Location         string    `json:"location"`
	Description      string    `json:"description"`
	HoursAtDeviation uint      `json:"hours_at_deviation"`
}

// ListDeviationExportRows returns all deviations joined with the dredger
// inventory number, ordered by date ascending (export order).
func ListDeviationExportRows(ctx context.Context, db *gorm.DB) ([]DeviationExportRow, error) {
	var out []DeviationExportRow
	err := db.WithContext(ctx).
		Model(&domain.Deviation{}).
		Select(`deviations.id,
			deviations.date,
			dredgers.inv_number AS dredger_inv_number,
			deviations.type,
			deviations.location,
			deviations.description,
			deviations.hours_at_deviation`).
		Joins("JOIN dredgers ON dredgers.id = deviations.dredger_id").
		Order("deviations.date ASC").
		Scan(&out).Error
	return out, err
}
