// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the fleet
// registry (Dredger rows) and for reading a dredger's installed components.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hydromech/dredger-journal/internal/domain"
)

// CreateDredger inserts a new dredger with the given inventory number and type.
func CreateDredger(ctx context.Context, db *gorm.DB, invNumber, typeID string) (*domain.Dredger, error) {
	d := &domain.Dredger{
		ID:            uuid.NewString(),
		InvNumber:     invNumber,
		DredgerTypeID: typeID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

// ListDredgers returns all dredgers with their type preloaded, ordered by
// inventory number.
func ListDredgers(ctx context.Context, db *gorm.DB) ([]domain.Dredger, error) {
	var out []domain.Dredger
	err := db.WithContext(ctx).
		Preload("DredgerType").
		Order("inv_number asc").
		Find(&out).Error
	return out, err
}

// GetDredger fetches a single dredger by ID with its type preloaded, or
// ErrNotFound if missing.
func GetDredger(ctx context.Context, db *gorm.DB, id string) (*domain.Dredger, error) {
	var d domain.Dredger
	err := db.WithContext(ctx).
		Preload("DredgerType").
		Where("id = ?", id).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDredgerForUpdate fetches a dredger while holding a row-level lock for
// the duration of the surrounding transaction. The repair engine locks the
// target dredger before resolving "currently installed component of this
// part kind" so that two concurrent repairs on the same machine serialize.
//
// SQLite has no FOR UPDATE; its single-writer transactions already serialize
// these, so the clause is only added on other dialects.
func GetDredgerForUpdate(ctx context.Context, db *gorm.DB, id string) (*domain.Dredger, error) {
	q := db.WithContext(ctx)
	if db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var d domain.Dredger
	if err := q.Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDredger updates a dredger's inventory number and type. Returns
// ErrNotFound when the dredger does not exist.
func UpdateDredger(ctx context.Context, db *gorm.DB, id, invNumber, typeID string) error {
	res := db.WithContext(ctx).
		Model(&domain.Dredger{}).
		Where("id = ?", id).
		Updates(map[string]any{"inv_number": invNumber, "dredger_type_id": typeID})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// InstalledComponents returns the components currently installed on the
// dredger, with their part definitions preloaded, ordered by part name.
func InstalledComponents(ctx context.Context, db *gorm.DB, dredgerID string) ([]domain.Component, error) {
	var out []domain.Component
	err := db.WithContext(ctx).
		Preload("SparePart").
		Joins("JOIN spare_parts ON spare_parts.id = components.spare_part_id").
		Where("components.current_dredger_id = ?", dredgerID).
		Order("spare_parts.name asc").
		Find(&out).Error
	return out, err
}
