// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the reference
// data: dredger types, spare parts, and type↔part requirement rows.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a record is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hydromech/dredger-journal/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateDredgerType inserts a new dredger type with the given name and code.
func CreateDredgerType(ctx context.Context, db *gorm.DB, name, code string) (*domain.DredgerType, error) {
	t := &domain.DredgerType{
		ID:        uuid.NewString(),
		Name:      name,
		Code:      code,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// ListDredgerTypes returns all dredger types ordered by code.
func ListDredgerTypes(ctx context.Context, db *gorm.DB) ([]domain.DredgerType, error) {
	var out []domain.DredgerType
	err := db.WithContext(ctx).Order("code asc").Find(&out).Error
	return out, err
}

// GetDredgerType fetches a single dredger type by ID, or ErrNotFound.
func GetDredgerType(ctx context.Context, db *gorm.DB, id string) (*domain.DredgerType, error) {
	var t domain.DredgerType
	if err := db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateSparePart inserts a new spare part definition. NormHours 0 means the
// part has no operating-hour ceiling.
func CreateSparePart(ctx context.Context, db *gorm.DB, code, name, manufacturer string, normHours uint, drawingFile string) (*domain.SparePart, error) {
	p := &domain.SparePart{
		ID:           uuid.NewString(),
		Code:         code,
		Name:         name,
		Manufacturer: manufacturer,
		NormHours:    normHours,
		DrawingFile:  drawingFile,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// ListSpareParts returns all spare parts ordered by code.
func ListSpareParts(ctx context.Context, db *gorm.DB) ([]domain.SparePart, error) {
	var out []domain.SparePart
	err := db.WithContext(ctx).Order("code asc").Find(&out).Error
	return out, err
}

// GetSparePart fetches a single spare part by ID, or ErrNotFound.
func GetSparePart(ctx context.Context, db *gorm.DB, id string) (*domain.SparePart, error) {
	var p domain.SparePart
	if err := db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateSparePart updates the mutable attributes of a spare part. If no rows
// are affected the part does not exist and ErrNotFound is returned.
func UpdateSparePart(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.SparePart{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateTypePart associates a spare part with a dredger type. The underlying
// unique index rejects duplicate (type, part) pairs.
func CreateTypePart(ctx context.Context, db *gorm.DB, typeID, partID string) (*domain.DredgerTypePart, error) {
	tp := &domain.DredgerTypePart{
		ID:            uuid.NewString(),
		DredgerTypeID: typeID,
		SparePartID:   partID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(tp).Error; err != nil {
		return nil, err
	}
	return tp, nil
}

// ListTypeParts returns the spare parts required by the given dredger type,
// ordered by part name.
func ListTypeParts(ctx context.Context, db *gorm.DB, typeID string) ([]domain.SparePart, error) {
	var out []domain.SparePart
	err := db.WithContext(ctx).
		Model(&domain.SparePart{}).
		Joins("JOIN dredger_type_parts tp ON tp.spare_part_id = spare_parts.id").
		Where("tp.dredger_type_id = ?", typeID).
		Order("spare_parts.name asc").
		Find(&out).Error
	return out, err
}

// DeleteTypePart removes a (type, part) requirement row. Returns ErrNotFound
// when the association does not exist.
func DeleteTypePart(ctx context.Context, db *gorm.DB, typeID, partID string) error {
	res := db.WithContext(ctx).
		Where("dredger_type_id = ? AND spare_part_id = ?", typeID, partID).
		Delete(&domain.DredgerTypePart{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
