// Package services – CatalogService
//
// This file implements reference-data management: dredger types, spare part
// definitions, and the (type, part) requirement associations used by the
// dredger template view. Pure lookup data; the only rules here are field
// validation and unique-code enforcement.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/hydromech/dredger-journal/internal/domain"
	"github.com/hydromech/dredger-journal/internal/repo"
)

// SparePartInput carries the caller-supplied attributes of a spare part.
// NormHours 0 means the part has no operating-hour ceiling.
type SparePartInput struct {
	Code         string
	Name         string
	Manufacturer string
	NormHours    uint
	DrawingFile  string
}

// CatalogService implements reference-data use-cases.
type CatalogService struct {
	// DB is the database handle used for all catalog operations.
	DB *gorm.DB
}

// CreateType registers a dredger type.
//
// Errors:
//   - ErrInvalidInput for a blank name or code.
//   - ErrDuplicateCode when name or code collides.
func (s *CatalogService) CreateType(ctx context.Context, name, code string) (*domain.DredgerType, error) {
	name, code = strings.TrimSpace(name), strings.TrimSpace(code)
	if name == "" || code == "" {
		return nil, ErrInvalidInput
	}
	t, err := repo.CreateDredgerType(ctx, s.DB, name, code)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return t, nil
}

// ListTypes returns all dredger types.
func (s *CatalogService) ListTypes(ctx context.Context) ([]domain.DredgerType, error) {
	return repo.ListDredgerTypes(ctx, s.DB)
}

// CreatePart registers a spare part definition.
//
// Errors:
//   - ErrInvalidInput for a blank code or name.
//   - ErrDuplicateCode when the code collides.
func (s *CatalogService) CreatePart(ctx context.Context, in SparePartInput) (*domain.SparePart, error) {
	in.Code, in.Name = strings.TrimSpace(in.Code), strings.TrimSpace(in.Name)
	if in.Code == "" || in.Name == "" {
		return nil, ErrInvalidInput
	}
	p, err := repo.CreateSparePart(ctx, s.DB, in.Code, in.Name, in.Manufacturer, in.NormHours, in.DrawingFile)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return p, nil
}

// ListParts returns all spare parts.
func (s *CatalogService) ListParts(ctx context.Context) ([]domain.SparePart, error) {
	return repo.ListSpareParts(ctx, s.DB)
}

// GetPart fetches a single spare part.
func (s *CatalogService) GetPart(ctx context.Context, id string) (*domain.SparePart, error) {
	p, err := repo.GetSparePart(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPartNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpdatePart edits a spare part's attributes.
func (s *CatalogService) UpdatePart(ctx context.Context, id string, in SparePartInput) (*domain.SparePart, error) {
	in.Code, in.Name = strings.TrimSpace(in.Code), strings.TrimSpace(in.Name)
	if in.Code == "" || in.Name == "" {
		return nil, ErrInvalidInput
	}
	fields := map[string]any{
		"code":         in.Code,
		"name":         in.Name,
		"manufacturer": in.Manufacturer,
		"norm_hours":   in.NormHours,
	}
	if in.DrawingFile != "" {
		fields["drawing_file"] = in.DrawingFile
	}
	if err := repo.UpdateSparePart(ctx, s.DB, id, fields); err != nil {
		switch {
		case isNotFound(err):
			return nil, ErrPartNotFound
		case isDuplicate(err):
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return repo.GetSparePart(ctx, s.DB, id)
}

// AddTypePart marks a spare part as required by a dredger type. Adding the
// same pair twice is reported as ErrDuplicateCode.
func (s *CatalogService) AddTypePart(ctx context.Context, typeID, partID string) (*domain.DredgerTypePart, error) {
	if _, err := repo.GetDredgerType(ctx, s.DB, typeID); err != nil {
		if isNotFound(err) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}
	if _, err := repo.GetSparePart(ctx, s.DB, partID); err != nil {
		if isNotFound(err) {
			return nil, ErrPartNotFound
		}
		return nil, err
	}
	tp, err := repo.CreateTypePart(ctx, s.DB, typeID, partID)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return tp, nil
}

// ListTypeParts returns the spare parts a dredger type requires.
func (s *CatalogService) ListTypeParts(ctx context.Context, typeID string) ([]domain.SparePart, error) {
	if _, err := repo.GetDredgerType(ctx, s.DB, typeID); err != nil {
		if isNotFound(err) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}
	return repo.ListTypeParts(ctx, s.DB, typeID)
}

// RemoveTypePart drops a (type, part) requirement.
func (s *CatalogService) RemoveTypePart(ctx context.Context, typeID, partID string) error {
	err := repo.DeleteTypePart(ctx, s.DB, typeID, partID)
	if isNotFound(err) {
		return ErrPartNotFound
	}
	return err
}
