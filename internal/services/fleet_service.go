// Package services – FleetService
//
// This file implements fleet registry use-cases: registering and listing
// dredgers, reading a dredger's installed components, and the "template"
// view — the spare parts the dredger's type requires, joined with whatever
// is currently installed in each slot. The template is advisory: it shows
// gaps and worn slots but enforces nothing.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/hydromech/dredger-journal/internal/domain"
	"github.com/hydromech/dredger-journal/internal/repo"
)

// TemplateSlot is one row of the dredger template view: a required part and
// the component (if any) currently filling that slot.
type TemplateSlot struct {
	PartID       string `json:"part_id"`
	PartName     string `json:"part_name"`
	Manufacturer string `json:"manufacturer,omitempty"`
	NormHours    uint   `json:"norm_hours"`
	ComponentID  string `json:"component_id,omitempty"`
	CurrentHours uint   `json:"current_hours"`
	SerialNumber string `json:"serial_number,omitempty"`
}

// FleetService implements dredger registry operations.
type FleetService struct {
	// DB is the database handle used for all fleet operations.
	DB *gorm.DB
}

// Create registers a dredger under the given inventory number and type.
//
// Errors:
//   - ErrInvalidInput for a blank inventory number.
//   - ErrTypeNotFound when the dredger type does not exist.
//   - ErrDuplicateCode when the inventory number is taken.
func (s *FleetService) Create(ctx context.Context, invNumber, typeID string) (*domain.Dredger, error) {
	invNumber = strings.TrimSpace(invNumber)
	if invNumber == "" {
		return nil, ErrInvalidInput
	}
	if _, err := repo.GetDredgerType(ctx, s.DB, typeID); err != nil {
		if isNotFound(err) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}
	d, err := repo.CreateDredger(ctx, s.DB, invNumber, typeID)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return d, nil
}

// List returns all dredgers with their types.
func (s *FleetService) List(ctx context.Context) ([]domain.Dredger, error) {
	return repo.ListDredgers(ctx, s.DB)
}

// Get fetches a single dredger.
func (s *FleetService) Get(ctx context.Context, id string) (*domain.Dredger, error) {
	d, err := repo.GetDredger(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDredgerNotFound
		}
		return nil, err
	}
	return d, nil
}

// Update changes a dredger's inventory number or type. Changing the type
// does not detach components that the new type no longer requires; the
// template view surfaces such orphans instead.
func (s *FleetService) Update(ctx context.Context, id, invNumber, typeID string) (*domain.Dredger, error) {
	invNumber = strings.TrimSpace(invNumber)
	if invNumber == "" {
		return nil, ErrInvalidInput
	}
	if _, err := repo.GetDredgerType(ctx, s.DB, typeID); err != nil {
		if isNotFound(err) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}
	if err := repo.UpdateDredger(ctx, s.DB, id, invNumber, typeID); err != nil {
		switch {
		case isNotFound(err):
			return nil, ErrDredgerNotFound
		case isDuplicate(err):
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return repo.GetDredger(ctx, s.DB, id)
}

// Components returns the components currently installed on the dredger.
func (s *FleetService) Components(ctx context.Context, dredgerID string) ([]domain.Component, error) {
	if _, err := repo.GetDredger(ctx, s.DB, dredgerID); err != nil {
		if isNotFound(err) {
			return nil, ErrDredgerNotFound
		}
		return nil, err
	}
	return repo.InstalledComponents(ctx, s.DB, dredgerID)
}

// Template returns one slot per spare part required by the dredger's type,
// filled with the currently installed component where present. Slots are
// ordered by part name.
func (s *FleetService) Template(ctx context.Context, dredgerID string) ([]TemplateSlot, error) {
	d, err := repo.GetDredger(ctx, s.DB, dredgerID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDredgerNotFound
		}
		return nil, err
	}

	parts, err := repo.ListTypeParts(ctx, s.DB, d.DredgerTypeID)
	if err != nil {
		return nil, err
	}
	installed, err := repo.InstalledComponents(ctx, s.DB, dredgerID)
	if err != nil {
		return nil, err
	}
	byPart := make(map[string]domain.Component, len(installed))
	for _, c := range installed {
		byPart[c.SparePartID] = c
	}

	slots := make([]TemplateSlot, 0, len(parts))
	for _, p := range parts {
		slot := TemplateSlot{
			PartID:       p.ID,
			PartName:     p.Name,
			Manufacturer: p.Manufacturer,
			NormHours:    p.NormHours,
		}
		if c, ok := byPart[p.ID]; ok {
			slot.ComponentID = c.ID
			slot.CurrentHours = c.TotalHours
			slot.SerialNumber = c.SerialNumber
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
