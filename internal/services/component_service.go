// Package services – ComponentService
//
// This file implements the component ledger: creation of physical component
// instances, the single mutation path for their accumulated operating hours,
// the availability query used to offer valid replacement candidates, and the
// per-component history view.
//
// The hour counter is monotone: an update below the stored total is rejected
// with ErrDecreasingHours and leaves state unchanged. Every accepted update
// appends one history entry in the same transaction, so ledger and history
// can never diverge. Installation state (which dredger a component sits on)
// is not exposed here at all — only the repair engine moves components.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/hydromech/dredger-journal/internal/domain"
	"github.com/hydromech/dredger-journal/internal/repo"
)

// ComponentService implements the use-cases around component instances and
// their hour ledger.
type ComponentService struct {
	// DB is the database handle used for all component operations.
	// The handle may be a plain *gorm.DB or a transaction-bound handle.
	DB *gorm.DB
}

// Create registers a new component of the given part kind with zero hours
// and no installation.
//
// Errors:
//   - ErrPartNotFound when the part kind does not exist.
func (s *ComponentService) Create(ctx context.Context, partID, serialNumber string) (*domain.Component, error) {
	if _, err := repo.GetSparePart(ctx, s.DB, partID); err != nil {
		if isNotFound(err) {
			return nil, ErrPartNotFound
		}
		return nil, err
	}
	return repo.CreateComponent(ctx, s.DB, partID, serialNumber)
}

// Get fetches a component with its part definition.
func (s *ComponentService) Get(ctx context.Context, id string) (*domain.Component, error) {
	c, err := repo.GetComponent(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrComponentNotFound
		}
		return nil, err
	}
	return c, nil
}

// List returns all components with part and installation preloaded.
func (s *ComponentService) List(ctx context.Context) ([]domain.Component, error) {
	return repo.ListComponents(ctx, s.DB)
}

// UpdateHours sets a component's accumulated hours to newHours.
//
// Semantics:
//   - newHours < stored total → ErrDecreasingHours, nothing written.
//   - Otherwise the delta is computed against the stored total, the counter
//     is rewritten, and one history entry (delta, new total, optional repair
//     reference) is appended — all in one transaction. A zero delta is still
//     recorded; the reading was taken even if the component did not run.
//
// Concurrency: the component row is locked for the duration of the
// transaction so a concurrent update cannot interleave between the read and
// the rewrite.
//
// repairID links the resulting history entry to the repair that produced the
// reading; pass nil for a manual ledger adjustment.
func (s *ComponentService) UpdateHours(ctx context.Context, id string, newHours uint, repairID *string) (*domain.Component, error) {
	var out *domain.Component
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := updateHoursTx(ctx, tx, id, newHours, repairID)
		if err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// updateHoursTx performs the ledger update inside an existing transaction.
// The repair engine calls this directly so the hour credit participates in
// the repair's own atomic unit instead of opening a nested one.
func updateHoursTx(ctx context.Context, tx *gorm.DB, id string, newHours uint, repairID *string) (*domain.Component, error) {
	c, err := repo.GetComponentForUpdate(ctx, tx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrComponentNotFound
		}
		return nil, err
	}
	if newHours < c.TotalHours {
		return nil, ErrDecreasingHours
	}
	delta := int64(newHours) - int64(c.TotalHours)
	if err := repo.SetTotalHours(ctx, tx, c.ID, newHours); err != nil {
		return nil, err
	}
	if _, err := repo.AppendHistory(ctx, tx, c.ID, repairID, delta, newHours); err != nil {
		return nil, err
	}
	c.TotalHours = newHours
	return c, nil
}

// Available returns uninstalled components of the requested part kinds whose
// accumulated hours are still under the part's norm. An empty or absent kind
// set yields an empty result rather than an error. Read-only.
func (s *ComponentService) Available(ctx context.Context, partIDs []string) ([]domain.Component, error) {
	return repo.ListAvailable(ctx, s.DB, partIDs)
}

// History returns the component's hour-change log newest first, each row
// joined with the originating repair's dredger and date window.
//
// Errors:
//   - ErrComponentNotFound when the component does not exist.
func (s *ComponentService) History(ctx context.Context, id string) ([]repo.HistoryRow, error) {
	if _, err := repo.GetComponent(ctx, s.DB, id); err != nil {
		if isNotFound(err) {
			return nil, ErrComponentNotFound
		}
		return nil, err
	}
	return repo.ListComponentHistory(ctx, s.DB, id)
}
