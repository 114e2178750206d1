// Package services – DeviationService
//
// This file implements recording and querying of deviations (unplanned
// downtime events). Deviations are plain journal entries: validated on the
// way in, never mutated by the repair engine, and consumed by the reporting
// layer for downtime counts.
package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/hydromech/dredger-journal/internal/domain"
	"github.com/hydromech/dredger-journal/internal/repo"
)

// DeviationService implements deviation use-cases.
type DeviationService struct {
	// DB is the database handle used for all deviation operations.
	DB *gorm.DB
}

// Create records a deviation on behalf of actor.
//
// Errors:
//   - ErrInvalidInput for unknown type/location values or a blank description.
//   - ErrDredgerNotFound when the dredger does not exist.
func (s *DeviationService) Create(ctx context.Context, in repo.NewDeviation, actor domain.Actor) (*domain.Deviation, error) {
	if !domain.ValidDeviationType(in.Type) || !domain.ValidDeviationLocation(in.Location) {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, ErrInvalidInput
	}
	if _, err := repo.GetDredger(ctx, s.DB, in.DredgerID); err != nil {
		if isNotFound(err) {
			return nil, ErrDredgerNotFound
		}
		return nil, err
	}
	in.Date = normalizeDay(in.Date)
	in.LastPPRDate = normalizeDay(in.LastPPRDate)
	return repo.CreateDeviation(ctx, s.DB, in, actor.ID)
}

// Get fetches a single deviation.
func (s *DeviationService) Get(ctx context.Context, id string) (*domain.Deviation, error) {
	d, err := repo.GetDeviation(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDeviationNotFound
		}
		return nil, err
	}
	return d, nil
}

// ListPage returns a page of deviations within the inclusive date range
// (zero bounds are open) plus the total for pagination metadata.
func (s *DeviationService) ListPage(ctx context.Context, after, before time.Time, offset, limit int) ([]domain.Deviation, int64, error) {
	total, err := repo.CountDeviations(ctx, s.DB, after, before)
	if err != nil {
		return nil, 0, err
	}
	rows, err := repo.ListDeviationsPage(ctx, s.DB, after, before, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
