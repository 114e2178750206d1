// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for deviation
// (unplanned downtime) records.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hydromech/dredger-journal/internal/domain"
)

// NewDeviation carries the caller-supplied attributes of a deviation record.
type NewDeviation struct {
	DredgerID        string
	Date             time.Time
	Type             string
	Location         string
	LastPPRDate      time.Time
	HoursAtDeviation uint
	Description      string
	ShiftLeader      string
	Mechanic         string
	Electrician      string
}

// CreateDeviation inserts a new deviation row stamped with the acting user.
func CreateDeviation(ctx context.Context, db *gorm.DB, in NewDeviation, actorID string) (*domain.Deviation, error) {
	d := &domain.Deviation{
		ID:               uuid.NewString(),
		DredgerID:        in.DredgerID,
		Date:             in.Date,
		Type:             in.Type,
		Location:         in.Location,
		LastPPRDate:      in.LastPPRDate,
		HoursAtDeviation: in.HoursAtDeviation,
		Description:      in.Description,
		ShiftLeader:      in.ShiftLeader,
		Mechanic:         in.Mechanic,
		Electrician:      in.Electrician,
		CreatedBy:        actorID,
		UpdatedBy:        actorID,
		CreatedAt:        time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

// GetDeviation fetches a single deviation with its dredger preloaded, or
// ErrNotFound.
func GetDeviation(ctx context.Context, db *gorm.DB, id string) (*domain.Deviation, error) {
	var d domain.Deviation
	err := db.WithContext(ctx).
		Preload("Dredger").
		Where("id = ?", id).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// deviationRangeQuery scopes deviations to an inclusive date range; zero
// bounds are ignored.
func deviationRangeQuery(ctx context.Context, db *gorm.DB, after, before time.Time) *gorm.DB {
	q := db.WithContext(ctx).Model(&domain.Deviation{})
	if !after.IsZero() {
		q = q.Where("date >= ?", after)
	}
	if !before.IsZero() {
		q = q.Where("date <= ?", before)
	}
	return q
}

// CountDeviations returns the number of deviations within the date range.
func CountDeviations(ctx context.Context, db *gorm.DB, after, before time.Time) (int64, error) {
	var total int64
	err := deviationRangeQuery(ctx, db, after, before).Count(&total).Error
	return total, err
}

// ListDeviationsPage returns a page of deviations within the date range,
// newest first, with dredgers preloaded.
func ListDeviationsPage(ctx context.Context, db *gorm.DB, after, before time.Time, offset, limit int) ([]domain.Deviation, error) {
	var out []domain.Deviation
	err := deviationRangeQuery(ctx, db, after, before).
		Preload("Dredger").
		Order("date desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountDeviationsByType returns per-type deviation counts within the date
// range. Types without occurrences are absent from the map.
func CountDeviationsByType(ctx context.Context, db *gorm.DB, after, before time.Time) (map[string]int64, error) {
	var rows []struct {
		Type  string
		Count int64
	}
	err := deviationRangeQuery(ctx, db, after, before).
		Select("type, COUNT(*) AS count").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Type] = r.Count
	}
	return out, nil
}
