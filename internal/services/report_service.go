// Package services – ReportService
//
// This file implements the read-only projections consumed by the reporting
// layer: flat repair/deviation tables for export and the dashboard
// aggregates (downtime counts by deviation type, top worn components).
// Formatting and transport of these projections (spreadsheets, charts) live
// outside this service; it only shapes the data.
package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hydromech/dredger-journal/internal/domain"
	"github.com/hydromech/dredger-journal/internal/repo"
)

// Column describes one export column: the row field key and the caption the
// export layer should render.
type Column struct {
	Key     string `json:"key"`
	Caption string `json:"caption"`
}

// DowntimeCount is the number of deviations of one type within the
// dashboard's date range.
type DowntimeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// Dashboard aggregates the journal's landing-page numbers.
type Dashboard struct {
	Downtime []DowntimeCount `json:"downtime"`
	WearTop  []repo.WearRow  `json:"wear_top"`
}

// ReportService exposes reporting projections.
type ReportService struct {
	// DB is the database handle used for all report queries.
	DB *gorm.DB

	// CaptionLocale selects the casing locale for generated column captions.
	CaptionLocale language.Tag
}

// Dashboard returns downtime counts per deviation type within [after,
// before] and the five most worn components. Zero bounds default to the
// first day of the current month and today, respectively. All deviation
// types are present in the result, zero-filled, in report order.
func (s *ReportService) Dashboard(ctx context.Context, after, before time.Time) (*Dashboard, error) {
	now := time.Now().UTC()
	if after.IsZero() {
		after = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	if before.IsZero() {
		before = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	counts, err := repo.CountDeviationsByType(ctx, s.DB, after, before)
	if err != nil {
		return nil, err
	}
	downtime := make([]DowntimeCount, 0, len(domain.DeviationTypes))
	for _, t := range domain.DeviationTypes {
		downtime = append(downtime, DowntimeCount{Type: t, Count: counts[t]})
	}

	wear, err := repo.TopWear(ctx, s.DB, 5)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Downtime: downtime, WearTop: wear}, nil
}

// RepairRows returns the repair export projection with its column captions.
func (s *ReportService) RepairRows(ctx context.Context) ([]Column, []repo.RepairExportRow, error) {
	rows, err := repo.ListRepairExportRows(ctx, s.DB)
	if err != nil {
		return nil, nil, err
	}
	cols := s.columns("id", "dredger", "start_date", "end_date", "notes", "created_by")
	return cols, rows, nil
}

// DeviationRows returns the deviation export projection with its column
// captions.
func (s *ReportService) DeviationRows(ctx context.Context) ([]Column, []repo.DeviationExportRow, error) {
	rows, err := repo.ListDeviationExportRows(ctx, s.DB)
	if err != nil {
		return nil, nil, err
	}
	cols := s.columns("id", "date", "dredger", "type", "location", "description", "hours_at_deviation")
	return cols, rows, nil
}

// columns builds Column values from snake_case row keys, deriving captions
// by title-casing the words ("start_date" → "Start Date").
func (s *ReportService) columns(keys ...string) []Column {
	loc := s.CaptionLocale
	if loc == language.Und {
		loc = language.English
	}
	caser := cases.Title(loc)
	out := make([]Column, 0, len(keys))
	for _, k := range keys {
		caption := caser.String(strings.ReplaceAll(k, "_", " "))
		if k == "id" {
			caption = "ID"
		}
		out = append(out, Column{Key: k, Caption: caption})
	}
	return out
}
