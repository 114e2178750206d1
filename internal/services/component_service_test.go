package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/hydromech/dredger-journal/internal/repo"
)

func TestComponentCreate_UnknownPart(t *testing.T) {
	db := newJournalDB(t)
	svc := &ComponentService{DB: db}

	if _, err := svc.Create(context.Background(), uuid.NewString(), "SN-1"); !errors.Is(err, ErrPartNotFound) {
		t.Fatalf("expected ErrPartNotFound, got %v", err)
	}
}

func TestComponentCreate_StartsAtZeroUninstalled(t *testing.T) {
	db := newJournalDB(t)
	_, partID := seedRefData(t, db, 1000)
	svc := &ComponentService{DB: db}

	c, err := svc.Create(context.Background(), partID, "SN-77")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.TotalHours != 0 || c.Installed() || c.SerialNumber != "SN-77" {
		t.Fatalf("fresh component: %+v", c)
	}
}

func TestComponentUpdateHours_RejectsDecrease(t *testing.T) {
	db := newJournalDB(t)
	_, partID := seedRefData(t, db, 1000)
	c := seedComponent(t, db, partID, 100, nil)
	svc := &ComponentService{DB: db}

	_, err := svc.UpdateHours(context.Background(), c.ID, 90, nil)
	if !errors.Is(err, ErrDecreasingHours) {
		t.Fatalf("expected ErrDecreasingHours, got %v", err)
	}

	// Nothing written: counter unchanged, history empty.
	got, _ := repo.GetComponent(context.Background(), db, c.ID)
	if got.TotalHours != 100 {
		t.Fatalf("counter changed to %d", got.TotalHours)
	}
	if n, _ := repo.CountComponentHistory(context.Background(), db, c.ID); n != 0 {
		t.Fatalf("rejected update left %d history entries", n)
	}
}

func TestComponentUpdateHours_AppendsHistoryWithDelta(t *testing.T) {
	db := newJournalDB(t)
	_, partID := seedRefData(t, db, 1000)
	c := seedComponent(t, db, partID, 100, nil)
	svc := &ComponentService{DB: db}

	got, err := svc.UpdateHours(context.Background(), c.ID, 150, nil)
	if err != nil {
		t.Fatalf("UpdateHours: %v", err)
	}
	if got.TotalHours != 150 {
		t.Fatalf("returned hours = %d", got.TotalHours)
	}

	// A zero-delta reading is still a reading.
	if _, err := svc.UpdateHours(context.Background(), c.ID, 150, nil); err != nil {
		t.Fatalf("equal reading: %v", err)
	}

	rows, err := repo.ListComponentHistory(context.Background(), db, c.ID)
	if err != nil || len(rows) != 2 {
		t.Fatalf("history: err=%v len=%d", err, len(rows))
	}
	// One +50 entry and one zero-delta entry, both ending at 150.
	deltas := map[int64]bool{}
	for _, r := range rows {
		deltas[r.HoursDelta] = true
		if r.TotalHours != 150 {
			t.Fatalf("entry total: %+v", r)
		}
		// Manual adjustments carry no repair reference.
		if r.RepairID != nil {
			t.Fatalf("manual entry references a repair: %+v", r)
		}
	}
	if !deltas[50] || !deltas[0] {
		t.Fatalf("deltas recorded: %+v", rows)
	}
}

func TestComponentUpdateHours_NotFound(t *testing.T) {
	db := newJournalDB(t)
	svc := &ComponentService{DB: db}
	if _, err := svc.UpdateHours(context.Background(), uuid.NewString(), 10, nil); !errors.Is(err, ErrComponentNotFound) {
		t.Fatalf("expected ErrComponentNotFound, got %v", err)
	}
}

func TestComponentAvailable_Exclusions(t *testing.T) {
	db := newJournalDB(t)
	typeID, partID := seedRefData(t, db, 100)
	noCeiling, err := repo.CreateSparePart(context.Background(), db, "P-NC", "Gasket", "", 0, "")
	if err != nil {
		t.Fatalf("seed part: %v", err)
	}
	dredgerID := seedDredger(t, db, typeID)

	fresh := seedComponent(t, db, partID, 10, nil)        // candidate
	seedComponent(t, db, partID, 10, &dredgerID)          // installed: out
	seedComponent(t, db, partID, 100, nil)                // at the norm: out
	seedComponent(t, db, noCeiling.ID, 0, nil)            // norm 0: out

	svc := &ComponentService{DB: db}
	got, err := svc.Available(context.Background(), []string{partID, noCeiling.ID})
	if err != nil {
		t.Fatalf("Available: %v", err)
	}
	if len(got) != 1 || got[0].ID != fresh.ID {
		t.Fatalf("candidates: %+v", got)
	}

	// No kinds requested -> empty, not an error.
	got, err = svc.Available(context.Background(), nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("empty kind set: len=%d err=%v", len(got), err)
	}
}

func TestComponentHistory_NotFound(t *testing.T) {
	db := newJournalDB(t)
	svc := &ComponentService{DB: db}
	if _, err := svc.History(context.Background(), uuid.NewString()); !errors.Is(err, ErrComponentNotFound) {
		t.Fatalf("expected ErrComponentNotFound, got %v", err)
	}
}

func TestComponentHistory_JoinsRepairMetadata(t *testing.T) {
	db := newJournalDB(t)
	typeID, partID := seedRefData(t, db, 1000)
	dredgerID := seedDredger(t, db, typeID)
	outgoing := seedComponent(t, db, partID, 50, &dredgerID)
	incoming := seedComponent(t, db, partID, 0, nil)

	var inv string
	if d, err := repo.GetDredger(context.Background(), db, dredgerID); err == nil {
		inv = d.InvNumber
	}

	repSvc := &RepairService{DB: db}
	if _, err := repSvc.Create(context.Background(), CreateRepairInput{
		DredgerID: dredgerID,
		StartDate: day(2024, 8, 1),
		Items:     []RepairItemInput{{ComponentID: incoming.ID, Hours: 25}},
		Actor:     testActor,
	}); err != nil {
		t.Fatalf("seed repair: %v", err)
	}

	svc := &ComponentService{DB: db}
	rows, err := svc.History(context.Background(), outgoing.ID)
	if err != nil || len(rows) != 1 {
		t.Fatalf("History: err=%v len=%d", err, len(rows))
	}
	if rows[0].DredgerInvNumber != inv {
		t.Fatalf("dredger join: got %q want %q", rows[0].DredgerInvNumber, inv)
	}
	if rows[0].StartDate == nil || !rows[0].StartDate.Equal(day(2024, 8, 1)) {
		t.Fatalf("repair window join: %+v", rows[0])
	}
}

func TestComponentGetAndList(t *testing.T) {
	db := newJournalDB(t)
	_, partID := seedRefData(t, db, 1000)
	c1 := seedComponent(t, db, partID, 10, nil)
	seedComponent(t, db, partID, 90, nil)

	svc := &ComponentService{DB: db}

	got, err := svc.Get(context.Background(), c1.ID)
	if err != nil || got.ID != c1.ID {
		t.Fatalf("Get: %v %+v", err, got)
	}
	if got.SparePart.ID != partID {
		t.Fatalf("part not preloaded: %+v", got.SparePart)
	}
	if _, err := svc.Get(context.Background(), uuid.NewString()); !errors.Is(err, ErrComponentNotFound) {
		t.Fatalf("missing Get: %v", err)
	}

	all, err := svc.List(context.Background())
	if err != nil || len(all) != 2 {
		t.Fatalf("List: err=%v len=%d", err, len(all))
	}
	// Ordered by accumulated hours descending.
	if all[0].TotalHours < all[1].TotalHours {
		t.Fatalf("order: %d then %d", all[0].TotalHours, all[1].TotalHours)
	}
}
