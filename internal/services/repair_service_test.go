package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hydromech/dredger-journal/internal/domain"
	"github.com/hydromech/dredger-journal/internal/repo"
)

// ----- shared test fixtures -----

// newJournalDB opens a unique in-memory SQLite database with the full journal
// schema migrated. Shared by every service test in this package.
func newJournalDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:services_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// seedRefData creates one dredger type and one spare part with the given norm.
func seedRefData(t *testing.T, db *gorm.DB, normHours uint) (typeID, partID string) {
	t.Helper()
	ctx := context.Background()

	dt, err := repo.CreateDredgerType(ctx, db, "Suction "+uuid.NewString()[:8], "ST-"+uuid.NewString()[:8])
	if err != nil {
		t.Fatalf("seed type: %v", err)
	}
	p, err := repo.CreateSparePart(ctx, db, "P-"+uuid.NewString()[:8], "Impeller "+uuid.NewString()[:8], "HydroWorks", normHours, "")
	if err != nil {
		t.Fatalf("seed part: %v", err)
	}
	return dt.ID, p.ID
}

// seedDredger registers a dredger of the given type.
func seedDredger(t *testing.T, db *gorm.DB, typeID string) string {
	t.Helper()
	d, err := repo.CreateDredger(context.Background(), db, "INV-"+uuid.NewString()[:8], typeID)
	if err != nil {
		t.Fatalf("seed dredger: %v", err)
	}
	return d.ID
}

// seedComponent creates a component of the given part kind, optionally
// pre-installed and with a starting hour total.
func seedComponent(t *testing.T, db *gorm.DB, partID string, hours uint, dredgerID *string) *domain.Component {
	t.Helper()
	ctx := context.Background()
	c, err := repo.CreateComponent(ctx, db, partID, "SN-"+uuid.NewString()[:8])
	if err != nil {
		t.Fatalf("seed component: %v", err)
	}
	if hours > 0 {
		if err := repo.SetTotalHours(ctx, db, c.ID, hours); err != nil {
			t.Fatalf("seed hours: %v", err)
		}
		c.TotalHours = hours
	}
	if dredgerID != nil {
		if err := repo.SetInstallation(ctx, db, c.ID, dredgerID); err != nil {
			t.Fatalf("seed install: %v", err)
		}
		c.CurrentDredgerID = dredgerID
	}
	return c
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var testActor = domain.Actor{ID: "mech-7", Role: domain.RoleEngineer}

// ----- Create -----

func TestRepairCreate_SwapDetachesCreditsAndInstalls(t *testing.T) {
	db := newJournalDB(t)
	typeID, partID := seedRefData(t, db, 1000)
	dredgerID := seedDredger(t, db, typeID)
	outgoing := seedComponent(t, db, partID, 100, &dredgerID)
	incoming := seedComponent(t, db, partID, 0, nil)

	svc := &RepairService{DB: db}
	rep, err := svc.Create(context.Background(), CreateRepairInput{
		DredgerID: dredgerID,
		StartDate: day(2024, 8, 1),
		Notes:     "scheduled impeller swap",
		Items:     []RepairItemInput{{ComponentID: incoming.ID, Hours: 40, Note: "vanes worn"}},
		Actor:     testActor,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rep.CreatedBy != "mech-7" || rep.UpdatedBy != "mech-7" {
		t.Fatalf("audit stamps: %+v", rep)
	}
	if len(rep.Items) != 1 || rep.Items[0].Position != 0 || rep.Items[0].ComponentID != incoming.ID {
		t.Fatalf("unexpected items: %+v", rep.Items)
	}

	// Outgoing: detached and credited 100+40.
	out, err := repo.GetComponent(context.Background(), db, outgoing.ID)
	if err != nil {
		t.Fatalf("reload outgoing: %v", err)
	}
	if out.Installed() || out.TotalHours != 140 {
		t.Fatalf("outgoing state: installed=%v hours=%d", out.Installed(), out.TotalHours)
	}

	// Incoming: installed, hours untouched.
	in, err := repo.GetComponent(context.Background(), db, incoming.ID)
	if err != nil {
		t.Fatalf("reload incoming: %v", err)
	}
	if !in.Installed() || *in.CurrentDredgerID != dredgerID || in.TotalHours != 0 {
		t.Fatalf("incoming state: %+v", in)
	}

	// Exactly one history entry, on the outgoing component, referencing the repair.
	rows, err := repo.ListComponentHistory(context.Background(), db, outgoing.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(rows) != 1 || rows[0].HoursDelta != 40 || rows[0].TotalHours != 140 {
		t.Fatalf("outgoing history: %+v", rows)
	}
	if rows[0].RepairID == nil || *rows[0].RepairID != rep.ID {
		t.Fatalf("history repair ref: %+v", rows[0])
	}
	if n, _ := repo.CountComponentHistory(context.Background(), db, incoming.ID); n != 0 {
		t.Fatalf("incoming should have no history, got %d entries", n)
	}
}

func TestRepairCreate_EmptySlot_JustInstalls(t *testing.T) {
	db := newJournalDB(t)
	typeID, partID := seedRefData(t, db, 1000)
	dredgerID := seedDredger(t, db, typeID)
	incoming := seedComponent(t, db, partID, 0, nil)

	svc := &RepairService{DB: db}
	_, err := svc.Create(context.Background(), CreateRepairInput{
		DredgerID: dredgerID,
		StartDate: day(2024, 8, 1),
		Items:     []RepairItemInput{{ComponentID: incoming.ID, Hours: 0}},
		Actor:     testActor,
	})
	if err != nil {
		t.Fatalf("Create into empty slot: %v", err)
	}
	in, _ := repo.GetComponent(context.Background(), db, incoming.ID)
	if !in.Installed() {
		t.Fatalf("incoming not installed")
	}
	// No outgoing, so no history anywhere.
	if n, _ := repo.CountComponentHistory(context.Background(), db, incoming.ID); n != 0 {
		t.Fatalf("unexpected history entries: %d", n)
	}
}

func TestRepairCreate_MultipleItemsAllApplied(t *testing.T) {
	db := newJournalDB(t)
	typeID, partA := seedRefData(t, db, 1000)
	pB, err := repo.CreateSparePart(context.Background(), db, "P-B", "Bearing", "", 500, "")
	if err != nil {
		t.Fatalf("seed part B: %v", err)
	}
	dredgerID := seedDredger(t, db, typeID)
	oldA := seedComponent(t, db, partA, 200, &dredgerID)
	oldB := seedComponent(t, db, pB.ID, 300, &dredgerID)
	newA := seedComponent(t, db, partA, 0, nil)
	newB := seedComponent(t, db, pB.ID, 0, nil)

	svc := &RepairService{DB: db}
	rep, err := svc.Create(context.Background(), CreateRepairInput{
		DredgerID: dredgerID,
		StartDate: day(2024, 8, 1),
		Items: []RepairItemInput{
			{ComponentID: newA.ID, Hours: 10},
			{ComponentID: newB.ID, Hours: 20},
		},
		Actor: testActor,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(rep.Items) != 2 || rep.Items[0].Position != 0 || rep.Items[1].Position != 1 {
		t.Fatalf("item order: %+v", rep.Items)
	}
	a, _ := repo.GetComponent(context.Background(), db, oldA.ID)
	b, _ := repo.GetComponent(context.Background(), db, oldB.ID)
	if a.TotalHours != 210 || b.TotalHours != 320 {
		t.Fatalf("credits: a=%d b=%d", a.TotalHours, b.TotalHours)
	}
	// One history entry per removed component.
	if n, _ := repo.CountComponentHistory(context.Background(), db, oldA.ID); n != 1 {
		t.Fatalf("oldA history = %d", n)
	}
	if n, _ := repo.CountComponentHistory(context.Background(), db, oldB.ID); n != 1 {
		t.Fatalf("oldB history = %d", n)
	}
}

func TestRepairCreate_SamePartTwice_ReservicesSlot(t *testing.T) {
	db := newJournalDB(t)
	typeID, partID := seedRefData(t, db, 1000)
	dredgerID := seedDredger(t, db, typeID)
	first := seedComponent(t, db, partID, 0, nil)
	second := seedComponent(t, db, partID, 0, nil)

	svc := &RepairService{DB: db}
	_, err := svc.Create(context.Background(), CreateRepairInput{
		DredgerID: dredgerID,
		StartDate: day(2024, 8, 1),
		Items: []RepairItemInput{
			{ComponentID: first.ID, Hours: 0},
			{ComponentID: second.ID, Hours: 5},
		},
		Actor: testActor,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// The second item swaps out what the first installed.
	f, _ := repo.GetComponent(context.Background(), db, first.ID)
	s, _ := repo.GetComponent(context.Background(), db, second.ID)
	if f.Installed() || f.TotalHours != 5 {
		t.Fatalf("first should be detached with 5h credit: %+v", f)
	}
	if !s.Installed() || *s.CurrentDredgerID != dredgerID {
		t.Fatalf("second should occupy the slot: %+v", s)
	}
}

func TestRepairCreate_Validation(t *testing.T) {
	db := newJournalDB(t)
	typeID, partID := seedRefData(t, db, 1000)
	dredgerID := seedDredger(t, db, typeID)
	comp := seedComponent(t, db, partID, 0, nil)
	svc := &RepairService{DB: db}

	// No items.
	_, err := svc.Create(context.Background(), CreateRepairInput{
		DredgerID: dredgerID, StartDate: day(2024, 8, 1), Actor: testActor,
	})
	if !errors.Is(err, ErrEmptyRepairItems) {
		t.Fatalf("empty items: %v", err)
	}

	// End before start.
	end := day(2024, 7, 1)
	_, err = svc.Create(context.Background(), CreateRepairInput{
		DredgerID: dredgerID,
		StartDate: day(2024, 8, 1),
		EndDate:   &end,
		Items:     []RepairItemInput{{ComponentID: comp.ID}},
		Actor:     testActor,
	})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("inverted range: %v", err)
	}

	// Unknown dredger.
	_, err = svc.Create(context.Background(), CreateRepairInput{
		DredgerID: uuid.NewString(),
		StartDate: day(2024, 8, 1),
		Items:     []RepairItemInput{{ComponentID: comp.ID}},
		Actor:     testActor,
	})
	if !errors.Is(err, ErrDredgerNotFound) {
		t.Fatalf("unknown dredger: %v", err)
	}

	// Nothing persisted by any rejected submission.
	var repairs int64
	db.Model(&domain.Repair{}).Count(&repairs)
	if repairs != 0 {
		t.Fatalf("rejected submissions left %d repair rows", repairs)
	}
}

func TestRepairCreate_UnknownComponent_RollsBackWholeSubmission(t *testing.T) {
	db := newJournalDB(t)
	typeID, partID := seedRefData(t, db, 1000)
	dredgerID := seedDredger(t, db, typeID)
	outgoing := seedComponent(t, db, partID, 100, &dredgerID)
	incoming := seedComponent(t, db, partID, 0, nil)

	svc := &RepairService{DB: db}
	_, err := svc.Create(context.Background(), CreateRepairInput{
		DredgerID: dredgerID,
		StartDate: day(2024, 8, 1),
		Items: []RepairItemInput{
			{ComponentID: incoming.ID, Hours: 40}, // valid, applied first
			{ComponentID: uuid.NewString()},       // unknown, aborts
		},
		Actor: testActor,
	})
	if !errors.Is(err, ErrComponentNotFound) {
		t.Fatalf("expected ErrComponentNotFound, got %v", err)
	}

	// The first item's effects must have been rolled back too.
	out, _ := repo.GetComponent(context.Background(), db, outgoing.ID)
	if !out.Installed() || out.TotalHours != 100 {
		t.Fatalf("outgoing mutated despite rollback: %+v", out)
	}
	in, _ := repo.GetComponent(context.Background(), db, incoming.ID)
	if in.Installed() {
		t.Fatalf("incoming installed despite rollback")
	}
	var repairs, items, hist int64
	db.Model(&domain.Repair{}).Count(&repairs)
	db.Model(&domain.RepairItem{}).Count(&items)
	db.Model(&domain.ComponentHistoryEntry{}).Count(&hist)
	if repairs != 0 || items != 0 || hist != 0 {
		t.Fatalf("rollback left rows: repairs=%d items=%d history=%d", repairs, items, hist)
	}
}

// ----- Get / ListPage -----

func TestRepairGet_NotFound(t *testing.T) {
	db := newJournalDB(t)
	svc := &RepairService{DB: db}
	if _, err := svc.Get(context.Background(), uuid.NewString()); !errors.Is(err, ErrRepairNotFound) {
		t.Fatalf("expected ErrRepairNotFound, got %v", err)
	}
}

func TestRepairListPage_FilterAndStatus(t *testing.T) {
	db := newJournalDB(t)
	typeID, _ := seedRefData(t, db, 1000)
	d1 := seedDredger(t, db, typeID)
	d2 := seedDredger(t, db, typeID)
	ctx := context.Background()

	today := day(2024, 8, 15)
	past := day(2024, 8, 1)
	pastEnd := day(2024, 8, 3)
	future := day(2024, 9, 1)

	// d1: one completed, one planned. d2: one in progress (open-ended).
	if _, err := repo.CreateRepair(ctx, db, d1, past, &pastEnd, "done", "u"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := repo.CreateRepair(ctx, db, d1, future, nil, "planned", "u"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := repo.CreateRepair(ctx, db, d2, past, nil, "open", "u"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := &RepairService{DB: db}

	rows, total, err := svc.ListPage(ctx, repo.RepairListFilter{DredgerID: d1, Today: today}, 0, 20)
	if err != nil || total != 2 || len(rows) != 2 {
		t.Fatalf("dredger filter: total=%d len=%d err=%v", total, len(rows), err)
	}
	// Newest start date first.
	if !rows[0].StartDate.After(rows[1].StartDate) {
		t.Fatalf("order: %v then %v", rows[0].StartDate, rows[1].StartDate)
	}

	_, total, err = svc.ListPage(ctx, repo.RepairListFilter{Status: repo.RepairStatusCompleted, Today: today}, 0, 20)
	if err != nil || total != 1 {
		t.Fatalf("completed: total=%d err=%v", total, err)
	}
	_, total, err = svc.ListPage(ctx, repo.RepairListFilter{Status: repo.RepairStatusPlanned, Today: today}, 0, 20)
	if err != nil || total != 1 {
		t.Fatalf("planned: total=%d err=%v", total, err)
	}
	_, total, err = svc.ListPage(ctx, repo.RepairListFilter{Status: repo.RepairStatusInProgress, Today: today}, 0, 20)
	if err != nil || total != 1 {
		t.Fatalf("in_progress: total=%d err=%v", total, err)
	}
}

// ----- Update -----

func TestRepairUpdate_ScalarOnly(t *testing.T) {
	db := newJournalDB(t)
	typeID, partID := seedRefData(t, db, 1000)
	dredgerID := seedDredger(t, db, typeID)
	comp := seedComponent(t, db, partID, 0, nil)

	svc := &RepairService{DB: db}
	rep, err := svc.Create(context.Background(), CreateRepairInput{
		DredgerID: dredgerID,
		StartDate: day(2024, 8, 1),
		Items:     []RepairItemInput{{ComponentID: comp.ID}},
		Actor:     testActor,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Items in an update are rejected before anything is written.
	_, err = svc.Update(context.Background(), rep.ID, UpdateRepairInput{
		StartDate: day(2024, 8, 2),
		Items:     []RepairItemInput{{ComponentID: comp.ID}},
		Actor:     testActor,
	})
	if !errors.Is(err, ErrImmutableRepairItems) {
		t.Fatalf("items in update: %v", err)
	}

	// Inverted range rejected.
	end := day(2024, 7, 1)
	_, err = svc.Update(context.Background(), rep.ID, UpdateRepairInput{
		StartDate: day(2024, 8, 2), EndDate: &end, Actor: testActor,
	})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("inverted range on update: %v", err)
	}

	// Scalar update succeeds and stamps updated_by.
	end = day(2024, 8, 5)
	got, err := svc.Update(context.Background(), rep.ID, UpdateRepairInput{
		StartDate: day(2024, 8, 2),
		EndDate:   &end,
		Notes:     "closed out",
		Actor:     domain.Actor{ID: "eng-2"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Notes != "closed out" || got.UpdatedBy != "eng-2" || got.CreatedBy != "mech-7" {
		t.Fatalf("updated repair: %+v", got)
	}
	if got.EndDate == nil || !got.EndDate.Equal(end) {
		t.Fatalf("end date: %v", got.EndDate)
	}
	if len(got.Items) != 1 {
		t.Fatalf("items must survive scalar update, got %d", len(got.Items))
	}

	// Unknown ID.
	if _, err := svc.Update(context.Background(), uuid.NewString(), UpdateRepairInput{
		StartDate: day(2024, 8, 2), Actor: testActor,
	}); !errors.Is(err, ErrRepairNotFound) {
		t.Fatalf("unknown repair: %v", err)
	}
}

// ----- Delete -----

func TestRepairDelete_HistorySurvivesWithClearedReference(t *testing.T) {
	db := newJournalDB(t)
	typeID, partID := seedRefData(t, db, 1000)
	dredgerID := seedDredger(t, db, typeID)
	outgoing := seedComponent(t, db, partID, 100, &dredgerID)
	incoming := seedComponent(t, db, partID, 0, nil)

	svc := &RepairService{DB: db}
	rep, err := svc.Create(context.Background(), CreateRepairInput{
		DredgerID: dredgerID,
		StartDate: day(2024, 8, 1),
		Items:     []RepairItemInput{{ComponentID: incoming.ID, Hours: 40}},
		Actor:     testActor,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), rep.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), rep.ID); !errors.Is(err, ErrRepairNotFound) {
		t.Fatalf("repair still readable: %v", err)
	}
	var items int64
	db.Model(&domain.RepairItem{}).Where("repair_id = ?", rep.ID).Count(&items)
	if items != 0 {
		t.Fatalf("items not cascaded: %d", items)
	}

	// The outgoing component keeps its credit and its audit row, unlinked.
	rows, err := repo.ListComponentHistory(context.Background(), db, outgoing.ID)
	if err != nil || len(rows) != 1 {
		t.Fatalf("history after delete: %v rows=%d", err, len(rows))
	}
	if rows[0].RepairID != nil {
		t.Fatalf("history still references deleted repair: %+v", rows[0])
	}
	out, _ := repo.GetComponent(context.Background(), db, outgoing.ID)
	if out.TotalHours != 140 {
		t.Fatalf("credit lost on delete: %d", out.TotalHours)
	}

	// Second delete reports not found.
	if err := svc.Delete(context.Background(), rep.ID); !errors.Is(err, ErrRepairNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}

// ----- helpers -----

func TestNormalizeDay(t *testing.T) {
	in := time.Date(2024, 8, 15, 23, 45, 12, 999, time.FixedZone("X", 3*3600))
	got := normalizeDay(in)
	want := day(2024, 8, 15)
	if !got.Equal(want) {
		t.Fatalf("normalizeDay = %v; want %v", got, want)
	}
}

func TestMapConflict(t *testing.T) {
	if mapConflict(nil) != nil {
		t.Fatalf("nil should stay nil")
	}
	if got := mapConflict(errors.New("UNIQUE constraint failed: components.current_dredger_id")); !errors.Is(got, ErrInstallConflict) {
		t.Fatalf("unique violation: %v", got)
	}
	if got := mapConflict(errors.New("database is locked (SQLITE_BUSY)")); !errors.Is(got, ErrInstallConflict) {
		t.Fatalf("lock contention: %v", got)
	}
	other := errors.New("disk I/O error")
	if got := mapConflict(other); !errors.Is(got, other) {
		t.Fatalf("unrelated error rewritten: %v", got)
	}
}
