package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestFleetCreate_Validation(t *testing.T) {
	db := newJournalDB(t)
	typeID, _ := seedRefData(t, db, 1000)
	svc := &FleetService{DB: db}
	ctx := context.Background()

	if _, err := svc.Create(ctx, "   ", typeID); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank inventory number: %v", err)
	}
	if _, err := svc.Create(ctx, "INV-1", uuid.NewString()); !errors.Is(err, ErrTypeNotFound) {
		t.Fatalf("unknown type: %v", err)
	}

	d, err := svc.Create(ctx, "  INV-1  ", typeID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.InvNumber != "INV-1" {
		t.Fatalf("trim: %q", d.InvNumber)
	}

	if _, err := svc.Create(ctx, "INV-1", typeID); !errors.Is(err, ErrDuplicateCode) {
		t.Fatalf("duplicate inventory number: %v", err)
	}
}

func TestFleetGetUpdateList(t *testing.T) {
	db := newJournalDB(t)
	typeID, _ := seedRefData(t, db, 1000)
	svc := &FleetService{DB: db}
	ctx := context.Background()

	d, err := svc.Create(ctx, "INV-1", typeID)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.Create(ctx, "INV-2", typeID); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := svc.Get(ctx, d.ID)
	if err != nil || got.InvNumber != "INV-1" {
		t.Fatalf("Get: %v %+v", err, got)
	}
	if got.DredgerType.ID != typeID {
		t.Fatalf("type not preloaded: %+v", got.DredgerType)
	}
	if _, err := svc.Get(ctx, uuid.NewString()); !errors.Is(err, ErrDredgerNotFound) {
		t.Fatalf("missing Get: %v", err)
	}

	if _, err := svc.Update(ctx, d.ID, "", typeID); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank update: %v", err)
	}
	if _, err := svc.Update(ctx, d.ID, "INV-2", typeID); !errors.Is(err, ErrDuplicateCode) {
		t.Fatalf("collision update: %v", err)
	}
	if _, err := svc.Update(ctx, uuid.NewString(), "INV-9", typeID); !errors.Is(err, ErrDredgerNotFound) {
		t.Fatalf("missing update: %v", err)
	}
	upd, err := svc.Update(ctx, d.ID, "INV-1A", typeID)
	if err != nil || upd.InvNumber != "INV-1A" {
		t.Fatalf("Update: %v %+v", err, upd)
	}

	all, err := svc.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("List: err=%v len=%d", err, len(all))
	}
	// Ordered by inventory number.
	if all[0].InvNumber > all[1].InvNumber {
		t.Fatalf("order: %q then %q", all[0].InvNumber, all[1].InvNumber)
	}
}

func TestFleetComponents_OnlyInstalledOnThatDredger(t *testing.T) {
	db := newJournalDB(t)
	typeID, partID := seedRefData(t, db, 1000)
	d1 := seedDredger(t, db, typeID)
	d2 := seedDredger(t, db, typeID)

	installed := seedComponent(t, db, partID, 10, &d1)
	seedComponent(t, db, partID, 20, &d2)
	seedComponent(t, db, partID, 30, nil)

	svc := &FleetService{DB: db}
	got, err := svc.Components(context.Background(), d1)
	if err != nil || len(got) != 1 || got[0].ID != installed.ID {
		t.Fatalf("Components: err=%v got=%+v", err, got)
	}
	if _, err := svc.Components(context.Background(), uuid.NewString()); !errors.Is(err, ErrDredgerNotFound) {
		t.Fatalf("missing dredger: %v", err)
	}
}

func TestFleetTemplate_SlotsFilledAndEmpty(t *testing.T) {
	db := newJournalDB(t)
	ctx := context.Background()

	catalog := &CatalogService{DB: db}
	dt, err := catalog.CreateType(ctx, "Suction 350", "ZS-350")
	if err != nil {
		t.Fatalf("seed type: %v", err)
	}
	pump, err := catalog.CreatePart(ctx, SparePartInput{Code: "PMP", Name: "Pump", Manufacturer: "HydroWorks", NormHours: 1200})
	if err != nil {
		t.Fatalf("seed part: %v", err)
	}
	bearing, err := catalog.CreatePart(ctx, SparePartInput{Code: "BRG", Name: "Bearing", NormHours: 600})
	if err != nil {
		t.Fatalf("seed part: %v", err)
	}
	if _, err := catalog.AddTypePart(ctx, dt.ID, pump.ID); err != nil {
		t.Fatalf("assoc: %v", err)
	}
	if _, err := catalog.AddTypePart(ctx, dt.ID, bearing.ID); err != nil {
		t.Fatalf("assoc: %v", err)
	}

	dredgerID := seedDredger(t, db, dt.ID)
	comp := seedComponent(t, db, pump.ID, 340, &dredgerID)

	svc := &FleetService{DB: db}
	slots, err := svc.Template(ctx, dredgerID)
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("slot count = %d", len(slots))
	}
	// Slots follow part-name order: Bearing first (empty), Pump second (filled).
	if slots[0].PartName != "Bearing" || slots[0].ComponentID != "" || slots[0].CurrentHours != 0 {
		t.Fatalf("empty slot: %+v", slots[0])
	}
	if slots[1].PartName != "Pump" || slots[1].ComponentID != comp.ID || slots[1].CurrentHours != 340 {
		t.Fatalf("filled slot: %+v", slots[1])
	}
	if slots[1].NormHours != 1200 || slots[1].Manufacturer != "HydroWorks" {
		t.Fatalf("slot part attrs: %+v", slots[1])
	}

	if _, err := svc.Template(ctx, uuid.NewString()); !errors.Is(err, ErrDredgerNotFound) {
		t.Fatalf("missing dredger: %v", err)
	}
}
