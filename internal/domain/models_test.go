package domain

import (
	"testing"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:domain_models?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Enforce FKs so cascades actually execute.
	db.Exec("PRAGMA foreign_keys=ON;")
	return db
}

func TestTableNames(t *testing.T) {
	cases := map[string]string{
		DredgerType{}.TableName():           "dredger_types",
		SparePart{}.TableName():             "spare_parts",
		DredgerTypePart{}.TableName():       "dredger_type_parts",
		Dredger{}.TableName():               "dredgers",
		Component{}.TableName():             "components",
		ComponentHistoryEntry{}.TableName(): "component_history",
		Repair{}.TableName():                "repairs",
		RepairItem{}.TableName():            "repair_items",
		Deviation{}.TableName():             "deviations",
		Idempotency{}.TableName():           "idempotency",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("TableName() = %q; want %q", got, want)
		}
	}
}

func TestComponentInstalled(t *testing.T) {
	c := &Component{}
	if c.Installed() {
		t.Fatalf("fresh component reports installed")
	}
	d := "d1"
	c.CurrentDredgerID = &d
	if !c.Installed() {
		t.Fatalf("installed component reports free")
	}
}

func TestMigrations_Indexes(t *testing.T) {
	db := newDomainDB(t)

	all := []any{
		&DredgerType{}, &SparePart{}, &DredgerTypePart{},
		&Dredger{}, &Component{}, &ComponentHistoryEntry{},
		&Repair{}, &RepairItem{}, &Deviation{}, &Idempotency{},
	}
	if err := db.AutoMigrate(all...); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	m := db.Migrator()

	for _, tbl := range all {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}

	// Uniqueness and composite indexes declared via tags.
	if !m.HasIndex(&DredgerTypePart{}, "ux_type_part") {
		t.Fatalf("expected index ux_type_part on dredger_type_parts")
	}
	if !m.HasIndex(&Component{}, "ux_installed_part") {
		t.Fatalf("expected index ux_installed_part on components")
	}
	if !m.HasIndex(&ComponentHistoryEntry{}, "idx_component_history") {
		t.Fatalf("expected index idx_component_history on component_history")
	}
	if !m.HasIndex(&RepairItem{}, "idx_repair_items") {
		t.Fatalf("expected index idx_repair_items on repair_items")
	}
	if !m.HasIndex(&Idempotency{}, "ux_actor_dredger_key") {
		t.Fatalf("expected index ux_actor_dredger_key on idempotency")
	}
}
