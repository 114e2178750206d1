// Package domain defines the persistence models for the dredger maintenance
// journal: reference data (dredger types, spare parts), the fleet registry,
// physical component instances with hour accounting, repairs with their
// swap items, the append-only component history, and deviation records.
// These types are mapped with GORM and form the core data layer of the
// application.
package domain

import (
	"time"
)

// DredgerType is a reference-data entry describing a model of dredger.
// Concrete machines (Dredger) point at exactly one type; the set of spare
// parts a type requires is expressed via DredgerTypePart rows.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Name: human-readable type name, unique.
//   - Code: short unique type code used in listings and exports.
type DredgerType struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"       gorm:"type:varchar(100);not null;uniqueIndex"`
	Code      string    `json:"code"       gorm:"type:varchar(50);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for DredgerType.
func (DredgerType) TableName() string { return "dredger_types" }

// SparePart is an abstract kind of replaceable component (a part definition),
// not a physical item. NormHours is the rated operating-hour ceiling for
// components of this kind; 0 is a valid sentinel meaning "no ceiling" and is
// excluded from wear-percentage calculations.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - Code: unique part code.
//   - Name: human-readable part name.
//   - Manufacturer: optional manufacturer name.
//   - NormHours: allowed operating hours before replacement is due (0 = none).
//   - DrawingFile: optional stored path of an attached drawing/document.
type SparePart struct {
	ID           string    `json:"id"           gorm:"type:char(36);primaryKey"`
	Code         string    `json:"code"         gorm:"type:varchar(60);not null;uniqueIndex"`
	Name         string    `json:"name"         gorm:"type:varchar(120);not null"`
	Manufacturer string    `json:"manufacturer" gorm:"type:varchar(120)"`
	NormHours    uint      `json:"norm_hours"   gorm:"not null;default:0"`
	DrawingFile  string    `json:"drawing_file,omitempty" gorm:"type:varchar(255)"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for SparePart.
func (SparePart) TableName() string { return "spare_parts" }

// DredgerTypePart associates a DredgerType with a SparePart it requires.
// Unique per (type, part); used by the dredger "template" view to show
// which slots a machine should have filled.
type DredgerTypePart struct {
	ID            string    `json:"id"              gorm:"type:char(36);primaryKey"`
	DredgerTypeID string    `json:"dredger_type_id" gorm:"type:char(36);not null;uniqueIndex:ux_type_part,priority:1"`
	SparePartID   string    `json:"spare_part_id"   gorm:"type:char(36);not null;uniqueIndex:ux_type_part,priority:2"`
	CreatedAt     time.Time `json:"created_at"`

	DredgerType DredgerType `json:"-" gorm:"foreignKey:DredgerTypeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	SparePart   SparePart   `json:"-" gorm:"foreignKey:SparePartID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for DredgerTypePart.
func (DredgerTypePart) TableName() string { return "dredger_type_parts" }

// Dredger is a concrete machine in the fleet, identified by its inventory
// number and associated with one DredgerType.
type Dredger struct {
	ID            string    `json:"id"              gorm:"type:char(36);primaryKey"`
	InvNumber     string    `json:"inv_number"      gorm:"type:varchar(50);not null;uniqueIndex"`
	DredgerTypeID string    `json:"dredger_type_id" gorm:"type:char(36);not null;index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	DredgerType DredgerType `json:"-" gorm:"foreignKey:DredgerTypeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Dredger.
func (Dredger) TableName() string { return "dredgers" }

// Component is a physical, serially tracked instance of a SparePart.
//
// CurrentDredgerID is nil while the component sits in the warehouse (or has
// been removed). TotalHours is a monotonically non-decreasing usage counter;
// it may only change through the component ledger's hour-update operation,
// never by direct writes.
//
// The composite partial unique index on (current_dredger_id, spare_part_id)
// enforces at the storage level that a dredger carries at most one installed
// component per part kind; the repair engine relies on this inside its
// transaction to reject conflicting concurrent installs.
type Component struct {
	ID               string    `json:"id"            gorm:"type:char(36);primaryKey"`
	SparePartID      string    `json:"spare_part_id" gorm:"type:char(36);not null;index;uniqueIndex:ux_installed_part,priority:2,where:current_dredger_id IS NOT NULL"`
	SerialNumber     string    `json:"serial_number" gorm:"type:varchar(120)"`
	CurrentDredgerID *string   `json:"current_dredger_id" gorm:"type:char(36);index;uniqueIndex:ux_installed_part,priority:1,where:current_dredger_id IS NOT NULL"`
	TotalHours       uint      `json:"total_hours"   gorm:"not null;default:0"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	SparePart      SparePart `json:"part" gorm:"foreignKey:SparePartID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CurrentDredger *Dredger  `json:"-" gorm:"foreignKey:CurrentDredgerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName returns the database table name for Component.
func (Component) TableName() string { return "components" }

// Installed reports whether the component currently sits on a dredger.
func (c *Component) Installed() bool { return c.CurrentDredgerID != nil }

// ComponentHistoryEntry is an append-only record of one hour-accounting
// change on a Component. Entries are written by the repair engine (or a
// manual ledger adjustment) in the same transaction as the hour update and
// are never mutated or deleted afterwards.
//
// RepairID weakly references the repair that produced the entry; deleting a
// repair nulls the reference but keeps the entry for audit.
type ComponentHistoryEntry struct {
	ID          string    `json:"id"           gorm:"type:char(36);primaryKey"`
	ComponentID string    `json:"component_id" gorm:"type:char(36);not null;index:idx_component_history,priority:1"`
	RepairID    *string   `json:"repair_id"    gorm:"type:char(36);index"`
	HoursDelta  int64     `json:"hours_delta"  gorm:"not null"`
	TotalHours  uint      `json:"total_hours"  gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"   gorm:"index:idx_component_history,priority:2"`

	Component Component `json:"-" gorm:"foreignKey:ComponentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Repair    *Repair   `json:"-" gorm:"foreignKey:RepairID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName returns the database table name for ComponentHistoryEntry.
func (ComponentHistoryEntry) TableName() string { return "component_history" }

// Repair is a bounded maintenance event on one dredger: a date window, free
// notes, and one or more component swaps (Items). Items are fixed at
// creation time; only the scalar fields may be edited afterwards.
//
// EndDate may be nil while the repair is still open; when set it must not
// precede StartDate.
type Repair struct {
	ID        string     `json:"id"         gorm:"type:char(36);primaryKey"`
	DredgerID string     `json:"dredger_id" gorm:"type:char(36);not null;index"`
	StartDate time.Time  `json:"start_date" gorm:"not null;index"`
	EndDate   *time.Time `json:"end_date"`
	Notes     string     `json:"notes"      gorm:"type:text"`
	CreatedBy string     `json:"created_by" gorm:"type:varchar(64);not null"`
	UpdatedBy string     `json:"updated_by" gorm:"type:varchar(64);not null"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Dredger Dredger      `json:"-" gorm:"foreignKey:DredgerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Items   []RepairItem `json:"items,omitempty" gorm:"foreignKey:RepairID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Repair.
func (Repair) TableName() string { return "repairs" }

// RepairItem records one component swap within a Repair: the incoming
// component that was installed, and Hours — the operating-hour reading
// reported for the component that was removed (used to credit the outgoing
// component's ledger, not the hours of the incoming one).
//
// Position preserves submission order, which matters when the same part kind
// appears twice in one repair.
type RepairItem struct {
	ID          string    `json:"id"           gorm:"type:char(36);primaryKey"`
	RepairID    string    `json:"repair_id"    gorm:"type:char(36);not null;index:idx_repair_items,priority:1"`
	Position    int       `json:"position"     gorm:"not null;index:idx_repair_items,priority:2"`
	ComponentID string    `json:"component_id" gorm:"type:char(36);not null;index"`
	Hours       uint      `json:"hours"        gorm:"not null"`
	Note        string    `json:"note"         gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"created_at"`

	Component Component `json:"component" gorm:"foreignKey:ComponentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for RepairItem.
func (RepairItem) TableName() string { return "repair_items" }
