// Package domain – Deviation model.
//
// A deviation is an unplanned downtime/incident record on a dredger. It is
// outside the repair engine itself but feeds the reporting layer (downtime
// counts by type over a date range).
package domain

import "time"

// Deviation type values.
const (
	DeviationMechanical    = "mechanical"
	DeviationElectrical    = "electrical"
	DeviationTechnological = "technological"
)

// Deviation location values (site sections).
const (
	LocationPNS = "PNS"
	LocationTVS = "TVS"
	LocationSHX = "SHX"
)

// DeviationTypes lists the allowed deviation type values in report order.
var DeviationTypes = []string{
	DeviationMechanical,
	DeviationElectrical,
	DeviationTechnological,
}

// Deviation records a single unplanned downtime event: when and where it
// happened, what kind it was, the machine's hour reading at the time, and
// the personnel on shift.
type Deviation struct {
	ID               string    `json:"id"                 gorm:"type:char(36);primaryKey"`
	DredgerID        string    `json:"dredger_id"         gorm:"type:char(36);not null;index"`
	Date             time.Time `json:"date"               gorm:"not null;index"`
	Type             string    `json:"type"               gorm:"type:varchar(20);not null;check:type IN ('mechanical','electrical','technological')"`
	Location         string    `json:"location"           gorm:"type:varchar(10);not null;check:location IN ('PNS','TVS','SHX')"`
	LastPPRDate      time.Time `json:"last_ppr_date"      gorm:"not null"`
	HoursAtDeviation uint      `json:"hours_at_deviation" gorm:"not null"`
	Description      string    `json:"description"        gorm:"type:text;not null"`
	ShiftLeader      string    `json:"shift_leader"       gorm:"type:varchar(120);not null"`
	Mechanic         string    `json:"mechanic"           gorm:"type:varchar(120);not null"`
	Electrician      string    `json:"electrician"        gorm:"type:varchar(120);not null"`
	CreatedBy        string    `json:"created_by"         gorm:"type:varchar(64);not null"`
	UpdatedBy        string    `json:"updated_by"         gorm:"type:varchar(64);not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Dredger Dredger `json:"-" gorm:"foreignKey:DredgerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Deviation.
func (Deviation) TableName() string { return "deviations" }

// ValidDeviationType reports whether t is one of the allowed type values.
func ValidDeviationType(t string) bool {
	switch t {
	case DeviationMechanical, DeviationElectrical, DeviationTechnological:
		return true
	}
	return false
}

// ValidDeviationLocation reports whether loc is one of the allowed locations.
func ValidDeviationLocation(loc string) bool {
	switch loc {
	case LocationPNS, LocationTVS, LocationSHX:
		return true
	}
	return false
}
