// Package domain – Actor identity.
//
// Authentication and role membership live outside this service; mutating
// operations receive the already-authenticated principal as an explicit
// Actor parameter instead of reading it from ambient request state. Audit
// columns (created_by/updated_by) are stamped from it.
package domain

// Role values recognized by the capability policy.
const (
	RoleOperator = "operator"
	RoleEngineer = "engineer"
	RoleAdmin    = "admin"
)

// Actor is the authenticated principal performing an operation.
type Actor struct {
	// ID identifies the user; written to created_by/updated_by columns.
	ID string
	// Role is the externally assigned role (operator/engineer/admin).
	Role string
}

// ValidRole reports whether r is one of the recognized role values.
func ValidRole(r string) bool {
	switch r {
	case RoleOperator, RoleEngineer, RoleAdmin:
		return true
	}
	return false
}
