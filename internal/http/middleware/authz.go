// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements identity extraction and capability-based authorization.
// Identity is carried on the X-User-ID / X-User-Role headers (the journal sits
// behind a gateway that authenticates users and forwards these). Authorization
// is a static policy table mapping each role to the capabilities it holds;
// every mutating route group declares the capability it requires.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hydromech/dredger-journal/internal/domain"
)

// Request headers conveying the authenticated identity.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Context keys under which the identity is stashed for downstream middleware
// and handlers (logging, rate limiting, idempotency, audit stamping).
const (
	ctxKeyActorID   = "actorID"
	ctxKeyActorRole = "actorRole"
)

// Capability names one guarded class of operations.
type Capability string

const (
	// CapRefDataWrite covers catalog mutations: dredger types, spare part
	// definitions, and type-part requirement associations.
	CapRefDataWrite Capability = "refdata:write"
	// CapFleetWrite covers dredger registration and updates.
	CapFleetWrite Capability = "fleet:write"
	// CapComponentWrite covers component registration and manual hour
	// adjustments.
	CapComponentWrite Capability = "component:write"
	// CapRepairWrite covers repair submission, editing, and deletion.
	CapRepairWrite Capability = "repair:write"
	// CapDeviationWrite covers deviation logging.
	CapDeviationWrite Capability = "deviation:write"
)

// policy is the role → capability grant table. Reads are open to every
// authenticated role; only mutations are listed here. Operators log the
// day-to-day events (repairs, deviations), engineers additionally maintain
// the fleet and its components, administrators also own the reference data.
var policy = map[string]map[Capability]bool{
	domain.RoleOperator: {
		CapRepairWrite:    true,
		CapDeviationWrite: true,
	},
	domain.RoleEngineer: {
		CapRefDataWrite:   true,
		CapFleetWrite:     true,
		CapComponentWrite: true,
		CapRepairWrite:    true,
		CapDeviationWrite: true,
	},
	domain.RoleAdmin: {
		CapRefDataWrite:   true,
		CapFleetWrite:     true,
		CapComponentWrite: true,
		CapRepairWrite:    true,
		CapDeviationWrite: true,
	},
}

// Allowed reports whether the given role holds the capability.
func Allowed(role string, cap Capability) bool {
	return policy[role][cap]
}

// Identity extracts the forwarded identity headers and stashes them in the
// Gin context. The role header is normalized to lower case; an unknown role
// is stashed as-is and will simply hold no capabilities. Identity never
// rejects a request: read endpoints stay open and the capability check on
// mutating groups does the enforcement.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(HeaderUserID)); id != "" {
			c.Set(ctxKeyActorID, id)
		}
		if role := strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole))); role != "" {
			c.Set(ctxKeyActorRole, role)
		}
		c.Next()
	}
}

// RequireCapability rejects the request unless the stashed role holds the
// given capability. Requests without any role header get 401; requests whose
// role lacks the capability get 403.
func RequireCapability(cap Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(ctxKeyActorRole)
		role, _ := v.(string)
		if !ok || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "unauthorized",
				"message": "missing " + HeaderUserRole + " header",
			})
			return
		}
		if !Allowed(role, cap) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    "forbidden",
				"message": "role " + role + " may not perform this operation",
			})
			return
		}
		c.Next()
	}
}
