package middleware

import (
	"net/http"
	"strings"

	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
)

// The chat platform authenticates users and supplies their display name and
// role memberships with each dispatched command; this layer only decides
// whether those roles carry the capability an operation requires.

// Capability tiers gating privileged operations
type Capability string

const (
	// CapabilityUnit gates case management and statute administration
	CapabilityUnit Capability = "unit"
	// CapabilityAdmin gates destructive deletion
	CapabilityAdmin Capability = "admin"
)

const (
	// HeaderCallerName carries the invoking user's display name
	HeaderCallerName = "X-Caller-Name"
	// HeaderCallerRoles carries the invoking user's roles, comma separated
	HeaderCallerRoles = "X-Caller-Roles"
	// ContextKeyCaller is the context key for the resolved caller
	ContextKeyCaller = "caller"
)

// Caller is the invoking user as reported by the platform
type Caller struct {
	Name  string
	Roles []string
}

// Gate maps platform roles to capabilities
type Gate struct {
	unitRoles  []string
	adminRoles []string
}

// NewGate creates a gate from the configured role lists
func NewGate(unitRoles, adminRoles []string) *Gate {
	return &Gate{unitRoles: unitRoles, adminRoles: adminRoles}
}

// Authorize reports whether the caller holds the required capability.
// Pure predicate, no side effects; every mutating operation checks it
// before touching the store.
func (g *Gate) Authorize(caller Caller, required Capability) bool {
	var granting []string
	switch required {
	case CapabilityUnit:
		granting = g.unitRoles
	case CapabilityAdmin:
		granting = g.adminRoles
	default:
		return false
	}

	for _, role := range caller.Roles {
		for _, granted := range granting {
			if role == granted {
				return true
			}
		}
	}
	return false
}

// ResolveCaller is middleware that reads the caller identity supplied by
// the platform and stores it in the request context
func ResolveCaller() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := Caller{
				Name: strings.TrimSpace(c.Request().Header.Get(HeaderCallerName)),
			}
			if caller.Name == "" {
				caller.Name = "Unknown"
			}
			for _, role := range strings.Split(c.Request().Header.Get(HeaderCallerRoles), ",") {
				if role = strings.TrimSpace(role); role != "" {
					caller.Roles = append(caller.Roles, role)
				}
			}

			c.Set(ContextKeyCaller, caller)
			return next(c)
		}
	}
}

// RequireCapability is middleware that rejects callers lacking the given
// capability with the fixed denial response, before the operation runs
func RequireCapability(gate *Gate, required Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !gate.Authorize(GetCaller(c), required) {
				return c.JSON(http.StatusForbidden, services.Render{
					Title:   services.PrefixUnauthorized + " Unauthorized.",
					Private: true,
				})
			}
			return next(c)
		}
	}
}

// GetCaller retrieves the resolved caller from context
func GetCaller(c echo.Context) Caller {
	caller, ok := c.Get(ContextKeyCaller).(Caller)
	if !ok {
		return Caller{Name: "Unknown"}
	}
	return caller
}
