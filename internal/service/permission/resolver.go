package permission

import (
	"log/slog"
	"sync"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
)

// restrictedFields is the canonical list of aggregate fields stripped from
// records for roles that lack the matching capability. Redaction happens here
// and nowhere else; screens must not re-derive their own list.
var restrictedFields = map[string]user.Capability{
	"total_revenue":     user.CapabilityFinanceRevenue,
	"total_expenses":    user.CapabilityFinanceExpenses,
	"net_profit":        user.CapabilityFinanceNetProfit,
	"profit_margin":     user.CapabilityFinanceMargin,
	"transaction_count": user.CapabilityActivityView,
}

// Resolver answers capability, screen and record-redaction queries against the
// static RoleCapabilities table. All methods are pure and safe for concurrent
// use; construct one in main and pass it down explicitly.
type Resolver struct {
	warnOnce sync.Map // role string -> struct{}, unknown-role warnings logged once
}

func NewResolver() *Resolver {
	return &Resolver{}
}

// normalize collapses aliases and logs unknown role values once as a
// data-integrity warning. An empty role stays empty: it means "no membership"
// and holds nothing, while an unknown value degrades to employee.
func (r *Resolver) normalize(role user.Role) user.Role {
	if role == "" {
		return ""
	}
	if !role.IsKnown() {
		if _, seen := r.warnOnce.LoadOrStore(string(role), struct{}{}); !seen {
			slog.Warn("unknown role value, treating as employee", "role", string(role))
		}
	}
	return role.Normalize()
}

// HasCapability reports whether the role holds the capability. Empty and
// unknown roles fail closed.
func (r *Resolver) HasCapability(role user.Role, capability user.Capability) bool {
	return user.HasCapability(r.normalize(role), capability)
}

// HasAny reports whether the role holds at least one of the capabilities.
func (r *Resolver) HasAny(role user.Role, capabilities ...user.Capability) bool {
	for _, c := range capabilities {
		if r.HasCapability(role, c) {
			return true
		}
	}
	return false
}

// HasAll reports whether the role holds every capability.
func (r *Resolver) HasAll(role user.Role, capabilities ...user.Capability) bool {
	for _, c := range capabilities {
		if !r.HasCapability(role, c) {
			return false
		}
	}
	return true
}

// AccessibleScreens returns the screens whose required capabilities are all
// held by the role, preserving registry declaration order.
func (r *Resolver) AccessibleScreens(role user.Role) []user.ScreenDescriptor {
	screens := make([]user.ScreenDescriptor, 0, len(user.Screens))
	for _, screen := range user.Screens {
		if r.HasAll(role, screen.RequiredCapabilities...) {
			screens = append(screens, screen)
		}
	}
	return screens
}

// CanAccessScreen reports whether the role can reach the route.
func (r *Resolver) CanAccessScreen(role user.Role, routeID string) bool {
	for _, screen := range user.Screens {
		if screen.RouteID == routeID {
			return r.HasAll(role, screen.RequiredCapabilities...)
		}
	}
	return false
}

// FilterRecord returns a shallow copy of record with restricted aggregate
// fields removed unless the role holds the matching capability. Removal is
// independent per field; absent means "no access", not zero. The input map is
// never mutated.
func (r *Resolver) FilterRecord(role user.Role, record map[string]any) map[string]any {
	filtered := make(map[string]any, len(record))
	for key, value := range record {
		if required, restricted := restrictedFields[key]; restricted {
			if !r.HasCapability(role, required) {
				continue
			}
		}
		filtered[key] = value
	}
	return filtered
}

// IsHigherRole reports whether a outranks b. Advisory only: used for checks
// like "may this member change that member's role", never to grant
// capabilities.
func (r *Resolver) IsHigherRole(a, b user.Role) bool {
	return user.IsHigherRole(a, b)
}
