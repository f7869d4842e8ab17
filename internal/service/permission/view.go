package permission

import "github.com/bizpulse/bizpulse-backend-go/internal/domain/user"

// Dashboard view identifiers the mobile client knows how to mount.
const (
	ViewOwnerDashboard    = "owner_dashboard"
	ViewManagerDashboard  = "manager_dashboard"
	ViewEmployeeDashboard = "employee_dashboard"
)

// tabRoutes is the ordered set of routes that appear in the bottom tab bar.
// The remaining screens (settings, profile) are reached from within tabs.
var tabRoutes = []string{"dashboard", "transactions", "reports", "team", "schedule"}

// DashboardView resolves which dashboard the client should mount for a role.
// Anything that is not owner or manager gets the employee view; an
// unrecognized role must never land on the owner dashboard.
func (r *Resolver) DashboardView(role user.Role) string {
	switch r.normalize(role) {
	case user.RoleOwner:
		return ViewOwnerDashboard
	case user.RoleManager:
		return ViewManagerDashboard
	default:
		return ViewEmployeeDashboard
	}
}

// Tabs returns the ordered tab set for a role, each tab backed by the screen
// descriptor the client needs for its label and icon. Only screens the role
// can access become tabs.
func (r *Resolver) Tabs(role user.Role) []user.ScreenDescriptor {
	accessible := r.AccessibleScreens(role)
	byRoute := make(map[string]user.ScreenDescriptor, len(accessible))
	for _, screen := range accessible {
		byRoute[screen.RouteID] = screen
	}

	tabs := make([]user.ScreenDescriptor, 0, len(tabRoutes))
	for _, route := range tabRoutes {
		if screen, ok := byRoute[route]; ok {
			tabs = append(tabs, screen)
		}
	}
	return tabs
}
