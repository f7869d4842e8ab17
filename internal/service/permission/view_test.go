package permission

import (
	"testing"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardView(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, ViewOwnerDashboard, r.DashboardView(user.RoleOwner))
	assert.Equal(t, ViewManagerDashboard, r.DashboardView(user.RoleManager))
	assert.Equal(t, ViewEmployeeDashboard, r.DashboardView(user.RoleEmployee))
	assert.Equal(t, ViewEmployeeDashboard, r.DashboardView(user.RoleAccountant))
}

func TestDashboardViewUnknownRoleNeverOwner(t *testing.T) {
	r := NewResolver()

	for _, role := range []user.Role{"", "superadmin", "OWNER", "root"} {
		assert.Equal(t, ViewEmployeeDashboard, r.DashboardView(role), "role %q", role)
	}
}

func TestTabsOrderAndContent(t *testing.T) {
	r := NewResolver()

	ownerTabs := r.Tabs(user.RoleOwner)
	routes := make([]string, 0, len(ownerTabs))
	for _, tab := range ownerTabs {
		routes = append(routes, tab.RouteID)
		assert.NotEmpty(t, tab.Label)
		assert.NotEmpty(t, tab.Icon)
	}
	assert.Equal(t, []string{"dashboard", "transactions", "reports", "team", "schedule"}, routes)

	employeeTabs := r.Tabs(user.RoleEmployee)
	routes = routes[:0]
	for _, tab := range employeeTabs {
		routes = append(routes, tab.RouteID)
	}
	assert.Equal(t, []string{"dashboard", "transactions", "schedule"}, routes)
}

func TestTabsAreSubsetOfAccessibleScreens(t *testing.T) {
	r := NewResolver()

	for _, role := range []user.Role{user.RoleOwner, user.RoleManager, user.RoleEmployee} {
		accessible := make(map[string]bool)
		for _, screen := range r.AccessibleScreens(role) {
			accessible[screen.RouteID] = true
		}
		for _, tab := range r.Tabs(role) {
			require.True(t, accessible[tab.RouteID], "role %q tab %q", role, tab.RouteID)
		}
	}
}

func TestTabsEmptyRole(t *testing.T) {
	r := NewResolver()
	assert.Empty(t, r.Tabs(""))
}
