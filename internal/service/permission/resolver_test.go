package permission

import (
	"testing"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var financialRecord = map[string]any{
	"total_revenue":     int64(10000),
	"total_expenses":    int64(7000),
	"net_profit":        int64(3000),
	"transaction_count": int64(150),
}

func TestHasAnyHasAll(t *testing.T) {
	r := NewResolver()

	assert.True(t, r.HasAny(user.RoleEmployee, user.CapabilityFinanceRevenue, user.CapabilityTransactionCreate))
	assert.False(t, r.HasAny(user.RoleEmployee, user.CapabilityFinanceRevenue, user.CapabilityPayrollRun))

	assert.True(t, r.HasAll(user.RoleOwner, user.CapabilityFinanceRevenue, user.CapabilityPayrollRun))
	assert.False(t, r.HasAll(user.RoleManager, user.CapabilityActivityView, user.CapabilityFinanceRevenue))

	// Vacuous truth over an empty capability list.
	assert.True(t, r.HasAll(user.RoleEmployee))
	assert.False(t, r.HasAny(user.RoleOwner))
}

func TestAccessibleScreensMatchesCapabilityFilter(t *testing.T) {
	r := NewResolver()

	for _, role := range []user.Role{user.RoleOwner, user.RoleManager, user.RoleEmployee, user.RoleAccountant} {
		got := r.AccessibleScreens(role)

		// Recompute the expected subset straight from the registry: exactly
		// the screens whose required capabilities are all held, in order.
		var want []user.ScreenDescriptor
		for _, screen := range user.Screens {
			all := true
			for _, c := range screen.RequiredCapabilities {
				if !user.HasCapability(role.Normalize(), c) {
					all = false
					break
				}
			}
			if all {
				want = append(want, screen)
			}
		}

		assert.Equal(t, want, got, "role %q", role)
	}
}

func TestAccessibleScreensEmptyRole(t *testing.T) {
	r := NewResolver()
	assert.Empty(t, r.AccessibleScreens(""))
}

func TestCanAccessScreen(t *testing.T) {
	r := NewResolver()

	assert.True(t, r.CanAccessScreen(user.RoleOwner, "settings"))
	assert.False(t, r.CanAccessScreen(user.RoleManager, "settings"))
	assert.True(t, r.CanAccessScreen(user.RoleManager, "reports"))
	assert.False(t, r.CanAccessScreen(user.RoleEmployee, "reports"))
	assert.True(t, r.CanAccessScreen(user.RoleEmployee, "dashboard"))

	assert.False(t, r.CanAccessScreen(user.RoleOwner, "no-such-route"))
	assert.False(t, r.CanAccessScreen("", "dashboard"))
}

func TestFilterRecordOwnerSeesEverything(t *testing.T) {
	r := NewResolver()

	got := r.FilterRecord(user.RoleOwner, financialRecord)
	assert.Equal(t, financialRecord, got)
}

func TestFilterRecordManagerSeesActivityOnly(t *testing.T) {
	r := NewResolver()

	got := r.FilterRecord(user.RoleManager, financialRecord)
	assert.Equal(t, map[string]any{"transaction_count": int64(150)}, got)
}

func TestFilterRecordEmployeeSeesNothing(t *testing.T) {
	r := NewResolver()

	got := r.FilterRecord(user.RoleEmployee, financialRecord)
	assert.Equal(t, map[string]any{}, got)
}

func TestFilterRecordPassesNonRestrictedFields(t *testing.T) {
	r := NewResolver()

	record := map[string]any{
		"business_name": "Warung Kopi",
		"net_profit":    int64(3000),
		"currency":      "IDR",
	}

	got := r.FilterRecord(user.RoleEmployee, record)
	assert.Equal(t, map[string]any{
		"business_name": "Warung Kopi",
		"currency":      "IDR",
	}, got)
}

func TestFilterRecordRemovalIsPerField(t *testing.T) {
	r := NewResolver()

	// Manager holds activity.view but none of the finance capabilities, so
	// each restricted field is decided on its own.
	got := r.FilterRecord(user.RoleManager, map[string]any{
		"total_expenses":    int64(7000),
		"transaction_count": int64(150),
	})

	_, hasExpenses := got["total_expenses"]
	assert.False(t, hasExpenses)
	assert.Equal(t, int64(150), got["transaction_count"])
}

func TestFilterRecordDoesNotMutateInput(t *testing.T) {
	r := NewResolver()

	record := map[string]any{
		"total_revenue":     int64(10000),
		"transaction_count": int64(150),
		"business_name":     "Warung Kopi",
	}

	_ = r.FilterRecord(user.RoleEmployee, record)

	require.Len(t, record, 3)
	assert.Equal(t, int64(10000), record["total_revenue"])
	assert.Equal(t, int64(150), record["transaction_count"])
	assert.Equal(t, "Warung Kopi", record["business_name"])
}

func TestFilterRecordIdempotent(t *testing.T) {
	r := NewResolver()

	once := r.FilterRecord(user.RoleManager, financialRecord)
	twice := r.FilterRecord(user.RoleManager, once)
	assert.Equal(t, once, twice)
}

func TestFilterRecordEmptyRoleFailsClosed(t *testing.T) {
	r := NewResolver()

	got := r.FilterRecord("", financialRecord)
	assert.Equal(t, map[string]any{}, got)
}
