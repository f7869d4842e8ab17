package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func capabilitySet(role Role) map[Capability]bool {
	set := make(map[Capability]bool)
	for _, c := range RoleCapabilities[role] {
		set[c] = true
	}
	return set
}

// The capability table must form a strict chain: everything a manager can do,
// an owner can do; everything an employee can do, a manager can do. The table
// is maintained by hand, so this test is the actual enforcement.
func TestRoleCapabilitiesSupersetInvariant(t *testing.T) {
	ownerSet := capabilitySet(RoleOwner)
	managerSet := capabilitySet(RoleManager)
	employeeSet := capabilitySet(RoleEmployee)

	for _, c := range AllCapabilities {
		if managerSet[c] {
			assert.True(t, ownerSet[c], "manager capability %q missing from owner", c)
		}
		if employeeSet[c] {
			assert.True(t, managerSet[c], "employee capability %q missing from manager", c)
		}
	}
}

func TestAllCapabilitiesCoversTable(t *testing.T) {
	known := make(map[Capability]bool)
	for _, c := range AllCapabilities {
		known[c] = true
	}

	for role, caps := range RoleCapabilities {
		for _, c := range caps {
			assert.True(t, known[c], "role %q grants %q which is not in AllCapabilities", role, c)
		}
	}
}

func TestHasCapabilityFailsClosed(t *testing.T) {
	for _, c := range AllCapabilities {
		assert.False(t, HasCapability("", c), "empty role must hold nothing, got %q", c)
	}
}

func TestHasCapabilityUnknownRoleIsLeastPrivilege(t *testing.T) {
	// Unknown but non-empty role values degrade to the employee set.
	assert.True(t, HasCapability("intern", CapabilityTransactionCreate))
	assert.False(t, HasCapability("intern", CapabilityFinanceNetProfit))
	assert.False(t, HasCapability("intern", CapabilityBusinessManage))
}

func TestAccountantAliasesEmployee(t *testing.T) {
	assert.Equal(t, RoleEmployee, RoleAccountant.Normalize())
	for _, c := range AllCapabilities {
		assert.Equal(t, HasCapability(RoleEmployee, c), HasCapability(RoleAccountant, c), string(c))
	}
}

func TestIsHigherRole(t *testing.T) {
	assert.True(t, IsHigherRole(RoleOwner, RoleManager))
	assert.True(t, IsHigherRole(RoleManager, RoleEmployee))
	assert.True(t, IsHigherRole(RoleOwner, RoleEmployee))

	assert.False(t, IsHigherRole(RoleEmployee, RoleOwner))
	assert.False(t, IsHigherRole(RoleManager, RoleOwner))
	assert.False(t, IsHigherRole(RoleOwner, RoleOwner))
	assert.False(t, IsHigherRole(RoleAccountant, RoleEmployee))
}

func TestManagerDeniedFinancialTotals(t *testing.T) {
	assert.False(t, HasCapability(RoleManager, CapabilityFinanceRevenue))
	assert.False(t, HasCapability(RoleManager, CapabilityFinanceExpenses))
	assert.False(t, HasCapability(RoleManager, CapabilityFinanceNetProfit))
	assert.False(t, HasCapability(RoleManager, CapabilityFinanceMargin))
	assert.True(t, HasCapability(RoleManager, CapabilityActivityView))
}
