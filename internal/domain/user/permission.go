package user

type Capability string

const (
	// Self Management
	CapabilityProfileViewOwn Capability = "profile.view_own"
	CapabilityProfileEditOwn Capability = "profile.edit_own"

	// Dashboard & Analytics
	CapabilityDashboardView    Capability = "dashboard.view"
	CapabilityActivityView     Capability = "activity.view"
	CapabilityReportsView      Capability = "reports.view"
	CapabilityFinanceRevenue   Capability = "finance.view_revenue"
	CapabilityFinanceExpenses  Capability = "finance.view_expenses"
	CapabilityFinanceNetProfit Capability = "finance.view_net_profit"
	CapabilityFinanceMargin    Capability = "finance.view_margin"

	// Transaction Management
	CapabilityTransactionCreate Capability = "transaction.create"
	CapabilityTransactionEdit   Capability = "transaction.edit"
	CapabilityTransactionDelete Capability = "transaction.delete"

	// Team Management
	CapabilityTeamView   Capability = "team.view"
	CapabilityTeamInvite Capability = "team.invite"
	CapabilityTeamManage Capability = "team.manage"

	// HR Scheduling
	CapabilityScheduleView   Capability = "schedule.view"
	CapabilityScheduleManage Capability = "schedule.manage"
	CapabilityTimeOffRequest Capability = "timeoff.request"
	CapabilityTimeOffApprove Capability = "timeoff.approve"

	// Payroll
	CapabilityPayrollView Capability = "payroll.view"
	CapabilityPayrollRun  Capability = "payroll.run"

	// Business Management
	CapabilityBusinessManage Capability = "business.manage"
)

// AllCapabilities enumerates every capability. Tests iterate it to enforce the
// owner ⊇ manager ⊇ employee invariant on RoleCapabilities.
var AllCapabilities = []Capability{
	CapabilityProfileViewOwn,
	CapabilityProfileEditOwn,
	CapabilityDashboardView,
	CapabilityActivityView,
	CapabilityReportsView,
	CapabilityFinanceRevenue,
	CapabilityFinanceExpenses,
	CapabilityFinanceNetProfit,
	CapabilityFinanceMargin,
	CapabilityTransactionCreate,
	CapabilityTransactionEdit,
	CapabilityTransactionDelete,
	CapabilityTeamView,
	CapabilityTeamInvite,
	CapabilityTeamManage,
	CapabilityScheduleView,
	CapabilityScheduleManage,
	CapabilityTimeOffRequest,
	CapabilityTimeOffApprove,
	CapabilityPayrollView,
	CapabilityPayrollRun,
	CapabilityBusinessManage,
}

// RoleCapabilities maps roles to their granted capabilities. It is the single
// source of truth for authorization and must hold the superset invariant
// owner ⊇ manager ⊇ employee. Capabilities are granted explicitly, never
// inferred from one another. Review this table as a unit whenever a
// capability is added.
var RoleCapabilities = map[Role][]Capability{
	RoleOwner: {
		// Owner has all capabilities
		CapabilityProfileViewOwn,
		CapabilityProfileEditOwn,
		CapabilityDashboardView,
		CapabilityActivityView,
		CapabilityReportsView,
		CapabilityFinanceRevenue,
		CapabilityFinanceExpenses,
		CapabilityFinanceNetProfit,
		CapabilityFinanceMargin,
		CapabilityTransactionCreate,
		CapabilityTransactionEdit,
		CapabilityTransactionDelete,
		CapabilityTeamView,
		CapabilityTeamInvite,
		CapabilityTeamManage,
		CapabilityScheduleView,
		CapabilityScheduleManage,
		CapabilityTimeOffRequest,
		CapabilityTimeOffApprove,
		CapabilityPayrollView,
		CapabilityPayrollRun,
		CapabilityBusinessManage,
	},
	RoleManager: {
		// Manager runs operations and sees activity volume, not financial totals
		CapabilityProfileViewOwn,
		CapabilityProfileEditOwn,
		CapabilityDashboardView,
		CapabilityActivityView,
		CapabilityReportsView,
		CapabilityTransactionCreate,
		CapabilityTransactionEdit,
		CapabilityTeamView,
		CapabilityTeamInvite,
		CapabilityScheduleView,
		CapabilityScheduleManage,
		CapabilityTimeOffRequest,
		CapabilityTimeOffApprove,
		CapabilityPayrollView,
	},
	RoleEmployee: {
		// Employee logs their own work
		CapabilityProfileViewOwn,
		CapabilityProfileEditOwn,
		CapabilityDashboardView,
		CapabilityTransactionCreate,
		CapabilityScheduleView,
		CapabilityTimeOffRequest,
	},
}

// HasCapability checks if a role holds a capability. An empty or unknown role
// holds nothing.
func HasCapability(role Role, capability Capability) bool {
	if role == "" {
		return false
	}

	capabilities, exists := RoleCapabilities[role.Normalize()]
	if !exists {
		return false
	}

	for _, c := range capabilities {
		if c == capability {
			return true
		}
	}

	return false
}
