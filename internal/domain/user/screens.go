package user

// ScreenDescriptor describes a navigable screen in the mobile app. A role can
// access a screen only when it holds every required capability.
type ScreenDescriptor struct {
	RouteID              string       `json:"route_id"`
	RequiredCapabilities []Capability `json:"-"`
	Label                string       `json:"label"`
	Icon                 string       `json:"icon"`
}

// Screens is the full screen registry in declaration order. Accessible-screen
// lists preserve this order; nothing re-sorts it.
var Screens = []ScreenDescriptor{
	{
		RouteID:              "dashboard",
		RequiredCapabilities: []Capability{CapabilityDashboardView},
		Label:                "Dashboard",
		Icon:                 "home",
	},
	{
		RouteID:              "transactions",
		RequiredCapabilities: []Capability{CapabilityTransactionCreate},
		Label:                "Transactions",
		Icon:                 "receipt",
	},
	{
		RouteID:              "reports",
		RequiredCapabilities: []Capability{CapabilityReportsView},
		Label:                "Reports",
		Icon:                 "bar-chart",
	},
	{
		RouteID:              "team",
		RequiredCapabilities: []Capability{CapabilityTeamView},
		Label:                "Team",
		Icon:                 "users",
	},
	{
		RouteID:              "schedule",
		RequiredCapabilities: []Capability{CapabilityScheduleView},
		Label:                "Schedule",
		Icon:                 "calendar",
	},
	{
		RouteID:              "payroll",
		RequiredCapabilities: []Capability{CapabilityPayrollView},
		Label:                "Payroll",
		Icon:                 "wallet",
	},
	{
		RouteID:              "settings",
		RequiredCapabilities: []Capability{CapabilityBusinessManage},
		Label:                "Settings",
		Icon:                 "settings",
	},
	{
		RouteID:              "profile",
		RequiredCapabilities: []Capability{CapabilityProfileViewOwn},
		Label:                "Profile",
		Icon:                 "user",
	},
}
