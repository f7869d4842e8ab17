package user

import "time"

type Role string

const (
	RoleOwner    Role = "owner"    // Business owner - full access
	RoleManager  Role = "manager"  // Runs day-to-day operations, no financial totals
	RoleEmployee Role = "employee" // Regular team member
	// RoleAccountant is kept for legacy memberships and resolves to the
	// employee capability set. Do not grant it to new members.
	RoleAccountant Role = "accountant"
)

// Normalize collapses role aliases and unknown values to a canonical role.
// Unknown values resolve to employee so a corrupt membership row fails closed.
func (r Role) Normalize() Role {
	switch r {
	case RoleOwner, RoleManager, RoleEmployee:
		return r
	case RoleAccountant:
		return RoleEmployee
	default:
		return RoleEmployee
	}
}

// IsKnown reports whether the raw value is part of the role enum.
func (r Role) IsKnown() bool {
	switch r {
	case RoleOwner, RoleManager, RoleEmployee, RoleAccountant:
		return true
	}
	return false
}

// roleRank orders roles for advisory hierarchy checks only. Capabilities are
// never derived from rank.
var roleRank = map[Role]int{
	RoleOwner:    3,
	RoleManager:  2,
	RoleEmployee: 1,
}

// IsHigherRole reports whether a outranks b (owner > manager > employee).
// Aliases and unknown roles rank as employee.
func IsHigherRole(a, b Role) bool {
	return roleRank[a.Normalize()] > roleRank[b.Normalize()]
}

type User struct {
	ID              string
	Email           string
	Name            string
	PasswordHash    *string
	OAuthProvider   *string
	OAuthProviderID *string
	EmailVerified   bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
