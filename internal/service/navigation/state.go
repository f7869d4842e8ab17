package navigation

import "github.com/bizpulse/bizpulse-backend-go/internal/domain/user"

// State is the top-level navigation stack the client should mount. States are
// mutually exclusive; evaluate resolves them in priority order.
type State string

const (
	// StateInitializing: session not yet determined (stored-session lookup in
	// flight). Always transitions to one of the states below.
	StateInitializing State = "initializing"
	// StateBusinessSelectionRequired: authenticated, at least one business,
	// none selected yet.
	StateBusinessSelectionRequired State = "business_selection_required"
	// StateOnboardingRequired: authenticated with zero businesses.
	StateOnboardingRequired State = "onboarding_required"
	// StateUnauthenticated: no valid session, or a collaborator failure
	// (fail closed).
	StateUnauthenticated State = "unauthenticated"
	// StateActive: authenticated with a business selected. The only state in
	// which role-gated content is rendered.
	StateActive State = "active"
)

// SessionContext is the composite the state machine derives its state from.
// It is owned exclusively by the Machine; everything handed out is a copy.
type SessionContext struct {
	Authenticated          bool
	UserID                 string
	Memberships            []SessionBusiness
	CurrentBusinessID      string
	NeedsBusinessSelection bool
}

// SessionBusiness is one business available to the session, with the
// caller's role in it.
type SessionBusiness struct {
	BusinessID   string
	BusinessName string
	Role         user.Role
}

// NavigationState is the snapshot the presentation layer renders from.
// Generation increases on every completed transition; a client holding a
// snapshot with an older generation must remount the role-gated subtree and
// drop any cached screen lists.
type NavigationState struct {
	State       State                   `json:"state"`
	Generation  uint64                  `json:"generation"`
	Role        user.Role               `json:"role,omitempty"`
	BusinessID  string                  `json:"business_id,omitempty"`
	Businesses  []SessionBusiness       `json:"-"`
	DefaultView string                  `json:"default_view,omitempty"`
	Tabs        []user.ScreenDescriptor `json:"tabs,omitempty"`
	Screens     []user.ScreenDescriptor `json:"screens,omitempty"`
	Err         error                   `json:"-"`
}
