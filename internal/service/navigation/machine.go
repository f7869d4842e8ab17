package navigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/business"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/permission"
)

// Machine derives the navigation state for one user session from the identity
// provider and the data store. It owns the only mutable SessionContext;
// transitions are serialized and every completed transition bumps the
// generation so the client remounts the role-gated subtree.
//
// Collaborator calls run without the lock held. Each transition takes a token
// first and applies its resolution only if no newer transition has started in
// the meantime: last-requested-wins, never first-completed-wins.
type Machine struct {
	userID   string
	idp      IdentityProvider
	store    DataStore
	resolver *permission.Resolver

	seq atomic.Uint64

	mu   sync.Mutex
	gen  uint64
	sctx SessionContext
	snap NavigationState
}

func NewMachine(userID string, idp IdentityProvider, store DataStore, resolver *permission.Resolver) *Machine {
	m := &Machine{
		userID:   userID,
		idp:      idp,
		store:    store,
		resolver: resolver,
	}
	m.snap = NavigationState{State: StateInitializing}
	return m
}

// Snapshot returns the current navigation state. The caller gets a copy; the
// machine's own state cannot be torn by concurrent transitions.
func (m *Machine) Snapshot() NavigationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Start resolves the initial state after login or app start.
func (m *Machine) Start(ctx context.Context) (NavigationState, error) {
	return m.Refresh(ctx)
}

// Refresh re-derives the state from the collaborators. Used after login,
// business creation or deletion, and whenever the client asks for a
// re-evaluation.
func (m *Machine) Refresh(ctx context.Context) (NavigationState, error) {
	token := m.seq.Add(1)

	sctx, cause := m.resolve(ctx)
	return m.apply(token, sctx, cause)
}

// SelectBusiness switches the session to the given business. The user must be
// an active member; otherwise the selection is dropped and the state falls
// back to business selection.
func (m *Machine) SelectBusiness(ctx context.Context, businessID string) (NavigationState, error) {
	token := m.seq.Add(1)

	sctx, cause := m.resolve(ctx)
	if cause == nil {
		found := false
		for _, b := range sctx.Memberships {
			if b.BusinessID == businessID {
				found = true
				break
			}
		}
		// The membership list may lag a concurrent business deletion, so
		// the business is confirmed to still exist before activating it. A
		// deleted business falls back to the selection screen; a store
		// failure is not a membership verdict and fails closed instead.
		if found {
			if _, berr := m.store.BusinessByID(ctx, businessID); berr != nil {
				if errors.Is(berr, business.ErrBusinessNotFound) {
					found = false
				} else {
					cause = fmt.Errorf("%w: %v", ErrFetchFailed, berr)
				}
			}
		}
		if cause == nil {
			if found {
				sctx.CurrentBusinessID = businessID
				sctx.NeedsBusinessSelection = false
			} else {
				sctx.CurrentBusinessID = ""
				cause = ErrNotAMember
			}
		}
	}

	return m.apply(token, sctx, cause)
}

// Logout drops to unauthenticated unconditionally and invalidates any
// in-flight transition. It makes no collaborator calls and skips the
// staleness check entirely: a logout can never lose the race to a
// resolution still in flight.
func (m *Machine) Logout() NavigationState {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq.Add(1)
	m.sctx = SessionContext{}
	m.gen++
	m.snap = m.derive(m.sctx, nil)
	return m.snapshotLocked()
}

// resolve performs the collaborator calls without holding the lock. Any
// failure yields an unauthenticated context: no partial or default business
// access is ever granted.
func (m *Machine) resolve(ctx context.Context) (SessionContext, error) {
	sess, err := m.idp.CurrentSession(ctx, m.userID)
	if err != nil {
		return SessionContext{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if sess == nil {
		return SessionContext{}, nil
	}

	memberships, err := m.store.MembershipsForUser(ctx, sess.UserID)
	if err != nil {
		return SessionContext{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	sctx := SessionContext{
		Authenticated: true,
		UserID:        sess.UserID,
	}
	for _, ms := range memberships {
		if !ms.Active {
			continue
		}
		sb := SessionBusiness{
			BusinessID: ms.BusinessID,
			Role:       ms.Role,
		}
		if ms.BusinessName != nil {
			sb.BusinessName = *ms.BusinessName
		}
		sctx.Memberships = append(sctx.Memberships, sb)
	}

	// A previously selected business survives the refresh only while the
	// membership is still active.
	m.mu.Lock()
	previous := m.sctx.CurrentBusinessID
	m.mu.Unlock()
	for _, b := range sctx.Memberships {
		if b.BusinessID == previous {
			sctx.CurrentBusinessID = previous
			break
		}
	}

	return sctx, nil
}

// apply installs a resolved context, unless a newer transition has started
// since token was taken, in which case the resolution is discarded.
func (m *Machine) apply(token uint64, sctx SessionContext, cause error) (NavigationState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token != m.seq.Load() {
		slog.Debug("discarding stale navigation transition", "user_id", m.userID)
		return m.snapshotLocked(), ErrStaleTransition
	}

	// Collaborator failures fail closed. A bad business selection does not:
	// the session survives and falls back to the selection screen.
	if cause != nil && !errors.Is(cause, ErrNotAMember) {
		sctx = SessionContext{}
	}
	sctx.NeedsBusinessSelection = sctx.Authenticated &&
		len(sctx.Memberships) > 0 && sctx.CurrentBusinessID == ""

	m.sctx = sctx
	m.gen++
	m.snap = m.derive(sctx, cause)

	return m.snapshotLocked(), cause
}

// derive maps a SessionContext to the state the client should mount,
// following the priority order of the state list.
func (m *Machine) derive(sctx SessionContext, cause error) NavigationState {
	snap := NavigationState{
		Generation: m.gen,
		Businesses: sctx.Memberships,
		Err:        cause,
	}

	switch {
	case !sctx.Authenticated:
		snap.State = StateUnauthenticated
	case len(sctx.Memberships) == 0:
		snap.State = StateOnboardingRequired
	case sctx.NeedsBusinessSelection:
		snap.State = StateBusinessSelectionRequired
	default:
		snap.State = StateActive
		snap.BusinessID = sctx.CurrentBusinessID
		snap.Role = m.roleFor(sctx)
		snap.DefaultView = m.resolver.DashboardView(snap.Role)
		snap.Tabs = m.resolver.Tabs(snap.Role)
		snap.Screens = m.resolver.AccessibleScreens(snap.Role)
	}

	return snap
}

func (m *Machine) roleFor(sctx SessionContext) user.Role {
	for _, b := range sctx.Memberships {
		if b.BusinessID == sctx.CurrentBusinessID {
			return b.Role
		}
	}
	return ""
}

func (m *Machine) snapshotLocked() NavigationState {
	return m.snap
}
