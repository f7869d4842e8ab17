package navigation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/business"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/membership"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/permission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdentity struct {
	mu       sync.Mutex
	sessions map[string]*Session
	err      error
}

func (f *fakeIdentity) CurrentSession(_ context.Context, userID string) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.sessions[userID], nil
}

type fakeStore struct {
	mu          sync.Mutex
	memberships map[string][]membership.Membership
	err         error
	bizErr      error
	// gate, when set, blocks MembershipsForUser until released. Used to hold
	// a transition in flight while a newer one completes. entered is signaled
	// once the blocked call is underway.
	gate    chan struct{}
	entered chan struct{}
}

func (f *fakeStore) MembershipsForUser(_ context.Context, userID string) ([]membership.Membership, error) {
	f.mu.Lock()
	gate := f.gate
	entered := f.entered
	f.mu.Unlock()
	if gate != nil {
		if entered != nil {
			close(entered)
		}
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.memberships[userID], nil
}

func (f *fakeStore) BusinessByID(_ context.Context, businessID string) (business.Business, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.bizErr != nil {
		return business.Business{}, f.bizErr
	}
	return business.Business{ID: businessID}, nil
}

func name(s string) *string { return &s }

func newTestMachine(sessions map[string]*Session, memberships map[string][]membership.Membership) (*Machine, *fakeIdentity, *fakeStore) {
	idp := &fakeIdentity{sessions: sessions}
	store := &fakeStore{memberships: memberships}
	m := NewMachine("u1", idp, store, permission.NewResolver())
	return m, idp, store
}

func TestMachineStartsInitializing(t *testing.T) {
	m, _, _ := newTestMachine(nil, nil)
	snap := m.Snapshot()
	assert.Equal(t, StateInitializing, snap.State)
	assert.Zero(t, snap.Generation)
}

func TestStartWithoutSessionIsUnauthenticated(t *testing.T) {
	m, _, _ := newTestMachine(map[string]*Session{}, nil)

	snap, err := m.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateUnauthenticated, snap.State)
}

func TestLoginWithZeroBusinessesLandsOnOnboarding(t *testing.T) {
	m, _, _ := newTestMachine(
		map[string]*Session{"u1": {UserID: "u1"}},
		map[string][]membership.Membership{"u1": nil},
	)

	snap, err := m.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateOnboardingRequired, snap.State)
}

func TestLoginWithBusinessesLandsOnSelection(t *testing.T) {
	m, _, _ := newTestMachine(
		map[string]*Session{"u1": {UserID: "u1"}},
		map[string][]membership.Membership{"u1": {
			{UserID: "u1", BusinessID: "b1", Role: user.RoleOwner, Active: true, BusinessName: name("Warung Kopi")},
			{UserID: "u1", BusinessID: "b2", Role: user.RoleEmployee, Active: true, BusinessName: name("Laundry")},
		}},
	)

	snap, err := m.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateBusinessSelectionRequired, snap.State)
	assert.Len(t, snap.Businesses, 2)
	assert.Empty(t, snap.Screens, "no role-gated content before a business is selected")
}

func TestSelectBusinessActivatesRoleGatedContent(t *testing.T) {
	m, _, _ := newTestMachine(
		map[string]*Session{"u1": {UserID: "u1"}},
		map[string][]membership.Membership{"u1": {
			{UserID: "u1", BusinessID: "b1", Role: user.RoleManager, Active: true},
		}},
	)

	_, err := m.Start(context.Background())
	require.NoError(t, err)

	snap, err := m.SelectBusiness(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, StateActive, snap.State)
	assert.Equal(t, "b1", snap.BusinessID)
	assert.Equal(t, user.RoleManager, snap.Role)
	assert.Equal(t, permission.ViewManagerDashboard, snap.DefaultView)
	assert.NotEmpty(t, snap.Tabs)
	assert.NotEmpty(t, snap.Screens)
}

func TestSelectBusinessNotAMember(t *testing.T) {
	m, _, _ := newTestMachine(
		map[string]*Session{"u1": {UserID: "u1"}},
		map[string][]membership.Membership{"u1": {
			{UserID: "u1", BusinessID: "b1", Role: user.RoleOwner, Active: true},
		}},
	)

	_, err := m.Start(context.Background())
	require.NoError(t, err)

	snap, err := m.SelectBusiness(context.Background(), "someone-elses")
	assert.ErrorIs(t, err, ErrNotAMember)
	assert.Equal(t, StateBusinessSelectionRequired, snap.State, "bad selection must not log the user out")
}

func TestSelectBusinessStoreFailureFailsClosed(t *testing.T) {
	m, _, store := newTestMachine(
		map[string]*Session{"u1": {UserID: "u1"}},
		map[string][]membership.Membership{"u1": {
			{UserID: "u1", BusinessID: "b1", Role: user.RoleOwner, Active: true},
		}},
	)

	_, err := m.Start(context.Background())
	require.NoError(t, err)

	store.mu.Lock()
	store.bizErr = errors.New("connection refused")
	store.mu.Unlock()

	snap, err := m.SelectBusiness(context.Background(), "b1")
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.NotErrorIs(t, err, ErrNotAMember,
		"a store failure is not a membership verdict")
	assert.Equal(t, StateUnauthenticated, snap.State)
	assert.Error(t, snap.Err, "error kept in snapshot for a retryable UI state")
}

func TestSelectBusinessDeletedBusinessFallsBackToSelection(t *testing.T) {
	m, _, store := newTestMachine(
		map[string]*Session{"u1": {UserID: "u1"}},
		map[string][]membership.Membership{"u1": {
			{UserID: "u1", BusinessID: "b1", Role: user.RoleOwner, Active: true},
		}},
	)

	_, err := m.Start(context.Background())
	require.NoError(t, err)

	// The membership row outlived the business.
	store.mu.Lock()
	store.bizErr = business.ErrBusinessNotFound
	store.mu.Unlock()

	snap, err := m.SelectBusiness(context.Background(), "b1")
	assert.ErrorIs(t, err, ErrNotAMember)
	assert.Equal(t, StateBusinessSelectionRequired, snap.State,
		"a vanished business must not log the user out")
}

func TestInactiveMembershipGrantsNothing(t *testing.T) {
	m, _, _ := newTestMachine(
		map[string]*Session{"u1": {UserID: "u1"}},
		map[string][]membership.Membership{"u1": {
			{UserID: "u1", BusinessID: "b1", Role: user.RoleOwner, Active: false},
		}},
	)

	snap, err := m.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateOnboardingRequired, snap.State)
}

func TestLogoutDropsToUnauthenticatedAndBumpsGeneration(t *testing.T) {
	m, _, _ := newTestMachine(
		map[string]*Session{"u1": {UserID: "u1"}},
		map[string][]membership.Membership{"u1": {
			{UserID: "u1", BusinessID: "b1", Role: user.RoleOwner, Active: true},
		}},
	)

	_, err := m.Start(context.Background())
	require.NoError(t, err)
	active, err := m.SelectBusiness(context.Background(), "b1")
	require.NoError(t, err)
	require.Equal(t, StateActive, active.State)
	cachedScreens := active.Screens
	require.NotEmpty(t, cachedScreens)

	snap := m.Logout()
	assert.Equal(t, StateUnauthenticated, snap.State)
	assert.Greater(t, snap.Generation, active.Generation,
		"generation must advance so cached accessible-screens results are invalidated")
	assert.Empty(t, snap.Screens)
	assert.Empty(t, snap.Role)
}

func TestLogoutIsNeverStale(t *testing.T) {
	m, _, _ := newTestMachine(
		map[string]*Session{"u1": {UserID: "u1"}},
		map[string][]membership.Membership{"u1": {
			{UserID: "u1", BusinessID: "b1", Role: user.RoleOwner, Active: true},
		}},
	)

	_, err := m.Start(context.Background())
	require.NoError(t, err)
	active, err := m.SelectBusiness(context.Background(), "b1")
	require.NoError(t, err)
	require.Equal(t, StateActive, active.State)

	// A transition still in flight has already taken a token; logout must
	// apply regardless and supersede it.
	m.seq.Add(1)

	snap := m.Logout()
	assert.Equal(t, StateUnauthenticated, snap.State)
	assert.Greater(t, snap.Generation, active.Generation)
	assert.Equal(t, StateUnauthenticated, m.Snapshot().State)
}

func TestLastBusinessDeletionDropsToOnboarding(t *testing.T) {
	memberships := map[string][]membership.Membership{"u1": {
		{UserID: "u1", BusinessID: "b1", Role: user.RoleOwner, Active: true},
	}}
	m, _, store := newTestMachine(map[string]*Session{"u1": {UserID: "u1"}}, memberships)

	_, err := m.Start(context.Background())
	require.NoError(t, err)
	snap, err := m.SelectBusiness(context.Background(), "b1")
	require.NoError(t, err)
	require.Equal(t, StateActive, snap.State)

	// The only business goes away.
	store.mu.Lock()
	store.memberships["u1"] = nil
	store.mu.Unlock()

	snap, err = m.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateOnboardingRequired, snap.State,
		"zero businesses means onboarding, not business selection")
}

func TestBusinessSwitchKeepsSelectionAcrossRefresh(t *testing.T) {
	m, _, _ := newTestMachine(
		map[string]*Session{"u1": {UserID: "u1"}},
		map[string][]membership.Membership{"u1": {
			{UserID: "u1", BusinessID: "b1", Role: user.RoleOwner, Active: true},
			{UserID: "u1", BusinessID: "b2", Role: user.RoleEmployee, Active: true},
		}},
	)

	_, err := m.Start(context.Background())
	require.NoError(t, err)
	_, err = m.SelectBusiness(context.Background(), "b2")
	require.NoError(t, err)

	snap, err := m.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateActive, snap.State)
	assert.Equal(t, "b2", snap.BusinessID)
	assert.Equal(t, user.RoleEmployee, snap.Role)
}

func TestFetchFailureFailsClosed(t *testing.T) {
	m, _, store := newTestMachine(
		map[string]*Session{"u1": {UserID: "u1"}},
		map[string][]membership.Membership{"u1": {
			{UserID: "u1", BusinessID: "b1", Role: user.RoleOwner, Active: true},
		}},
	)

	store.mu.Lock()
	store.err = errors.New("connection refused")
	store.mu.Unlock()

	snap, err := m.Start(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Equal(t, StateUnauthenticated, snap.State)
	assert.Empty(t, snap.Businesses, "no partial business access on failure")
	assert.Error(t, snap.Err, "error kept in snapshot for a retryable UI state")
}

func TestStaleTransitionIsDiscarded(t *testing.T) {
	m, _, store := newTestMachine(
		map[string]*Session{"u1": {UserID: "u1"}},
		map[string][]membership.Membership{"u1": {
			{UserID: "u1", BusinessID: "b1", Role: user.RoleOwner, Active: true},
		}},
	)

	// Hold the first refresh in flight at the data store.
	gate := make(chan struct{})
	entered := make(chan struct{})
	store.mu.Lock()
	store.gate = gate
	store.entered = entered
	store.mu.Unlock()

	results := make(chan error, 1)
	go func() {
		_, err := m.Refresh(context.Background())
		results <- err
	}()

	// Wait until the refresh is mid-flight, then supersede it: logout is
	// synchronous and does not touch the gated store.
	<-entered
	snap := m.Logout()
	require.Equal(t, StateUnauthenticated, snap.State)

	// Let the old refresh complete; its resolution must be discarded.
	store.mu.Lock()
	store.gate = nil
	store.entered = nil
	store.mu.Unlock()
	close(gate)

	err := <-results
	assert.ErrorIs(t, err, ErrStaleTransition)
	assert.Equal(t, StateUnauthenticated, m.Snapshot().State,
		"stale active resolution must not overwrite the logout")
}

func TestRegistryLifecycle(t *testing.T) {
	idp := &fakeIdentity{sessions: map[string]*Session{"u1": {UserID: "u1"}}}
	store := &fakeStore{memberships: map[string][]membership.Membership{"u1": {
		{UserID: "u1", BusinessID: "b1", Role: user.RoleOwner, Active: true},
	}}}
	reg := NewRegistry(idp, store, permission.NewResolver())

	snap, err := reg.OnLogin(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, StateBusinessSelectionRequired, snap.State)

	m, err := reg.ForUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, snap.Generation, m.Snapshot().Generation)

	reg.OnLogout("u1")

	// A fresh machine is created on the next request; the old mounted state
	// is gone.
	m2, err := reg.ForUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotSame(t, m, m2)
	assert.Equal(t, StateBusinessSelectionRequired, m2.Snapshot().State)
}
