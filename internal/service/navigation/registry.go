package navigation

import (
	"context"
	"sync"

	"github.com/bizpulse/bizpulse-backend-go/internal/service/permission"
)

// Registry hosts one navigation machine per logged-in user. Machines are
// created on login and torn down on logout, so a logout always discards the
// mounted role-gated state instead of reusing it on the next login.
type Registry struct {
	idp      IdentityProvider
	store    DataStore
	resolver *permission.Resolver

	mu       sync.Mutex
	machines map[string]*Machine
}

func NewRegistry(idp IdentityProvider, store DataStore, resolver *permission.Resolver) *Registry {
	return &Registry{
		idp:      idp,
		store:    store,
		resolver: resolver,
		machines: make(map[string]*Machine),
	}
}

// ForUser returns the user's machine, creating and starting one if the user
// has none yet (e.g. the process restarted while the client kept its token).
func (r *Registry) ForUser(ctx context.Context, userID string) (*Machine, error) {
	r.mu.Lock()
	m, ok := r.machines[userID]
	if !ok {
		m = NewMachine(userID, r.idp, r.store, r.resolver)
		r.machines[userID] = m
	}
	r.mu.Unlock()

	if !ok {
		if _, err := m.Start(ctx); err != nil {
			return m, err
		}
	}
	return m, nil
}

// OnLogin creates (or restarts) the user's machine.
func (r *Registry) OnLogin(ctx context.Context, userID string) (NavigationState, error) {
	r.mu.Lock()
	m := NewMachine(userID, r.idp, r.store, r.resolver)
	r.machines[userID] = m
	r.mu.Unlock()

	return m.Start(ctx)
}

// OnLogout drops the user's machine after forcing it to unauthenticated.
func (r *Registry) OnLogout(userID string) {
	r.mu.Lock()
	m, ok := r.machines[userID]
	delete(r.machines, userID)
	r.mu.Unlock()

	if ok {
		m.Logout()
	}
}
