package team

import (
	"context"
	"testing"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/membership"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMembershipRepo struct {
	members     map[string]membership.Membership // key userID
	deactivated []string
}

func key(userID, businessID string) string { return userID + "/" + businessID }

func (f *fakeMembershipRepo) Create(ctx context.Context, m membership.Membership) (membership.Membership, error) {
	return m, nil
}

func (f *fakeMembershipRepo) GetByUserAndBusiness(ctx context.Context, userID, businessID string) (membership.Membership, error) {
	m, ok := f.members[key(userID, businessID)]
	if !ok {
		return membership.Membership{}, pgx.ErrNoRows
	}
	return m, nil
}

func (f *fakeMembershipRepo) ListByUser(ctx context.Context, userID string) ([]membership.Membership, error) {
	return nil, nil
}

func (f *fakeMembershipRepo) ListByBusiness(ctx context.Context, businessID string) ([]membership.Membership, error) {
	var out []membership.Membership
	for _, m := range f.members {
		if m.BusinessID == businessID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMembershipRepo) UpdateRole(ctx context.Context, userID, businessID string, role user.Role) (membership.Membership, error) {
	m := f.members[key(userID, businessID)]
	m.Role = role
	f.members[key(userID, businessID)] = m
	return m, nil
}

func (f *fakeMembershipRepo) Deactivate(ctx context.Context, userID, businessID string) error {
	if _, ok := f.members[key(userID, businessID)]; !ok {
		return pgx.ErrNoRows
	}
	f.deactivated = append(f.deactivated, userID)
	return nil
}

func newTestRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{members: map[string]membership.Membership{
		key("u-owner", "b1"):    {UserID: "u-owner", BusinessID: "b1", Role: user.RoleOwner, Active: true},
		key("u-manager", "b1"):  {UserID: "u-manager", BusinessID: "b1", Role: user.RoleManager, Active: true},
		key("u-employee", "b1"): {UserID: "u-employee", BusinessID: "b1", Role: user.RoleEmployee, Active: true},
		key("u-gone", "b1"):     {UserID: "u-gone", BusinessID: "b1", Role: user.RoleEmployee, Active: false},
	}}
}

func TestListMembersFiltersInactive(t *testing.T) {
	svc := NewTeamService(newTestRepo())

	members, err := svc.ListMembers(context.Background(), "b1")
	require.NoError(t, err)
	assert.Len(t, members, 3)
	for _, m := range members {
		assert.True(t, m.Active)
	}
}

func TestChangeRolePromotesEmployee(t *testing.T) {
	repo := newTestRepo()
	svc := NewTeamService(repo)

	updated, err := svc.ChangeRole(context.Background(), "b1", "u-employee", user.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, user.RoleManager, updated.Role)
}

func TestChangeRoleRejectsOwnerEitherWay(t *testing.T) {
	svc := NewTeamService(newTestRepo())

	_, err := svc.ChangeRole(context.Background(), "b1", "u-owner", user.RoleEmployee)
	assert.ErrorIs(t, err, membership.ErrCannotDemoteOwner)

	_, err = svc.ChangeRole(context.Background(), "b1", "u-manager", user.RoleOwner)
	assert.ErrorIs(t, err, membership.ErrCannotDemoteOwner)
}

func TestChangeRoleUnknownMember(t *testing.T) {
	svc := NewTeamService(newTestRepo())

	_, err := svc.ChangeRole(context.Background(), "b1", "u-stranger", user.RoleManager)
	assert.ErrorIs(t, err, membership.ErrMembershipNotFound)
}

func TestRemoveMemberDeactivates(t *testing.T) {
	repo := newTestRepo()
	svc := NewTeamService(repo)

	err := svc.RemoveMember(context.Background(), "b1", "u-employee")
	require.NoError(t, err)
	assert.Contains(t, repo.deactivated, "u-employee")
}

func TestRemoveMemberRejectsOwner(t *testing.T) {
	svc := NewTeamService(newTestRepo())

	err := svc.RemoveMember(context.Background(), "b1", "u-owner")
	assert.ErrorIs(t, err, membership.ErrCannotRemoveOwner)
}

func TestRemoveMemberUnknown(t *testing.T) {
	svc := NewTeamService(newTestRepo())

	err := svc.RemoveMember(context.Background(), "b1", "u-stranger")
	assert.ErrorIs(t, err, membership.ErrMembershipNotFound)
}
