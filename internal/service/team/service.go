package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/membership"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
)

type TeamServiceImpl struct {
	membershipRepo membership.MembershipRepository
}

func NewTeamService(membershipRepository membership.MembershipRepository) membership.TeamService {
	return &TeamServiceImpl{membershipRepo: membershipRepository}
}

// ListMembers implements membership.TeamService.
func (s *TeamServiceImpl) ListMembers(ctx context.Context, businessID string) ([]membership.Membership, error) {
	members, err := s.membershipRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	active := make([]membership.Membership, 0, len(members))
	for _, m := range members {
		if m.Active {
			active = append(active, m)
		}
	}
	return active, nil
}

// ChangeRole implements membership.TeamService.
func (s *TeamServiceImpl) ChangeRole(ctx context.Context, businessID, memberID string, role user.Role) (membership.Membership, error) {
	current, err := s.membershipRepo.GetByUserAndBusiness(ctx, memberID, businessID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return membership.Membership{}, membership.ErrMembershipNotFound
		}
		return membership.Membership{}, fmt.Errorf("failed to get membership: %w", err)
	}

	if current.Role == user.RoleOwner {
		return membership.Membership{}, membership.ErrCannotDemoteOwner
	}
	if role == user.RoleOwner {
		return membership.Membership{}, membership.ErrCannotDemoteOwner
	}

	updated, err := s.membershipRepo.UpdateRole(ctx, memberID, businessID, role)
	if err != nil {
		return membership.Membership{}, fmt.Errorf("failed to update role: %w", err)
	}
	return updated, nil
}

// RemoveMember implements membership.TeamService.
func (s *TeamServiceImpl) RemoveMember(ctx context.Context, businessID, memberID string) error {
	current, err := s.membershipRepo.GetByUserAndBusiness(ctx, memberID, businessID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return membership.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}

	if current.Role == user.RoleOwner {
		return membership.ErrCannotRemoveOwner
	}

	if err := s.membershipRepo.Deactivate(ctx, memberID, businessID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return membership.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to deactivate membership: %w", err)
	}
	return nil
}
