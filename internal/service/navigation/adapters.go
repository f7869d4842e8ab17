package navigation

import (
	"context"
	"errors"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/business"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/membership"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
)

// repoIdentityProvider answers session checks from the users table. A missing
// user reads as "no session" rather than an error so the machine lands in
// unauthenticated instead of the fetch-failed path.
type repoIdentityProvider struct {
	userRepo user.UserRepository
}

func NewIdentityProvider(userRepository user.UserRepository) IdentityProvider {
	return &repoIdentityProvider{userRepo: userRepository}
}

func (p *repoIdentityProvider) CurrentSession(ctx context.Context, userID string) (*Session, error) {
	u, err := p.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &Session{UserID: u.ID, Email: u.Email}, nil
}

type repoDataStore struct {
	membershipRepo membership.MembershipRepository
	businessRepo   business.BusinessRepository
}

func NewDataStore(membershipRepository membership.MembershipRepository, businessRepository business.BusinessRepository) DataStore {
	return &repoDataStore{
		membershipRepo: membershipRepository,
		businessRepo:   businessRepository,
	}
}

func (d *repoDataStore) MembershipsForUser(ctx context.Context, userID string) ([]membership.Membership, error) {
	return d.membershipRepo.ListByUser(ctx, userID)
}

// BusinessByID maps a missing row to the domain sentinel so the machine can
// tell a deleted business apart from a store outage.
func (d *repoDataStore) BusinessByID(ctx context.Context, businessID string) (business.Business, error) {
	b, err := d.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return business.Business{}, business.ErrBusinessNotFound
		}
		return business.Business{}, err
	}
	return b, nil
}
