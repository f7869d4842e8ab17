package business

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/business"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/membership"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/database"
	"github.com/bizpulse/bizpulse-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type BusinessServiceImpl struct {
	db *database.DB
	business.BusinessRepository
	membership.MembershipRepository
}

func NewBusinessService(db *database.DB, businessRepository business.BusinessRepository, membershipRepository membership.MembershipRepository) business.BusinessService {
	return &BusinessServiceImpl{
		db:                   db,
		BusinessRepository:   businessRepository,
		MembershipRepository: membershipRepository,
	}
}

// Create implements business.BusinessService. The business row and the owner
// membership land in the same transaction so a business can never exist
// without its owner.
func (s *BusinessServiceImpl) Create(ctx context.Context, ownerID string, req business.CreateBusinessRequest) (business.Business, error) {
	exists, err := s.ExistsByOwnerAndName(ctx, ownerID, req.Name)
	if err != nil {
		return business.Business{}, fmt.Errorf("failed to check business name: %w", err)
	}
	if exists {
		return business.Business{}, business.ErrBusinessNameExists
	}

	var created business.Business
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.BusinessRepository.Create(txCtx, business.Business{
			Name:     req.Name,
			Category: req.Category,
			Currency: req.Currency,
			OwnerID:  ownerID,
		})
		if err != nil {
			return fmt.Errorf("failed to create business: %w", err)
		}

		_, err = s.MembershipRepository.Create(txCtx, membership.Membership{
			UserID:     ownerID,
			BusinessID: created.ID,
			Role:       user.RoleOwner,
			Active:     true,
		})
		if err != nil {
			return fmt.Errorf("failed to create owner membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return business.Business{}, err
	}

	return created, nil
}

// Get implements business.BusinessService.
func (s *BusinessServiceImpl) Get(ctx context.Context, businessID string) (business.Business, error) {
	found, err := s.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return business.Business{}, business.ErrBusinessNotFound
		}
		return business.Business{}, fmt.Errorf("failed to get business: %w", err)
	}
	return found, nil
}

// Update implements business.BusinessService.
func (s *BusinessServiceImpl) Update(ctx context.Context, actorID, businessID string, req business.UpdateBusinessRequest) (business.Business, error) {
	current, err := s.Get(ctx, businessID)
	if err != nil {
		return business.Business{}, err
	}
	if current.OwnerID != actorID {
		return business.Business{}, business.ErrNotBusinessOwner
	}

	if req.Name != "" {
		current.Name = req.Name
	}
	if req.Category != "" {
		current.Category = req.Category
	}
	if req.Currency != "" {
		current.Currency = req.Currency
	}

	updated, err := s.BusinessRepository.Update(ctx, current)
	if err != nil {
		return business.Business{}, fmt.Errorf("failed to update business: %w", err)
	}
	return updated, nil
}

// Delete implements business.BusinessService. Memberships, transactions and
// the rest cascade at the schema level.
func (s *BusinessServiceImpl) Delete(ctx context.Context, actorID, businessID string) error {
	current, err := s.Get(ctx, businessID)
	if err != nil {
		return err
	}
	if current.OwnerID != actorID {
		return business.ErrNotBusinessOwner
	}

	if err := s.BusinessRepository.Delete(ctx, businessID); err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}
	return nil
}

// ListForUser implements business.BusinessService.
func (s *BusinessServiceImpl) ListForUser(ctx context.Context, userID string) ([]membership.Membership, error) {
	memberships, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	active := make([]membership.Membership, 0, len(memberships))
	for _, m := range memberships {
		if m.Active {
			active = append(active, m)
		}
	}
	return active, nil
}
