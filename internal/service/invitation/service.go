package invitation

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/config"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/invitation"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/membership"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/database"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/email"
	"github.com/bizpulse/bizpulse-backend-go/internal/repository/postgresql"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/permission"
	"github.com/jackc/pgx/v5"
)

type InvitationServiceImpl struct {
	db             *database.DB
	cfg            config.InvitationConfig
	invitationRepo invitation.InvitationRepository
	membershipRepo membership.MembershipRepository
	emailService   email.EmailService
	resolver       *permission.Resolver
}

func NewInvitationService(
	db *database.DB,
	cfg config.InvitationConfig,
	invitationRepository invitation.InvitationRepository,
	membershipRepository membership.MembershipRepository,
	emailService email.EmailService,
	resolver *permission.Resolver,
) invitation.InvitationService {
	return &InvitationServiceImpl{
		db:             db,
		cfg:            cfg,
		invitationRepo: invitationRepository,
		membershipRepo: membershipRepository,
		emailService:   emailService,
		resolver:       resolver,
	}
}

func generateToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Create implements invitation.InvitationService.
func (s *InvitationServiceImpl) Create(ctx context.Context, businessID, inviterID string, req invitation.CreateInvitationRequest) (invitation.Invitation, error) {
	inviterMembership, err := s.membershipRepo.GetByUserAndBusiness(ctx, inviterID, businessID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invitation.Invitation{}, membership.ErrMembershipNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get inviter membership: %w", err)
	}

	invitedRole := user.Role(req.Role)
	if invitedRole == user.RoleOwner {
		return invitation.Invitation{}, invitation.ErrRoleNotInvitable
	}
	// Owners may invite anyone; everyone else only roles strictly below
	// their own.
	if inviterMembership.Role.Normalize() != user.RoleOwner &&
		!s.resolver.IsHigherRole(inviterMembership.Role, invitedRole) {
		return invitation.Invitation{}, invitation.ErrInviterOutranked
	}

	inviteeEmail := strings.ToLower(strings.TrimSpace(req.Email))

	members, err := s.membershipRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("failed to list members: %w", err)
	}
	for _, m := range members {
		if m.Active && m.MemberEmail != nil && strings.EqualFold(*m.MemberEmail, inviteeEmail) {
			return invitation.Invitation{}, invitation.ErrInviteeAlreadyIn
		}
	}

	pending, err := s.invitationRepo.HasPendingForEmail(ctx, businessID, inviteeEmail)
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("failed to check pending invitations: %w", err)
	}
	if pending {
		return invitation.Invitation{}, invitation.ErrInvitationProcessed
	}

	token, err := generateToken()
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	created, err := s.invitationRepo.Create(ctx, invitation.Invitation{
		BusinessID: businessID,
		Email:      inviteeEmail,
		Role:       invitedRole,
		Token:      token,
		Status:     invitation.StatusPending,
		InvitedBy:  inviterID,
		ExpiresAt:  time.Now().UTC().Add(time.Duration(s.cfg.ExpirationHours) * time.Hour),
	})
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("failed to create invitation: %w", err)
	}

	// Email delivery is best effort; a failed send leaves the invitation
	// valid and listable.
	if full, err := s.invitationRepo.GetByToken(ctx, created.Token); err == nil {
		inviterName := ""
		businessName := ""
		if full.InviterName != nil {
			inviterName = *full.InviterName
		}
		if full.BusinessName != nil {
			businessName = *full.BusinessName
		}
		link := fmt.Sprintf("%s?token=%s", s.cfg.AcceptURL, created.Token)
		if sendErr := s.emailService.SendInvitation(
			created.Email, inviterName, businessName, string(created.Role),
			link, created.ExpiresAt.Format("January 2, 2006"),
		); sendErr != nil {
			slog.Error("failed to send invitation email", "invitation_id", created.ID, "error", sendErr)
		}
	}

	return created, nil
}

// Preview implements invitation.InvitationService.
func (s *InvitationServiceImpl) Preview(ctx context.Context, token string) (invitation.Invitation, error) {
	inv, err := s.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get invitation: %w", err)
	}
	return inv, nil
}

// Accept implements invitation.InvitationService. The status flip and the
// membership insert share a transaction so an invitation can never be
// consumed twice.
func (s *InvitationServiceImpl) Accept(ctx context.Context, userID, userEmail, token string) (invitation.Invitation, error) {
	inv, err := s.Preview(ctx, token)
	if err != nil {
		return invitation.Invitation{}, err
	}

	if inv.Status != invitation.StatusPending {
		return invitation.Invitation{}, invitation.ErrInvitationProcessed
	}
	if inv.IsExpired(time.Now().UTC()) {
		return invitation.Invitation{}, invitation.ErrInvitationExpired
	}
	if !strings.EqualFold(inv.Email, userEmail) {
		return invitation.Invitation{}, invitation.ErrInvitationNotFound
	}

	existing, err := s.membershipRepo.GetByUserAndBusiness(ctx, userID, inv.BusinessID)
	if err == nil && existing.Active {
		return invitation.Invitation{}, membership.ErrAlreadyMember
	}
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return invitation.Invitation{}, fmt.Errorf("failed to check existing membership: %w", err)
	}
	rejoining := err == nil

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.invitationRepo.UpdateStatus(txCtx, inv.ID, invitation.StatusAccepted); err != nil {
			return fmt.Errorf("failed to update invitation status: %w", err)
		}

		if rejoining {
			// Deactivated members rejoin with the newly invited role.
			if _, err := s.membershipRepo.UpdateRole(txCtx, userID, inv.BusinessID, inv.Role); err != nil {
				return fmt.Errorf("failed to update membership role: %w", err)
			}
			if err := s.reactivate(txCtx, userID, inv.BusinessID); err != nil {
				return fmt.Errorf("failed to reactivate membership: %w", err)
			}
			return nil
		}

		if _, err := s.membershipRepo.Create(txCtx, membership.Membership{
			UserID:     userID,
			BusinessID: inv.BusinessID,
			Role:       inv.Role,
			Active:     true,
		}); err != nil {
			return fmt.Errorf("failed to create membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return invitation.Invitation{}, err
	}

	inv.Status = invitation.StatusAccepted
	return inv, nil
}

func (s *InvitationServiceImpl) reactivate(ctx context.Context, userID, businessID string) error {
	q := postgresql.GetQuerier(ctx, s.db)
	_, err := q.Exec(ctx,
		`UPDATE memberships SET active = TRUE, updated_at = NOW() WHERE user_id = $1 AND business_id = $2`,
		userID, businessID,
	)
	return err
}

// Revoke implements invitation.InvitationService.
func (s *InvitationServiceImpl) Revoke(ctx context.Context, businessID, invitationID string) error {
	inv, err := s.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invitation.ErrInvitationNotFound
		}
		return fmt.Errorf("failed to get invitation: %w", err)
	}
	if inv.BusinessID != businessID {
		return invitation.ErrInvitationNotFound
	}
	if inv.Status != invitation.StatusPending {
		return invitation.ErrInvitationProcessed
	}

	if err := s.invitationRepo.UpdateStatus(ctx, invitationID, invitation.StatusRevoked); err != nil {
		return fmt.Errorf("failed to revoke invitation: %w", err)
	}
	return nil
}

// ListByBusiness implements invitation.InvitationService.
func (s *InvitationServiceImpl) ListByBusiness(ctx context.Context, businessID string) ([]invitation.Invitation, error) {
	invitations, err := s.invitationRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return invitations, nil
}
