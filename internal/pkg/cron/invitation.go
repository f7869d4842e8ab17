package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/invitation"
)

// InvitationJobs sweeps pending invitations past their expiry.
type InvitationJobs struct {
	invitationRepo invitation.InvitationRepository
}

func NewInvitationJobs(invitationRepo invitation.InvitationRepository) *InvitationJobs {
	return &InvitationJobs{invitationRepo: invitationRepo}
}

func (j *InvitationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("expire_stale_invitations", 1*time.Hour, j.ExpireStaleInvitations)
}

func (j *InvitationJobs) ExpireStaleInvitations(ctx context.Context) error {
	expired, err := j.invitationRepo.ExpirePending(ctx)
	if err != nil {
		return err
	}
	if expired > 0 {
		slog.Info("Cron: expired stale invitations", "count", expired)
	}
	return nil
}
