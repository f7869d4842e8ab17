package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/membership"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/payroll"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	membershipRepo membership.MembershipRepository
}

func NewPayrollService(payrollRepository payroll.PayrollRepository, membershipRepository membership.MembershipRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepository,
		membershipRepo: membershipRepository,
	}
}

// CreateRun implements payroll.PayrollService. The draft run snapshots the
// active member count at creation time.
func (s *PayrollServiceImpl) CreateRun(ctx context.Context, businessID, actorID string, req payroll.CreateRunRequest) (payroll.Run, error) {
	start, _ := validator.IsValidDate(req.PeriodStart)
	end, _ := validator.IsValidDate(req.PeriodEnd)

	overlaps, err := s.payrollRepo.HasOverlappingRun(ctx, businessID, start, end)
	if err != nil {
		return payroll.Run{}, fmt.Errorf("failed to check overlapping runs: %w", err)
	}
	if overlaps {
		return payroll.Run{}, payroll.ErrRunOverlaps
	}

	members, err := s.membershipRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return payroll.Run{}, fmt.Errorf("failed to list members: %w", err)
	}
	var memberCount int64
	for _, m := range members {
		if m.Active {
			memberCount++
		}
	}
	if memberCount == 0 {
		return payroll.Run{}, payroll.ErrNoActiveMembers
	}

	created, err := s.payrollRepo.CreateRun(ctx, payroll.Run{
		BusinessID:  businessID,
		PeriodStart: start,
		PeriodEnd:   end,
		Status:      payroll.RunDraft,
		MemberCount: memberCount,
		CreatedBy:   actorID,
	})
	if err != nil {
		return payroll.Run{}, fmt.Errorf("failed to create payroll run: %w", err)
	}
	return created, nil
}

// GetRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRun(ctx context.Context, businessID, runID string) (payroll.Run, error) {
	run, err := s.payrollRepo.GetRun(ctx, runID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to get payroll run: %w", err)
	}
	if run.BusinessID != businessID {
		return payroll.Run{}, payroll.ErrRunNotFound
	}
	return run, nil
}

// ListRuns implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRuns(ctx context.Context, businessID string) ([]payroll.Run, error) {
	runs, err := s.payrollRepo.ListRuns(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	return runs, nil
}

// FinalizeRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) FinalizeRun(ctx context.Context, businessID, runID string) (payroll.Run, error) {
	run, err := s.GetRun(ctx, businessID, runID)
	if err != nil {
		return payroll.Run{}, err
	}
	if run.Status == payroll.RunFinalized {
		return payroll.Run{}, payroll.ErrRunFinalized
	}

	finalized, err := s.payrollRepo.FinalizeRun(ctx, runID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Run{}, payroll.ErrRunFinalized
		}
		return payroll.Run{}, fmt.Errorf("failed to finalize payroll run: %w", err)
	}
	return finalized, nil
}
