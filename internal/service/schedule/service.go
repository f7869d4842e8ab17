package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/schedule"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/validator"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/permission"
	"github.com/jackc/pgx/v5"
)

type ScheduleServiceImpl struct {
	shiftRepo   schedule.ShiftRepository
	timeOffRepo schedule.TimeOffRepository
	resolver    *permission.Resolver
}

func NewScheduleService(shiftRepository schedule.ShiftRepository, timeOffRepository schedule.TimeOffRepository, resolver *permission.Resolver) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		shiftRepo:   shiftRepository,
		timeOffRepo: timeOffRepository,
		resolver:    resolver,
	}
}

// CreateShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateShift(ctx context.Context, businessID string, req schedule.CreateShiftRequest) (schedule.Shift, error) {
	starts, _ := validator.IsValidDateTime(req.StartsAt)
	ends, _ := validator.IsValidDateTime(req.EndsAt)

	created, err := s.shiftRepo.Create(ctx, schedule.Shift{
		BusinessID: businessID,
		UserID:     req.UserID,
		StartsAt:   starts,
		EndsAt:     ends,
		Note:       req.Note,
	})
	if err != nil {
		return schedule.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, nil
}

// DeleteShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DeleteShift(ctx context.Context, businessID, shiftID string) error {
	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}
	if shift.BusinessID != businessID {
		return schedule.ErrShiftNotFound
	}

	if err := s.shiftRepo.Delete(ctx, shiftID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

// ListShifts implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListShifts(ctx context.Context, businessID, userID string, role user.Role, from, to time.Time) ([]schedule.Shift, error) {
	var (
		shifts []schedule.Shift
		err    error
	)
	if s.resolver.HasCapability(role, user.CapabilityScheduleManage) {
		shifts, err = s.shiftRepo.ListByBusiness(ctx, businessID, from, to)
	} else {
		shifts, err = s.shiftRepo.ListByUser(ctx, businessID, userID, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shifts, nil
}

// RequestTimeOff implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) RequestTimeOff(ctx context.Context, businessID, userID string, req schedule.CreateTimeOffRequest) (schedule.TimeOffRequest, error) {
	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := s.timeOffRepo.Create(ctx, schedule.TimeOffRequest{
		BusinessID: businessID,
		UserID:     userID,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     schedule.TimeOffPending,
	})
	if err != nil {
		return schedule.TimeOffRequest{}, fmt.Errorf("failed to create time off request: %w", err)
	}
	return created, nil
}

// DecideTimeOff implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DecideTimeOff(ctx context.Context, businessID, requestID, deciderID string, approve bool) (schedule.TimeOffRequest, error) {
	req, err := s.timeOffRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.TimeOffRequest{}, schedule.ErrTimeOffNotFound
		}
		return schedule.TimeOffRequest{}, fmt.Errorf("failed to get time off request: %w", err)
	}
	if req.BusinessID != businessID {
		return schedule.TimeOffRequest{}, schedule.ErrTimeOffNotFound
	}
	if req.Status != schedule.TimeOffPending {
		return schedule.TimeOffRequest{}, schedule.ErrTimeOffProcessed
	}
	if req.UserID == deciderID {
		return schedule.TimeOffRequest{}, schedule.ErrTimeOffOwnRequest
	}

	status := schedule.TimeOffRejected
	if approve {
		status = schedule.TimeOffApproved
	}

	decided, err := s.timeOffRepo.UpdateStatus(ctx, requestID, status, deciderID)
	if err != nil {
		return schedule.TimeOffRequest{}, fmt.Errorf("failed to update time off status: %w", err)
	}
	return decided, nil
}

// ListTimeOff implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListTimeOff(ctx context.Context, businessID string, status *schedule.TimeOffStatus) ([]schedule.TimeOffRequest, error) {
	requests, err := s.timeOffRepo.ListByBusiness(ctx, businessID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list time off requests: %w", err)
	}
	return requests, nil
}
