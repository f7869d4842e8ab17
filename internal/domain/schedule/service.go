package schedule

import (
	"context"
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
)

type ScheduleService interface {
	CreateShift(ctx context.Context, businessID string, req CreateShiftRequest) (Shift, error)
	DeleteShift(ctx context.Context, businessID, shiftID string) error
	// ListShifts scopes to the caller's own shifts unless their role holds
	// schedule.manage.
	ListShifts(ctx context.Context, businessID, userID string, role user.Role, from, to time.Time) ([]Shift, error)

	RequestTimeOff(ctx context.Context, businessID, userID string, req CreateTimeOffRequest) (TimeOffRequest, error)
	// DecideTimeOff approves or rejects a pending request. Members cannot
	// decide their own requests.
	DecideTimeOff(ctx context.Context, businessID, requestID, deciderID string, approve bool) (TimeOffRequest, error)
	ListTimeOff(ctx context.Context, businessID string, status *TimeOffStatus) ([]TimeOffRequest, error)
}
