package schedule

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	Delete(ctx context.Context, id string) error
	ListByBusiness(ctx context.Context, businessID string, from, to time.Time) ([]Shift, error)
	ListByUser(ctx context.Context, businessID, userID string, from, to time.Time) ([]Shift, error)
}

type TimeOffRepository interface {
	Create(ctx context.Context, t TimeOffRequest) (TimeOffRequest, error)
	GetByID(ctx context.Context, id string) (TimeOffRequest, error)
	ListByBusiness(ctx context.Context, businessID string, status *TimeOffStatus) ([]TimeOffRequest, error)
	UpdateStatus(ctx context.Context, id string, status TimeOffStatus, decidedBy string) (TimeOffRequest, error)
}
