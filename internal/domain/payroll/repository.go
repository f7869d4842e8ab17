package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	CreateRun(ctx context.Context, run Run) (Run, error)
	GetRun(ctx context.Context, id string) (Run, error)
	ListRuns(ctx context.Context, businessID string) ([]Run, error)
	FinalizeRun(ctx context.Context, id string) (Run, error)
	HasOverlappingRun(ctx context.Context, businessID string, start, end time.Time) (bool, error)
}
