package payroll

import "context"

type PayrollService interface {
	// CreateRun opens a draft run for the period. Periods may not overlap
	// an existing run.
	CreateRun(ctx context.Context, businessID, actorID string, req CreateRunRequest) (Run, error)
	GetRun(ctx context.Context, businessID, runID string) (Run, error)
	ListRuns(ctx context.Context, businessID string) ([]Run, error)
	FinalizeRun(ctx context.Context, businessID, runID string) (Run, error)
}
