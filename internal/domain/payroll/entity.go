package payroll

import "time"

type RunStatus string

const (
	RunDraft     RunStatus = "draft"
	RunFinalized RunStatus = "finalized"
)

// Run is a payroll run over a period. Amounts are in minor currency units.
type Run struct {
	ID          string
	BusinessID  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Status      RunStatus
	TotalAmount int64
	MemberCount int64
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
