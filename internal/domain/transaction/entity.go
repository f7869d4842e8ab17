package transaction

import "time"

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single revenue or expense entry. Amount is in minor
// currency units (cents) to keep arithmetic exact.
type Transaction struct {
	ID         string
	BusinessID string
	Type       Type
	Amount     int64
	Category   string
	Note       *string
	OccurredAt time.Time
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PeriodSummary aggregates a business's transactions over a period. These are
// the restricted aggregate fields; the dashboard layer redacts them per role
// before anything leaves the service boundary.
type PeriodSummary struct {
	TotalRevenue     int64
	TotalExpenses    int64
	NetProfit        int64
	ProfitMargin     float64
	TransactionCount int64
}
