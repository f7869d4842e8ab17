package schedule

import "time"

// Shift is a single scheduled work block for a member.
type Shift struct {
	ID         string
	BusinessID string
	UserID     string
	StartsAt   time.Time
	EndsAt     time.Time
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	MemberName *string
}

type TimeOffStatus string

const (
	TimeOffPending  TimeOffStatus = "pending"
	TimeOffApproved TimeOffStatus = "approved"
	TimeOffRejected TimeOffStatus = "rejected"
)

// TimeOffRequest is a member's request for time off, approved or rejected by
// roles holding timeoff.approve.
type TimeOffRequest struct {
	ID         string
	BusinessID string
	UserID     string
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	Status     TimeOffStatus
	DecidedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
