package payroll

import "errors"

var (
	ErrRunNotFound     = errors.New("payroll run not found")
	ErrRunFinalized    = errors.New("payroll run is already finalized")
	ErrRunOverlaps     = errors.New("a payroll run already covers this period")
	ErrInvalidPeriod   = errors.New("period end must be after period start")
	ErrNoActiveMembers = errors.New("business has no active members to pay")
)
