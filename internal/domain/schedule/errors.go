package schedule

import "errors"

var (
	ErrShiftNotFound     = errors.New("shift not found")
	ErrShiftInvalidRange = errors.New("shift must end after it starts")
	ErrTimeOffNotFound   = errors.New("time off request not found")
	ErrTimeOffProcessed  = errors.New("time off request already processed")
	ErrTimeOffOwnRequest = errors.New("cannot decide your own time off request")
)
