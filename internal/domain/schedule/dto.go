package schedule

import (
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	UserID   string  `json:"user_id"`
	StartsAt string  `json:"starts_at"`
	EndsAt   string  `json:"ends_at"`
	Note     *string `json:"note"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	starts, startsOK := validator.IsValidDateTime(r.StartsAt)
	if !startsOK {
		errs = append(errs, validator.ValidationError{
			Field:   "starts_at",
			Message: "starts_at must be an RFC3339 timestamp",
		})
	}
	ends, endsOK := validator.IsValidDateTime(r.EndsAt)
	if !endsOK {
		errs = append(errs, validator.ValidationError{
			Field:   "ends_at",
			Message: "ends_at must be an RFC3339 timestamp",
		})
	}
	if startsOK && endsOK && !ends.After(starts) {
		errs = append(errs, validator.ValidationError{
			Field:   "ends_at",
			Message: "ends_at must be after starts_at",
		})
	}

	if r.Note != nil && len(*r.Note) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateTimeOffRequest struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason"`
}

func (r *CreateTimeOffRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a YYYY-MM-DD date",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a YYYY-MM-DD date",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if r.Reason != nil && len(*r.Reason) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	MemberName string  `json:"member_name,omitempty"`
	StartsAt   string  `json:"starts_at"`
	EndsAt     string  `json:"ends_at"`
	Note       *string `json:"note,omitempty"`
}

func ToShiftResponse(s Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:       s.ID,
		UserID:   s.UserID,
		StartsAt: s.StartsAt.Format(time.RFC3339),
		EndsAt:   s.EndsAt.Format(time.RFC3339),
		Note:     s.Note,
	}
	if s.MemberName != nil {
		resp.MemberName = *s.MemberName
	}
	return resp
}

type TimeOffResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason,omitempty"`
	Status    string  `json:"status"`
}

func ToTimeOffResponse(t TimeOffRequest) TimeOffResponse {
	return TimeOffResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		StartDate: t.StartDate.Format("2006-01-02"),
		EndDate:   t.EndDate.Format("2006-01-02"),
		Reason:    t.Reason,
		Status:    string(t.Status),
	}
}
