package payroll

import (
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/validator"
)

type CreateRunRequest struct {
	PeriodStart string `json:"period_start"` // YYYY-MM-DD
	PeriodEnd   string `json:"period_end"`   // YYYY-MM-DD
}

func (r *CreateRunRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start must be a YYYY-MM-DD date",
		})
	}
	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be a YYYY-MM-DD date",
		})
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be after period_start",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RunResponse struct {
	ID          string `json:"id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Status      string `json:"status"`
	TotalAmount int64  `json:"total_amount"`
	MemberCount int64  `json:"member_count"`
}

func ToResponse(r Run) RunResponse {
	return RunResponse{
		ID:          r.ID,
		PeriodStart: r.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   r.PeriodEnd.Format("2006-01-02"),
		Status:      string(r.Status),
		TotalAmount: r.TotalAmount,
		MemberCount: r.MemberCount,
	}
}
