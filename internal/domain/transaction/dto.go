package transaction

import (
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/validator"
)

type CreateTransactionRequest struct {
	Type       string  `json:"type"`
	Amount     int64   `json:"amount"`
	Category   string  `json:"category"`
	Note       *string `json:"note"`
	OccurredAt string  `json:"occurred_at"` // RFC3339; defaults to now when empty
}

func (r *CreateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Type(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be either income or expense",
		})
	}

	if !validator.IsValidAmount(r.Amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a positive number of cents",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	} else if len(r.Category) > 60 {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must not exceed 60 characters",
		})
	}

	if r.Note != nil && len(*r.Note) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 500 characters",
		})
	}

	if !validator.IsEmpty(r.OccurredAt) {
		if _, ok := validator.IsValidDateTime(r.OccurredAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "occurred_at",
				Message: "occurred_at must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// OccurredAtTime returns the parsed timestamp, or now when the field is empty.
// Call Validate first.
func (r *CreateTransactionRequest) OccurredAtTime() time.Time {
	if validator.IsEmpty(r.OccurredAt) {
		return time.Now().UTC()
	}
	t, _ := validator.IsValidDateTime(r.OccurredAt)
	return t
}

type UpdateTransactionRequest struct {
	Amount   *int64  `json:"amount"`
	Category *string `json:"category"`
	Note     *string `json:"note"`
}

func (r *UpdateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && !validator.IsValidAmount(*r.Amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a positive number of cents",
		})
	}

	if r.Category != nil {
		if validator.IsEmpty(*r.Category) {
			errs = append(errs, validator.ValidationError{
				Field:   "category",
				Message: "category must not be empty",
			})
		} else if len(*r.Category) > 60 {
			errs = append(errs, validator.ValidationError{
				Field:   "category",
				Message: "category must not exceed 60 characters",
			})
		}
	}

	if r.Note != nil && len(*r.Note) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	Type     *Type
	Category *string
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

type TransactionResponse struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Amount     int64   `json:"amount"`
	Category   string  `json:"category"`
	Note       *string `json:"note,omitempty"`
	OccurredAt string  `json:"occurred_at"`
	CreatedBy  string  `json:"created_by"`
}

func ToResponse(t Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID,
		Type:       string(t.Type),
		Amount:     t.Amount,
		Category:   t.Category,
		Note:       t.Note,
		OccurredAt: t.OccurredAt.Format(time.RFC3339),
		CreatedBy:  t.CreatedBy,
	}
}
