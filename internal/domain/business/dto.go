package business

import (
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/validator"
)

type CreateBusinessRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Currency string `json:"currency"`
}

func (r *CreateBusinessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if !validator.IsValidBusinessName(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be between 2 and 120 characters",
		})
	}

	if len(r.Category) > 60 {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must not exceed 60 characters",
		})
	}

	if validator.IsEmpty(r.Currency) {
		errs = append(errs, validator.ValidationError{
			Field:   "currency",
			Message: "currency is required",
		})
	} else if !validator.IsValidCurrency(r.Currency) {
		errs = append(errs, validator.ValidationError{
			Field:   "currency",
			Message: "currency must be a three-letter ISO 4217 code, e.g. USD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateBusinessRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Currency string `json:"currency"`
}

func (r *UpdateBusinessRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Name) && !validator.IsValidBusinessName(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be between 2 and 120 characters",
		})
	}

	if len(r.Category) > 60 {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must not exceed 60 characters",
		})
	}

	if !validator.IsEmpty(r.Currency) && !validator.IsValidCurrency(r.Currency) {
		errs = append(errs, validator.ValidationError{
			Field:   "currency",
			Message: "currency must be a three-letter ISO 4217 code, e.g. USD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SelectBusinessRequest struct {
	BusinessID string `json:"business_id"`
}

func (r *SelectBusinessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BusinessResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Currency string `json:"currency"`
	Role     string `json:"role"`
}
