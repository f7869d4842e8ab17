package invitation

import (
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/validator"
)

type CreateInvitationRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (r *CreateInvitationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	switch user.Role(r.Role) {
	case user.RoleManager, user.RoleEmployee, user.RoleAccountant:
	case user.RoleOwner:
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "members cannot be invited as owner",
		})
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of manager, employee, accountant",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AcceptInvitationRequest struct {
	Token string `json:"token"`
}

func (r *AcceptInvitationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type InvitationResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	BusinessName string `json:"business_name,omitempty"`
	ExpiresAt    string `json:"expires_at"`
}

func ToResponse(i Invitation) InvitationResponse {
	resp := InvitationResponse{
		ID:        i.ID,
		Email:     i.Email,
		Role:      string(i.Role),
		Status:    string(i.Status),
		ExpiresAt: i.ExpiresAt.Format(time.RFC3339),
	}
	if i.BusinessName != nil {
		resp.BusinessName = *i.BusinessName
	}
	return resp
}
