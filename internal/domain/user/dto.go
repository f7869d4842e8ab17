package user

import "github.com/bizpulse/bizpulse-backend-go/internal/pkg/validator"

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 120 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 120 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProfileResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	EmailVerified bool   `json:"email_verified"`
	HasPassword   bool   `json:"has_password"`
	OAuthProvider string `json:"oauth_provider,omitempty"`
}

func ToProfileResponse(u User) ProfileResponse {
	resp := ProfileResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		EmailVerified: u.EmailVerified,
		HasPassword:   u.PasswordHash != nil,
	}
	if u.OAuthProvider != nil {
		resp.OAuthProvider = *u.OAuthProvider
	}
	return resp
}
