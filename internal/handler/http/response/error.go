package response

import (
	"errors"
	"net/http"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/auth"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/business"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/dashboard"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/invitation"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/membership"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/payroll"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/schedule"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/transaction"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/validator"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/navigation"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrOwnerAccessRequired):
		Forbidden(w, "Owner access required")
	case errors.Is(err, user.ErrInsufficientRole):
		Forbidden(w, "Insufficient role for this action")
	case errors.Is(err, user.ErrBusinessScopeMissing):
		BadRequest(w, "No business selected", nil)

	// Business domain errors
	case errors.Is(err, business.ErrBusinessNotFound):
		NotFound(w, "Business not found")
	case errors.Is(err, business.ErrNotBusinessOwner):
		Forbidden(w, "Only the business owner can do this")
	case errors.Is(err, business.ErrBusinessNameExists):
		Conflict(w, "You already have a business with this name")

	// Membership domain errors
	case errors.Is(err, membership.ErrMembershipNotFound):
		NotFound(w, "Membership not found")
	case errors.Is(err, membership.ErrAlreadyMember):
		Conflict(w, "User is already a member of this business")
	case errors.Is(err, membership.ErrCannotRemoveOwner):
		Forbidden(w, "The business owner cannot be removed")
	case errors.Is(err, membership.ErrCannotDemoteOwner):
		Forbidden(w, "The business owner role cannot be changed")

	// Transaction domain errors
	case errors.Is(err, transaction.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")
	case errors.Is(err, transaction.ErrWrongBusiness):
		NotFound(w, "Transaction not found")

	// Dashboard domain errors
	case errors.Is(err, dashboard.ErrActivityAccessDenied):
		Forbidden(w, "Your role may not view recent activity")
	case errors.Is(err, dashboard.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)

	// Invitation domain errors
	case errors.Is(err, invitation.ErrInvitationNotFound):
		NotFound(w, "Invitation not found")
	case errors.Is(err, invitation.ErrInvitationExpired):
		Conflict(w, "Invitation has expired")
	case errors.Is(err, invitation.ErrInvitationProcessed):
		Conflict(w, "Invitation has already been processed")
	case errors.Is(err, invitation.ErrInviteeAlreadyIn):
		Conflict(w, "This email already belongs to a member")
	case errors.Is(err, invitation.ErrRoleNotInvitable):
		BadRequest(w, "Members cannot be invited as owner", nil)
	case errors.Is(err, invitation.ErrInviterOutranked):
		Forbidden(w, "Cannot invite a role at or above your own")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, schedule.ErrShiftInvalidRange):
		BadRequest(w, "Shift must end after it starts", nil)
	case errors.Is(err, schedule.ErrTimeOffNotFound):
		NotFound(w, "Time off request not found")
	case errors.Is(err, schedule.ErrTimeOffProcessed):
		Conflict(w, "Time off request already processed")
	case errors.Is(err, schedule.ErrTimeOffOwnRequest):
		Forbidden(w, "You cannot decide your own time off request")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrRunFinalized):
		Conflict(w, "Payroll run is already finalized")
	case errors.Is(err, payroll.ErrRunOverlaps):
		Conflict(w, "A payroll run already covers this period")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Period end must be after period start", nil)
	case errors.Is(err, payroll.ErrNoActiveMembers):
		BadRequest(w, "Business has no active members to pay", nil)

	// Navigation errors
	case errors.Is(err, navigation.ErrNotAuthenticated):
		Unauthorized(w, "Not authenticated")
	case errors.Is(err, navigation.ErrNotAMember):
		Forbidden(w, "You are not a member of this business")
	case errors.Is(err, navigation.ErrStaleTransition):
		Conflict(w, "A newer navigation change superseded this one")
	case errors.Is(err, navigation.ErrFetchFailed):
		InternalServerError(w, "Failed to load session data")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
