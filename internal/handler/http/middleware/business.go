package middleware

import (
	"net/http"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/response"
)

// RequireBusiness rejects requests whose access token carries no business
// scope. Tokens are reissued with business_id and role claims when the user
// selects a business.
func RequireBusiness(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromRequest(r)
		if !ok || claims.BusinessID == "" {
			response.HandleError(w, user.ErrBusinessScopeMissing)
			return
		}

		next.ServeHTTP(w, r)
	})
}
