package middleware

import (
	"fmt"
	"net/http"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/response"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/permission"
)

// RequireCapability gates a route on the role claim holding a capability.
// The role claim is only present after business selection, so routes behind
// this also need RequireBusiness.
func RequireCapability(resolver *permission.Resolver, capability user.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromRequest(r)
			if !ok {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", capability))
				return
			}

			if !resolver.HasCapability(claims.Role, capability) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", capability))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAnyCapability passes when the role holds at least one of the listed
// capabilities.
func RequireAnyCapability(resolver *permission.Resolver, capabilities ...user.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromRequest(r)
			if !ok || !resolver.HasAny(claims.Role, capabilities...) {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
