package middleware

import (
	"net/http"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// Claims is the decoded access-token identity handlers work with.
type Claims struct {
	UserID     string
	Email      string
	BusinessID string
	Role       user.Role
}

// ClaimsFromRequest reads the verified JWT claims. Returns ok=false when the
// request carries no usable token; AuthRequired normally guarantees it does.
func ClaimsFromRequest(r *http.Request) (Claims, bool) {
	_, raw, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return Claims{}, false
	}

	userID, ok := raw["user_id"].(string)
	if !ok || userID == "" {
		return Claims{}, false
	}

	c := Claims{UserID: userID}
	if email, ok := raw["email"].(string); ok {
		c.Email = email
	}
	if businessID, ok := raw["business_id"].(string); ok {
		c.BusinessID = businessID
	}
	if role, ok := raw["role"].(string); ok {
		c.Role = user.Role(role)
	}
	return c, true
}
