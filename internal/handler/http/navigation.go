package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/auth"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/business"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/middleware"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/response"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/jwt"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/navigation"
)

type NavigationHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	SelectBusiness(w http.ResponseWriter, r *http.Request)
}

type NavigationHandlerImpl struct {
	registry   *navigation.Registry
	jwtService jwt.Service
}

func NewNavigationHandler(registry *navigation.Registry, jwtService jwt.Service) NavigationHandler {
	return &NavigationHandlerImpl{
		registry:   registry,
		jwtService: jwtService,
	}
}

type navigationBusiness struct {
	BusinessID   string `json:"business_id"`
	BusinessName string `json:"business_name"`
	Role         string `json:"role"`
}

type navigationResponse struct {
	navigation.NavigationState
	Businesses  []navigationBusiness `json:"businesses,omitempty"`
	AccessToken string               `json:"access_token,omitempty"`
	ExpiresIn   int64                `json:"access_token_expires_in,omitempty"`
}

func toNavigationResponse(state navigation.NavigationState) navigationResponse {
	resp := navigationResponse{NavigationState: state}
	for _, b := range state.Businesses {
		resp.Businesses = append(resp.Businesses, navigationBusiness{
			BusinessID:   b.BusinessID,
			BusinessName: b.BusinessName,
			Role:         string(b.Role),
		})
	}
	return resp
}

// Get implements NavigationHandler. Returns the current snapshot, starting
// the machine on first contact.
func (h *NavigationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	machine, err := h.registry.ForUser(r.Context(), claims.UserID)
	if err != nil {
		slog.Error("Navigation get error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toNavigationResponse(machine.Snapshot()))
}

// Refresh implements NavigationHandler. Re-resolves the session context; a
// snapshot superseded mid-flight comes back as a conflict.
func (h *NavigationHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	machine, err := h.registry.ForUser(r.Context(), claims.UserID)
	if err != nil {
		slog.Error("Navigation refresh error", "error", err)
		response.HandleError(w, err)
		return
	}

	state, err := machine.Refresh(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toNavigationResponse(state))
}

// SelectBusiness implements NavigationHandler. On success the access token is
// reissued with the business and role claims baked in, so permission checks
// never consult a stale selection.
func (h *NavigationHandlerImpl) SelectBusiness(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var selectReq business.SelectBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&selectReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := selectReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	machine, err := h.registry.ForUser(r.Context(), claims.UserID)
	if err != nil {
		slog.Error("Navigation select error", "error", err)
		response.HandleError(w, err)
		return
	}

	state, err := machine.SelectBusiness(r.Context(), selectReq.BusinessID)
	if err != nil {
		slog.Error("Navigation select error", "error", err, "business_id", selectReq.BusinessID)
		response.HandleError(w, err)
		return
	}

	resp := toNavigationResponse(state)
	if state.State == navigation.StateActive {
		accessToken, expiresAt, err := h.jwtService.GenerateAccessToken(claims.UserID, claims.Email, &selectReq.BusinessID, state.Role)
		if err != nil {
			slog.Error("Navigation select token error", "error", err)
			response.HandleError(w, err)
			return
		}
		resp.AccessToken = accessToken
		resp.ExpiresIn = expiresAt
	}

	slog.Info("Business selected", "business_id", selectReq.BusinessID)
	response.Success(w, resp)
}
