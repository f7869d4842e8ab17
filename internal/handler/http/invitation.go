package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/auth"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/invitation"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/middleware"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/response"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/navigation"
	"github.com/go-chi/chi/v5"
)

type InvitationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Revoke(w http.ResponseWriter, r *http.Request)
}

type InvitationHandlerImpl struct {
	invitationService invitation.InvitationService
	registry          *navigation.Registry
}

func NewInvitationHandler(invitationService invitation.InvitationService, registry *navigation.Registry) InvitationHandler {
	return &InvitationHandlerImpl{
		invitationService: invitationService,
		registry:          registry,
	}
}

// Create implements InvitationHandler.
func (h *InvitationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq invitation.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Invitation create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.invitationService.Create(r.Context(), claims.BusinessID, claims.UserID, createReq)
	if err != nil {
		slog.Error("Invitation create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Invitation created", "invitation_id", created.ID, "business_id", claims.BusinessID)
	response.Created(w, "Invitation sent successfully", invitation.ToResponse(created))
}

// List implements InvitationHandler.
func (h *InvitationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	invitations, err := h.invitationService.ListByBusiness(r.Context(), claims.BusinessID)
	if err != nil {
		slog.Error("Invitation list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]invitation.InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		items = append(items, invitation.ToResponse(inv))
	}
	response.Success(w, items)
}

// Preview implements InvitationHandler. Public by token so the invitee can
// see what they are joining before authenticating.
func (h *InvitationHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	inv, err := h.invitationService.Preview(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, invitation.ToResponse(inv))
}

// Accept implements InvitationHandler. Membership changes shift the caller's
// navigation, so the machine is refreshed before responding.
func (h *InvitationHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var acceptReq invitation.AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&acceptReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := acceptReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	accepted, err := h.invitationService.Accept(r.Context(), claims.UserID, claims.Email, acceptReq.Token)
	if err != nil {
		slog.Error("Invitation accept service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if machine, err := h.registry.ForUser(r.Context(), claims.UserID); err == nil {
		if _, err := machine.Refresh(r.Context()); err != nil {
			slog.Warn("Navigation refresh after accept failed", "error", err)
		}
	}

	slog.Info("Invitation accepted", "invitation_id", accepted.ID)
	response.SuccessWithMessage(w, "Invitation accepted", invitation.ToResponse(accepted))
}

// Revoke implements InvitationHandler.
func (h *InvitationHandlerImpl) Revoke(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.invitationService.Revoke(r.Context(), claims.BusinessID, chi.URLParam(r, "invitationID")); err != nil {
		slog.Error("Invitation revoke service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invitation revoked", nil)
}
