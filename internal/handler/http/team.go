package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/auth"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/membership"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/middleware"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/response"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/navigation"
	"github.com/go-chi/chi/v5"
)

type TeamHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ChangeRole(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
}

type TeamHandlerImpl struct {
	teamService membership.TeamService
	registry    *navigation.Registry
}

func NewTeamHandler(teamService membership.TeamService, registry *navigation.Registry) TeamHandler {
	return &TeamHandlerImpl{
		teamService: teamService,
		registry:    registry,
	}
}

// refreshMemberNavigation re-evaluates the affected member's machine so a role
// change or removal takes effect on their next snapshot, not their next login.
func (h *TeamHandlerImpl) refreshMemberNavigation(r *http.Request, memberID string) {
	if machine, err := h.registry.ForUser(r.Context(), memberID); err == nil {
		if _, err := machine.Refresh(r.Context()); err != nil {
			slog.Warn("Navigation refresh after team change failed", "member_id", memberID, "error", err)
		}
	}
}

type memberResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role"`
}

func toMemberResponse(m membership.Membership) memberResponse {
	resp := memberResponse{
		UserID: m.UserID,
		Role:   string(m.Role),
	}
	if m.MemberName != nil {
		resp.Name = *m.MemberName
	}
	if m.MemberEmail != nil {
		resp.Email = *m.MemberEmail
	}
	return resp
}

// List implements TeamHandler.
func (h *TeamHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	members, err := h.teamService.ListMembers(r.Context(), claims.BusinessID)
	if err != nil {
		slog.Error("Team list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]memberResponse, 0, len(members))
	for _, m := range members {
		items = append(items, toMemberResponse(m))
	}
	response.Success(w, items)
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

// ChangeRole implements TeamHandler.
func (h *TeamHandlerImpl) ChangeRole(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var changeReq changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&changeReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	role := user.Role(changeReq.Role)
	if !role.IsKnown() {
		response.BadRequest(w, "role must be one of manager, employee, accountant", nil)
		return
	}

	updated, err := h.teamService.ChangeRole(r.Context(), claims.BusinessID, chi.URLParam(r, "memberID"), role)
	if err != nil {
		slog.Error("Team change role service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.refreshMemberNavigation(r, updated.UserID)

	slog.Info("Member role changed", "member_id", updated.UserID, "role", updated.Role)
	response.SuccessWithMessage(w, "Member role updated", toMemberResponse(updated))
}

// Remove implements TeamHandler.
func (h *TeamHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	memberID := chi.URLParam(r, "memberID")
	if err := h.teamService.RemoveMember(r.Context(), claims.BusinessID, memberID); err != nil {
		slog.Error("Team remove service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.refreshMemberNavigation(r, memberID)

	slog.Info("Member removed", "business_id", claims.BusinessID)
	response.SuccessWithMessage(w, "Member removed", nil)
}
