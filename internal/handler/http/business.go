package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/auth"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/business"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/middleware"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/response"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/navigation"
)

type BusinessHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type BusinessHandlerImpl struct {
	businessService business.BusinessService
	registry        *navigation.Registry
}

func NewBusinessHandler(businessService business.BusinessService, registry *navigation.Registry) BusinessHandler {
	return &BusinessHandlerImpl{
		businessService: businessService,
		registry:        registry,
	}
}

// refreshNavigation re-evaluates the caller's navigation after their business
// list changed. Best effort: the write already committed.
func (h *BusinessHandlerImpl) refreshNavigation(r *http.Request, userID string) {
	if machine, err := h.registry.ForUser(r.Context(), userID); err == nil {
		if _, err := machine.Refresh(r.Context()); err != nil {
			slog.Warn("Navigation refresh after business change failed", "error", err)
		}
	}
}

type businessResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Currency string `json:"currency"`
	OwnerID  string `json:"owner_id"`
}

func toBusinessResponse(b business.Business) businessResponse {
	return businessResponse{
		ID:       b.ID,
		Name:     b.Name,
		Category: b.Category,
		Currency: b.Currency,
		OwnerID:  b.OwnerID,
	}
}

// Create implements BusinessHandler.
func (h *BusinessHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq business.CreateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Business create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.businessService.Create(r.Context(), claims.UserID, createReq)
	if err != nil {
		slog.Error("Business create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.refreshNavigation(r, claims.UserID)

	slog.Info("Business created", "business_id", created.ID)
	response.Created(w, "Business created successfully", toBusinessResponse(created))
}

// List implements BusinessHandler. Lists the caller's businesses with their
// role in each, for the selection screen.
func (h *BusinessHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	memberships, err := h.businessService.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		slog.Error("Business list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]business.BusinessResponse, 0, len(memberships))
	for _, m := range memberships {
		item := business.BusinessResponse{
			ID:   m.BusinessID,
			Role: string(m.Role),
		}
		if m.BusinessName != nil {
			item.Name = *m.BusinessName
		}
		items = append(items, item)
	}

	response.Success(w, items)
}

// Get implements BusinessHandler.
func (h *BusinessHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	found, err := h.businessService.Get(r.Context(), claims.BusinessID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toBusinessResponse(found))
}

// Update implements BusinessHandler.
func (h *BusinessHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var updateReq business.UpdateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.businessService.Update(r.Context(), claims.UserID, claims.BusinessID, updateReq)
	if err != nil {
		slog.Error("Business update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Business updated successfully", toBusinessResponse(updated))
}

// Delete implements BusinessHandler.
func (h *BusinessHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.businessService.Delete(r.Context(), claims.UserID, claims.BusinessID); err != nil {
		slog.Error("Business delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Deleting the last business lands the user back on onboarding.
	h.refreshNavigation(r, claims.UserID)

	slog.Info("Business deleted", "business_id", claims.BusinessID)
	response.SuccessWithMessage(w, "Business deleted successfully", nil)
}
