package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/auth"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/dashboard"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/middleware"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	RecentActivity(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Overview implements DashboardHandler. The response is already redacted for
// the caller's role.
func (h *DashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	overview, err := h.dashboardService.GetOverview(r.Context(), claims.BusinessID, claims.Role, r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("Dashboard overview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// RecentActivity implements DashboardHandler.
func (h *DashboardHandlerImpl) RecentActivity(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	limit := 10
	if parsed, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && parsed > 0 && parsed <= 50 {
		limit = parsed
	}

	activity, err := h.dashboardService.GetRecentActivity(r.Context(), claims.BusinessID, claims.Role, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, activity)
}
