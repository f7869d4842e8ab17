package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/auth"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/payroll"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/middleware"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	CreateRun(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	FinalizeRun(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// CreateRun implements PayrollHandler.
func (h *PayrollHandlerImpl) CreateRun(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq payroll.CreateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Payroll create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.payrollService.CreateRun(r.Context(), claims.BusinessID, claims.UserID, createReq)
	if err != nil {
		slog.Error("Payroll create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll run created", "run_id", created.ID)
	response.Created(w, "Payroll run created", payroll.ToResponse(created))
}

// ListRuns implements PayrollHandler.
func (h *PayrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	runs, err := h.payrollService.ListRuns(r.Context(), claims.BusinessID)
	if err != nil {
		slog.Error("Payroll list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]payroll.RunResponse, 0, len(runs))
	for _, run := range runs {
		items = append(items, payroll.ToResponse(run))
	}
	response.Success(w, items)
}

// GetRun implements PayrollHandler.
func (h *PayrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	run, err := h.payrollService.GetRun(r.Context(), claims.BusinessID, chi.URLParam(r, "runID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToResponse(run))
}

// FinalizeRun implements PayrollHandler.
func (h *PayrollHandlerImpl) FinalizeRun(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	finalized, err := h.payrollService.FinalizeRun(r.Context(), claims.BusinessID, chi.URLParam(r, "runID"))
	if err != nil {
		slog.Error("Payroll finalize service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll run finalized", "run_id", finalized.ID)
	response.SuccessWithMessage(w, "Payroll run finalized", payroll.ToResponse(finalized))
}
