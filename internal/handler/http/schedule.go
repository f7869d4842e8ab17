package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/auth"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/schedule"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/middleware"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/response"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	CreateShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)
	RequestTimeOff(w http.ResponseWriter, r *http.Request)
	ListTimeOff(w http.ResponseWriter, r *http.Request)
	DecideTimeOff(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// CreateShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq schedule.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Shift create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.scheduleService.CreateShift(r.Context(), claims.BusinessID, createReq)
	if err != nil {
		slog.Error("Shift create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", schedule.ToShiftResponse(created))
}

// ListShifts implements ScheduleHandler. Defaults to the coming week.
func (h *ScheduleHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	from := time.Now().UTC().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, 7)
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "from must be a YYYY-MM-DD date", nil)
			return
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "to must be a YYYY-MM-DD date", nil)
			return
		}
		to = parsed
	}

	shifts, err := h.scheduleService.ListShifts(r.Context(), claims.BusinessID, claims.UserID, claims.Role, from, to)
	if err != nil {
		slog.Error("Shift list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]schedule.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		items = append(items, schedule.ToShiftResponse(s))
	}
	response.Success(w, items)
}

// DeleteShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.scheduleService.DeleteShift(r.Context(), claims.BusinessID, chi.URLParam(r, "shiftID")); err != nil {
		slog.Error("Shift delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// RequestTimeOff implements ScheduleHandler.
func (h *ScheduleHandlerImpl) RequestTimeOff(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq schedule.CreateTimeOffRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.scheduleService.RequestTimeOff(r.Context(), claims.BusinessID, claims.UserID, createReq)
	if err != nil {
		slog.Error("Time off request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time off requested", schedule.ToTimeOffResponse(created))
}

// ListTimeOff implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListTimeOff(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var status *schedule.TimeOffStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := schedule.TimeOffStatus(raw)
		switch s {
		case schedule.TimeOffPending, schedule.TimeOffApproved, schedule.TimeOffRejected:
			status = &s
		default:
			response.BadRequest(w, "status must be one of pending, approved, rejected", nil)
			return
		}
	}

	requests, err := h.scheduleService.ListTimeOff(r.Context(), claims.BusinessID, status)
	if err != nil {
		slog.Error("Time off list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]schedule.TimeOffResponse, 0, len(requests))
	for _, t := range requests {
		items = append(items, schedule.ToTimeOffResponse(t))
	}
	response.Success(w, items)
}

type decideTimeOffRequest struct {
	Approve bool `json:"approve"`
}

// DecideTimeOff implements ScheduleHandler.
func (h *ScheduleHandlerImpl) DecideTimeOff(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var decideReq decideTimeOffRequest
	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	decided, err := h.scheduleService.DecideTimeOff(r.Context(), claims.BusinessID, chi.URLParam(r, "requestID"), claims.UserID, decideReq.Approve)
	if err != nil {
		slog.Error("Time off decide service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time off request decided", schedule.ToTimeOffResponse(decided))
}
