package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/auth"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/transaction"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/middleware"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/response"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type TransactionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TransactionHandlerImpl struct {
	transactionService transaction.TransactionService
}

func NewTransactionHandler(transactionService transaction.TransactionService) TransactionHandler {
	return &TransactionHandlerImpl{transactionService: transactionService}
}

// Create implements TransactionHandler.
func (h *TransactionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq transaction.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Transaction create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.transactionService.Create(r.Context(), claims.BusinessID, claims.UserID, createReq)
	if err != nil {
		slog.Error("Transaction create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transaction recorded successfully", transaction.ToResponse(created))
}

// List implements TransactionHandler.
func (h *TransactionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := transaction.ListFilter{Page: 1, Limit: 20}
	query := r.URL.Query()

	if t := query.Get("type"); t != "" {
		transactionType := transaction.Type(t)
		if !transactionType.IsValid() {
			response.BadRequest(w, "type must be either income or expense", nil)
			return
		}
		filter.Type = &transactionType
	}
	if category := query.Get("category"); category != "" {
		filter.Category = &category
	}
	if from := query.Get("from"); from != "" {
		parsed, ok := validator.IsValidDateTime(from)
		if !ok {
			response.BadRequest(w, "from must be an RFC3339 timestamp", nil)
			return
		}
		filter.From = &parsed
	}
	if to := query.Get("to"); to != "" {
		parsed, ok := validator.IsValidDateTime(to)
		if !ok {
			response.BadRequest(w, "to must be an RFC3339 timestamp", nil)
			return
		}
		filter.To = &parsed
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 && limit <= 100 {
		filter.Limit = limit
	}

	transactions, total, err := h.transactionService.List(r.Context(), claims.BusinessID, filter)
	if err != nil {
		slog.Error("Transaction list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]transaction.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, transaction.ToResponse(t))
	}

	response.SuccessWithMeta(w, items, response.NewMeta(filter.Page, filter.Limit, total))
}

// Get implements TransactionHandler.
func (h *TransactionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	found, err := h.transactionService.Get(r.Context(), claims.BusinessID, chi.URLParam(r, "transactionID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, transaction.ToResponse(found))
}

// Update implements TransactionHandler.
func (h *TransactionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var updateReq transaction.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.transactionService.Update(r.Context(), claims.BusinessID, chi.URLParam(r, "transactionID"), updateReq)
	if err != nil {
		slog.Error("Transaction update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transaction updated successfully", transaction.ToResponse(updated))
}

// Delete implements TransactionHandler.
func (h *TransactionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.transactionService.Delete(r.Context(), claims.BusinessID, chi.URLParam(r, "transactionID")); err != nil {
		slog.Error("Transaction delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transaction deleted successfully", nil)
}
