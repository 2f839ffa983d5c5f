package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Pval-k/finance-tracker/internal/core"
	"github.com/Pval-k/finance-tracker/internal/store"
)

type transactionRequest struct {
	Title    string        `json:"title"`
	Amount   decimalString `json:"amount"`
	Category string        `json:"category"`
	Type     string        `json:"type"`
	Date     string        `json:"date"`
}

// fields validates the request body into store fields. Everything is
// rejected here, before any store call.
func (req transactionRequest) fields() (store.TransactionFields, error) {
	cents, err := core.ParseDecimalToCents(string(req.Amount))
	if err != nil {
		return store.TransactionFields{}, err
	}
	txType, err := core.ParseType(req.Type)
	if err != nil {
		return store.TransactionFields{}, err
	}
	date, err := core.ParseDate(req.Date)
	if err != nil {
		return store.TransactionFields{}, err
	}

	fields := store.TransactionFields{
		Title:    strings.TrimSpace(req.Title),
		Amount:   core.Money{Cents: cents},
		Category: strings.TrimSpace(req.Category),
		Type:     txType,
		Date:     date,
	}
	if err := fields.Validate(); err != nil {
		return store.TransactionFields{}, err
	}
	return fields, nil
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.store.ListByOwner(r.Context(), s.owner(r))
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list transactions", "error", err)
		writeError(w, http.StatusBadGateway, "Failed to fetch transactions")
		return
	}

	out := make([]transactionJSON, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionJSON(tx, false))
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": out})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields, err := req.fields()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	owner := s.owner(r)
	id, err := s.store.Insert(r.Context(), owner, fields)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to create transaction", "error", err, "owner", owner)
		writeError(w, http.StatusBadGateway, "Failed to create transaction")
		return
	}

	// Remember the category for form pre-fill; cosmetic, so a failed
	// write is only logged.
	if err := s.prefs.Set(store.PrefKeyLastCategory, fields.Category); err != nil {
		slog.WarnContext(r.Context(), "Failed to save last category", "error", err)
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Transaction created successfully",
		"id":      id,
	})
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields, err := req.fields()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	owner := s.owner(r)
	if err := s.store.Replace(r.Context(), owner, id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		slog.ErrorContext(r.Context(), "Failed to update transaction", "error", err, "owner", owner, "transaction_id", id)
		writeError(w, http.StatusBadGateway, "Failed to update transaction")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction updated successfully"})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	owner := s.owner(r)

	if err := s.store.Remove(r.Context(), owner, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		slog.ErrorContext(r.Context(), "Failed to delete transaction", "error", err, "owner", owner, "transaction_id", id)
		writeError(w, http.StatusBadGateway, "Failed to delete transaction")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}

func (s *Server) handleToggleVisibility(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	set, err := s.visibility.ToggleAndSave(id)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to toggle visibility", "error", err, "transaction_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to save visibility")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": id, "hidden": set.Has(id)})
}
