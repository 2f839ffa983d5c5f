package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Pval-k/finance-tracker/internal/core"
	"github.com/Pval-k/finance-tracker/internal/store"
)

// handleDashboard returns the derived views for one period: filtered
// list, budget snapshot and category breakdown, recomputed per call.
//
// An optional budget query parameter previews a candidate budget
// without persisting it.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	g, ref, err := parsePeriodQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var candidate *core.Money
	if v := strings.TrimSpace(r.URL.Query().Get("budget")); v != "" {
		cents, err := core.ParseDecimalToCents(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid budget value")
			return
		}
		candidate = &core.Money{Cents: cents}
	}

	view, err := s.dashboard.View(r.Context(), s.owner(r), g, ref, candidate)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to build dashboard view", "error", err)
		writeError(w, http.StatusBadGateway, "Failed to fetch transactions")
		return
	}

	writeJSON(w, http.StatusOK, toDashboardJSON(view))
}

// handleDeletePeriod removes every transaction in the requested period.
// Deliberately non-atomic: deletes fan out independently and partial
// failure is reported only in aggregate.
func (s *Server) handleDeletePeriod(w http.ResponseWriter, r *http.Request) {
	g, ref, err := parsePeriodQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := s.bulk.DeleteCurrentPeriod(r.Context(), s.owner(r), g, ref)
	if err != nil {
		slog.ErrorContext(r.Context(), "Bulk period delete incomplete", "error", err, "deleted", deleted)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":   "Some deletions may have failed",
			"deleted": deleted,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "All transactions for this period have been deleted",
		"deleted": deleted,
	})
}

// handleDeleteHistory clears everything older than the current period
// boundary: before today, this month or this year.
func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	g := core.GranularityMonth
	if v := strings.TrimSpace(r.URL.Query().Get("granularity")); v != "" {
		parsed, err := core.ParseGranularity(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		g = parsed
	}

	deleted, err := s.bulk.DeleteOlderThan(r.Context(), s.owner(r), g)
	if err != nil {
		slog.ErrorContext(r.Context(), "Bulk history delete incomplete", "error", err, "deleted", deleted)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":   "Some deletions may have failed",
			"deleted": deleted,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Transaction history cleared",
		"deleted": deleted,
	})
}

func (s *Server) handleGetBudget(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]float64{"amount": s.dashboard.Budget().Units()})
}

func (s *Server) handlePutBudget(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount decimalString `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cents, err := core.ParseDecimalToCents(string(req.Amount))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid budget amount")
		return
	}

	if err := s.dashboard.SaveBudget(core.Money{Cents: cents}); err != nil {
		slog.ErrorContext(r.Context(), "Failed to save budget", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save budget")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Budget saved"})
}

func (s *Server) handleGetHidden(w http.ResponseWriter, _ *http.Request) {
	set := s.visibility.Load()
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	writeJSON(w, http.StatusOK, map[string][]string{"ids": ids})
}

func (s *Server) handlePutHidden(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := make(core.IDSet, len(req.IDs))
	for _, id := range req.IDs {
		set[id] = struct{}{}
	}

	if err := s.visibility.Save(set); err != nil {
		slog.ErrorContext(r.Context(), "Failed to save hidden set", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save hidden set")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Hidden set saved"})
}

func (s *Server) handleGetLastCategory(w http.ResponseWriter, _ *http.Request) {
	category, _, err := s.prefs.Get(store.PrefKeyLastCategory)
	if err != nil {
		// Cosmetic preference: treat a read failure as absent.
		category = ""
	}
	writeJSON(w, http.StatusOK, map[string]string{"category": category})
}
