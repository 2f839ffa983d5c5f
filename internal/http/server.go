// Package http exposes the REST surface: transaction CRUD, the derived
// dashboard view, bulk period deletions and user preferences.
package http

import (
	"net/http"

	applog "github.com/Pval-k/finance-tracker/internal/log"
	"github.com/Pval-k/finance-tracker/internal/services"
	"github.com/Pval-k/finance-tracker/internal/store"
	"github.com/Pval-k/finance-tracker/internal/visibility"
)

// ownerHeader carries the owner id. Absence falls back to the
// configured placeholder owner until real authentication lands.
const ownerHeader = "X-User-Id"

type Server struct {
	http.Server

	store        store.TransactionStore
	prefs        store.PreferenceStore
	dashboard    *services.DashboardService
	bulk         *services.BulkService
	visibility   *visibility.Manager
	defaultOwner string
	logger       *applog.Logger
}

// NewServer configures routes and returns a ready-to-run http.Server.
func NewServer(addr string, txStore store.TransactionStore, prefStore store.PreferenceStore, dashboard *services.DashboardService, bulk *services.BulkService, vis *visibility.Manager, defaultOwner string, logger *applog.Logger) *Server {
	s := &Server{
		store:        txStore,
		prefs:        prefStore,
		dashboard:    dashboard,
		bulk:         bulk,
		visibility:   vis,
		defaultOwner: defaultOwner,
		logger:       logger,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	mux.HandleFunc("GET /api/transactions", s.handleListTransactions)
	mux.HandleFunc("POST /api/transactions", s.handleCreateTransaction)
	mux.HandleFunc("PUT /api/transactions/{id}", s.handleUpdateTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)
	mux.HandleFunc("POST /api/transactions/{id}/visibility", s.handleToggleVisibility)

	// Bulk sweeps; exact paths win over the {id} wildcard above.
	mux.HandleFunc("DELETE /api/transactions/period", s.handleDeletePeriod)
	mux.HandleFunc("DELETE /api/transactions/history", s.handleDeleteHistory)

	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)

	mux.HandleFunc("GET /api/preferences/budget", s.handleGetBudget)
	mux.HandleFunc("PUT /api/preferences/budget", s.handlePutBudget)
	mux.HandleFunc("GET /api/preferences/hidden", s.handleGetHidden)
	mux.HandleFunc("PUT /api/preferences/hidden", s.handlePutHidden)
	mux.HandleFunc("GET /api/preferences/last-category", s.handleGetLastCategory)

	handler := applog.Middleware(logger)(securityHeaders(mux))
	s.Server = http.Server{Addr: addr, Handler: handler}
	return s
}

// securityHeaders sets the usual hardening headers on every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// owner resolves the request's owner id.
func (s *Server) owner(r *http.Request) string {
	if owner := r.Header.Get(ownerHeader); owner != "" {
		return owner
	}
	return s.defaultOwner
}
