// Package api provides the read-only HTTP surface over a processed
// stream: account snapshots and Prometheus metrics. It is an external
// collaborator of the engine — nothing here mutates accounts.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/payline-systems/payline/internal/domain"
)

// SnapshotSource yields the current account report. Both the sequential
// registry and the sharded processor satisfy it.
type SnapshotSource interface {
	Summaries() []domain.AccountSummary
}

// Server is the payline snapshot API server.
type Server struct {
	source         SnapshotSource
	metricsEnabled bool
}

// NewServer creates a new API server over a processed stream.
func NewServer(source SnapshotSource) *Server {
	return &Server{source: source}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/accounts", s.handleListAccounts)
		r.Get("/accounts/{client}", s.handleGetAccount)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"accounts": s.source.Summaries(),
	})
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "client"), 10, 16)
	if err != nil {
		writeError(w, http.StatusBadRequest, "client id must be a 16-bit unsigned integer")
		return
	}
	for _, summary := range s.source.Summaries() {
		if summary.Client == domain.ClientID(id) {
			writeJSON(w, http.StatusOK, summary)
			return
		}
	}
	writeError(w, http.StatusNotFound, "account not found")
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}
