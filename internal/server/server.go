// Package server exposes the Insama HTTP API: a generic session-record
// CRUD surface for the single-couple flow and the collaborative-session
// endpoints, plus health and Prometheus metrics.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/insama/insama/internal/session"
	"github.com/insama/insama/internal/storage"
)

// Server holds the handler dependencies.
type Server struct {
	store    storage.Store
	sessions *session.Service
	baseURL  string
}

// New creates a Server over the given store. baseURL is the public page
// URL partner links are built on.
func New(store storage.Store, baseURL string) *Server {
	return &Server{
		store:    store,
		sessions: session.NewService(store),
		baseURL:  baseURL,
	}
}

// Handler builds the route table with logging, CORS, and metrics
// middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Generic session records (single-couple flow).
	mux.HandleFunc("POST /api/sessions", s.handleSaveRecord)
	mux.HandleFunc("GET /api/sessions/{id}", s.handleGetRecord)
	mux.HandleFunc("PUT /api/sessions/{id}", s.handleUpdateRecord)
	mux.HandleFunc("DELETE /api/sessions/{id}", s.handleDeleteRecord)
	mux.HandleFunc("GET /api/sessions/{id}/balance", s.handleRecordBalance)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	// Seed catalogs.
	mux.HandleFunc("GET /api/catalog/cards", s.handleCatalogCards)
	mux.HandleFunc("GET /api/catalog/bills", s.handleCatalogBills)

	// Collaborative sessions.
	mux.HandleFunc("POST /api/collab/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /api/collab/sessions/{id}", s.handleGetSession)
	mux.HandleFunc("POST /api/collab/sessions/{id}/responses", s.handleSubmitResponse)
	mux.HandleFunc("POST /api/collab/sessions/{id}/conflicts/{conflictID}/resolution", s.handleResolveConflict)
	mux.HandleFunc("POST /api/collab/sessions/{id}/finalize", s.handleFinalize)

	mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(corsMiddleware(metricsMiddleware(mux)))
}
