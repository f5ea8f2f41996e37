// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Report returns the current medal report, building it when stale.
	Report(ctx context.Context) (*model.Report, error)

	// Country returns one country's detail by code or canonical name.
	Country(ctx context.Context, codeOrName string) (model.CountryDetail, error)

	// Status reports whether a build is running.
	Status(ctx context.Context) types.BuildStatus
}

// Server wires HTTP routes for the medal API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	medalsHandler   *MedalsHandler
	progressHandler *ProgressHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		medalsHandler:   NewMedalsHandler(deps),
		progressHandler: NewProgressHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.Handle("/metrics", s.healthHandler.MetricsHandler())
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/progress", CORS(MetricsMiddleware(s.progressHandler.HandleGetProgress, "progress")))
	mux.HandleFunc("/api/medals", CORS(MetricsMiddleware(s.medalsHandler.HandleGetMedals, "medals")))
	mux.HandleFunc("/api/medals/", CORS(MetricsMiddleware(s.medalsHandler.HandleGetCountry, "country")))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
