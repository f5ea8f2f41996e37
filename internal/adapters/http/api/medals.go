package api

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	service "github.com/ryanmarc/olympic-dashboard/internal/app"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
)

const countryPathPrefix = "/api/medals/"

// MedalsHandler serves the report and per-country details.
type MedalsHandler struct {
	deps Dependencies
	now  func() time.Time
}

// NewMedalsHandler creates a new medals handler.
func NewMedalsHandler(deps Dependencies) *MedalsHandler {
	return &MedalsHandler{deps: deps, now: time.Now}
}

// HandleGetMedals handles GET /api/medals requests. When no report can be
// built it answers 503 with an empty report marked unavailable.
func (h *MedalsHandler) HandleGetMedals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	report, err := h.deps.Report(r.Context())
	if err != nil {
		logger.Get().Warn(r.Context(), "serving unavailable report", logger.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, model.UnavailableReport(h.now()))
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandleGetCountry handles GET /api/medals/{code} requests. The code may
// also be a canonical country name, matched case-insensitively.
func (h *MedalsHandler) HandleGetCountry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	key, err := url.PathUnescape(strings.TrimPrefix(r.URL.EscapedPath(), countryPathPrefix))
	if err != nil || strings.TrimSpace(key) == "" || strings.Contains(key, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	detail, err := h.deps.Country(r.Context(), key)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, detail)
	case errors.Is(err, service.ErrCountryNotFound):
		writeError(w, http.StatusNotFound, "not_found", ErrNotFound)
	case errors.Is(err, service.ErrReportUnavailable):
		writeError(w, http.StatusServiceUnavailable, "unavailable", ErrUnavailable)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
