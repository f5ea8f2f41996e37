package api

import "net/http"

// StatsProvider exposes service statistics for monitoring.
type StatsProvider interface {
	GetStats() map[string]any
}

// StatsHandler serves /stats.
type StatsHandler struct {
	statsProvider StatsProvider
}

// NewStatsHandler creates a stats handler over provider. A nil provider
// answers 503.
func NewStatsHandler(provider StatsProvider) *StatsHandler {
	return &StatsHandler{statsProvider: provider}
}

// HandleStats handles GET /stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	if h.statsProvider == nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", ErrUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, h.statsProvider.GetStats())
}
