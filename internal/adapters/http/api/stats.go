package api

import (
	"maps"
	"net/http"

	"github.com/okian/panelboard/internal/domain/distribution"
)

// StatsProvider reports service runtime counters.
type StatsProvider interface {
	GetStats() map[string]any
}

// StatsHandler serves GET /stats: the provider's counters plus the
// dimensions the distribution endpoints accept.
type StatsHandler struct {
	provider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(provider StatsProvider) *StatsHandler {
	return &StatsHandler{provider: provider}
}

// HandleStats handles GET /stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	stats := make(map[string]any)
	if h.provider != nil {
		maps.Copy(stats, h.provider.GetStats())
	}
	stats["dimensions"] = distribution.Dimensions()
	writeJSON(w, http.StatusOK, stats)
}
