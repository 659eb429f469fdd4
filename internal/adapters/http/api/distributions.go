package api

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/okian/panelboard/internal/adapters/repository"
	"github.com/okian/panelboard/internal/domain/distribution"
)

// DistributionHandler serves distribution tables and the dashboard overview.
type DistributionHandler struct {
	deps Dependencies
}

// NewDistributionHandler creates a new distribution handler.
func NewDistributionHandler(deps Dependencies) *DistributionHandler {
	return &DistributionHandler{deps: deps}
}

// HandleGetDistribution handles GET /distributions/{dimension} requests.
// The panel filters of GET /panels narrow the records aggregated.
func (h *DistributionHandler) HandleGetDistribution(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_distribution"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/distributions/")
	dim, err := distribution.ParseDimension(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_dimension", WrapKind(op, ErrBadRequest, err))
		return
	}
	q, code, err := parseFilters(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, code, WrapKind(op, ErrBadRequest, err))
		return
	}

	d, err := h.deps.Distribution(r.Context(), dim, q)
	if err != nil {
		if errors.Is(err, distribution.ErrUnknownDimension) {
			writeError(w, http.StatusBadRequest, "unknown_dimension", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// HandleGetOverview handles GET /overview requests.
func (h *DistributionHandler) HandleGetOverview(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_overview"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q, code, err := parseFilters(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, code, WrapKind(op, ErrBadRequest, err))
		return
	}
	ov, err := h.deps.Overview(r.Context(), q)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, ov)
}

// parseFilters reads the panel filters for an aggregation. Tables always
// cover every matching panel, so limit is validated but not applied.
func parseFilters(values url.Values) (repository.Query, string, error) {
	q, code, err := parseQuery(values, 0, 0)
	q.Limit = 0
	return q, code, err
}
