// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/okian/panelboard/internal/adapters/repository"
	service "github.com/okian/panelboard/internal/app"
	"github.com/okian/panelboard/internal/domain/distribution"
	"github.com/okian/panelboard/internal/domain/model"
	"github.com/okian/panelboard/internal/domain/types"
)

const defaultSearchLimit = 100

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Ingest queues one record. Returns service.ErrBackpressure when the queue is full.
	Ingest(ctx context.Context, rec model.PanelRecord) (service.IngestResult, error)

	Search(ctx context.Context, q repository.Query) ([]model.PanelRecord, error)
	Panel(ctx context.Context, id string) (model.PanelRecord, error)

	Distribution(ctx context.Context, dim distribution.Dimension, q repository.Query) (types.Distribution, error)
	Overview(ctx context.Context, q repository.Query) (types.Overview, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	panelsHandler       *PanelsHandler
	distributionHandler *DistributionHandler
	dashboardHandler    *dashboardHandler
}

// NewServer creates a new API server with all handlers. maxSearchLimit caps
// GET /panels?limit.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxSearchLimit int) *Server {
	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		panelsHandler:       NewPanelsHandler(deps, maxSearchLimit),
		distributionHandler: NewDistributionHandler(deps),
		dashboardHandler:    newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", MetricsMiddleware(s.dashboardHandler.HandleDashboard, "dashboard"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/panels", MetricsMiddleware(s.panelsHandler.HandlePanels, "panels"))
	mux.HandleFunc("/panels/", MetricsMiddleware(s.panelsHandler.HandleGetPanel, "panel"))
	mux.HandleFunc("/distributions/", MetricsMiddleware(s.distributionHandler.HandleGetDistribution, "distributions"))
	mux.HandleFunc("/overview", MetricsMiddleware(s.distributionHandler.HandleGetOverview, "overview"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	if ec, ok := w.(errorCoder); ok {
		ec.setErrorCode(code)
	}
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// parseQuery reads the shared panel filters. A limit of 0 means unlimited;
// maxLimit 0 disables the cap.
func parseQuery(values url.Values, defaultLimit, maxLimit int) (repository.Query, string, error) {
	q := repository.Query{
		Gender: strings.TrimSpace(values.Get("gender")),
		Region: strings.TrimSpace(values.Get("region")),
		Text:   strings.TrimSpace(values.Get("q")),
		Limit:  defaultLimit,
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"min_age", &q.MinAge},
		{"max_age", &q.MaxAge},
		{"limit", &q.Limit},
	}
	for _, p := range ints {
		raw := strings.TrimSpace(values.Get(p.name))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return repository.Query{}, "bad_request", errInvalidParam(p.name, raw)
		}
		*p.dst = n
	}

	if q.MinAge > 0 && q.MaxAge > 0 && q.MinAge > q.MaxAge {
		return repository.Query{}, "bad_request", errInvalidParam("min_age", "greater than max_age")
	}
	if maxLimit > 0 && q.Limit < 1 {
		return repository.Query{}, "bad_request", errInvalidParam("limit", "must be at least 1")
	}
	if maxLimit > 0 && q.Limit > maxLimit {
		return repository.Query{}, "limit_exceeded", errInvalidParam("limit", strconv.Itoa(q.Limit)+" exceeds "+strconv.Itoa(maxLimit))
	}
	return q, "", nil
}

type paramError struct {
	name   string
	reason string
}

func (e paramError) Error() string { return "invalid " + e.name + ": " + e.reason }

func errInvalidParam(name, reason string) error { return paramError{name: name, reason: reason} }
