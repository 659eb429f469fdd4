package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/okian/panelboard/internal/adapters/repository"
	service "github.com/okian/panelboard/internal/app"
	"github.com/okian/panelboard/internal/domain/model"
	"github.com/okian/panelboard/internal/panelfile"
)

const maxIngestBody = 8 << 20

// PanelsHandler serves panel ingestion and search.
type PanelsHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewPanelsHandler creates a new panels handler.
func NewPanelsHandler(deps Dependencies, maxLimit int) *PanelsHandler {
	if maxLimit < 1 {
		maxLimit = defaultSearchLimit
	}
	return &PanelsHandler{deps: deps, maxLimit: maxLimit}
}

// ingestResponse acknowledges POST /panels. ID is set for single-record posts.
type ingestResponse struct {
	Status    string `json:"status"`
	ID        string `json:"id,omitempty"`
	Accepted  int    `json:"accepted"`
	Duplicate int    `json:"duplicate"`
}

type searchResponse struct {
	Count  int                 `json:"count"`
	Panels []model.PanelRecord `json:"panels"`
}

// HandlePanels handles POST /panels and GET /panels.
func (h *PanelsHandler) HandlePanels(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handlePost(w, r)
	case http.MethodGet:
		h.handleSearch(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *PanelsHandler) handlePost(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_panels"

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxIngestBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	body = bytes.TrimSpace(body)
	single := len(body) > 0 && body[0] == '{'

	recs, err := panelfile.Decode(bytes.NewReader(body), panelfile.FormatJSON)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if len(recs) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("no panel records")))
		return
	}
	for i, rec := range recs {
		if strings.TrimSpace(rec.ID) == "" {
			writeError(w, http.StatusBadRequest, "bad_request",
				WrapKind(op, ErrBadRequest, fmt.Errorf("record %d: %w", i, repository.ErrInvalidRecord)))
			return
		}
	}

	var resp ingestResponse
	for _, rec := range recs {
		res, err := h.deps.Ingest(r.Context(), rec)
		switch {
		case errors.Is(err, service.ErrBackpressure):
			writeError(w, http.StatusTooManyRequests, "backpressure",
				WrapKind(op, ErrBackpressure, fmt.Errorf("%d accepted before the queue filled", resp.Accepted)))
			return
		case errors.Is(err, service.ErrStopped):
			writeError(w, http.StatusServiceUnavailable, "unavailable", WrapKind(op, ErrUnavailable, err))
			return
		case errors.Is(err, repository.ErrInvalidRecord):
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		if res == service.IngestDuplicate {
			resp.Duplicate++
		} else {
			resp.Accepted++
		}
	}

	if single {
		resp.ID = strings.TrimSpace(recs[0].ID)
	}
	if resp.Accepted == 0 {
		resp.Status = service.IngestDuplicate.String()
		writeJSON(w, http.StatusOK, resp)
		return
	}
	resp.Status = service.IngestAccepted.String()
	writeJSON(w, http.StatusAccepted, resp)
}

func (h *PanelsHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "api.search_panels"

	q, code, err := parseQuery(r.URL.Query(), min(defaultSearchLimit, h.maxLimit), h.maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, code, WrapKind(op, ErrBadRequest, err))
		return
	}
	recs, err := h.deps.Search(r.Context(), q)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Count: len(recs), Panels: recs})
}

// HandleGetPanel handles GET /panels/{id} requests.
func (h *PanelsHandler) HandleGetPanel(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_panel"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/panels/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	rec, err := h.deps.Panel(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
