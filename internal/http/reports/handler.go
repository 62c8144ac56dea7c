package reports

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pablolacamera1/ventaspanel/internal/export"
	"github.com/pablolacamera1/ventaspanel/internal/period"
	"github.com/pablolacamera1/ventaspanel/internal/report"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

type Handler struct {
	provider sale.Provider
	exporter *export.Service
	now      func() time.Time
}

func NewHandler(provider sale.Provider, exporter *export.Service) *Handler {
	return &Handler{provider: provider, exporter: exporter, now: time.Now}
}

// NewHandlerAt builds a handler with a fixed evaluation clock.
func NewHandlerAt(provider sale.Provider, exporter *export.Service, now func() time.Time) *Handler {
	return &Handler{provider: provider, exporter: exporter, now: now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{type}", h.get)
	r.Get("/{type}/csv", h.getCSV)
}

func (h *Handler) build(r *http.Request) (*report.Report, error) {
	typ, err := report.ParseType(chi.URLParam(r, "type"))
	if err != nil {
		return nil, err
	}

	snap, err := h.provider.Snapshot(r.Context())
	if err != nil {
		return nil, err
	}

	now := h.now()
	token := period.Token(r.URL.Query().Get("period"))
	window := period.Resolve(token, now)

	// Over HTTP "today" means the calendar day, not the exact instant
	// the resolver returns.
	if token == period.Today {
		window = window.ExpandToDay()
	}

	return report.BuildWindow(snap, typ, window, now), nil
}

type response struct {
	Filename   string                   `json:"filename"`
	Window     string                   `json:"window"`
	Columns    []string                 `json:"columns"`
	Rows       []report.Row             `json:"rows"`
	Categories []report.CategorySummary `json:"categories"`
	Records    int                      `json:"records"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	rep, err := h.build(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	resp := response{
		Filename:   rep.Filename(),
		Window:     rep.Window.Label(),
		Columns:    rep.Type.Columns(),
		Rows:       rep.Rows,
		Categories: rep.Categories,
		Records:    rep.Records,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) getCSV(w http.ResponseWriter, r *http.Request) {
	rep, err := h.build(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+rep.Filename()+`.csv"`)

	if err := h.exporter.Write(w, rep); err != nil {
		slog.Error("failed to write csv", "error", err)
	}
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, report.ErrUnknownType) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	http.Error(w, err.Error(), http.StatusInternalServerError)
}
